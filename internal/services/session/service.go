package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"cipherchat/internal/crypto"
	"cipherchat/internal/domain"
	"cipherchat/internal/protocol/handshake"
	"cipherchat/internal/util/memzero"
)

// ChunkSize is the largest inbound read decrypted as one cipher call.
const ChunkSize = 512

// ErrHandshake wraps every failure that happens before the session is Active.
var ErrHandshake = errors.New("session: handshake failed")

// Options configures a Session. The zero value uses the default group,
// crypto/rand and the standard logrus logger.
type Options struct {
	Group  crypto.Group
	Rand   io.Reader
	Logger *logrus.Entry
}

// Session owns conn for its whole lifetime.
type Session struct {
	conn  domain.Conn
	role  domain.Role
	group crypto.Group
	rand  io.Reader
	log   *logrus.Entry

	state       atomic.Int32
	secret      *secretCell
	inboundDone chan struct{}
	doneOnce    sync.Once
}

// New prepares a session for role over conn. Nothing is sent until Run.
func New(conn domain.Conn, role domain.Role, opts Options) *Session {
	if opts.Group == (crypto.Group{}) {
		opts.Group = crypto.DefaultGroup()
	}
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Session{
		conn:        conn,
		role:        role,
		group:       opts.Group,
		rand:        opts.Rand,
		log:         opts.Logger.WithField("role", role.String()),
		secret:      newSecretCell(),
		inboundDone: make(chan struct{}),
	}
	s.state.Store(int32(domain.Handshaking))
	return s
}

// State reports the current lifecycle state.
func (s *Session) State() domain.State { return domain.State(s.state.Load()) }

// Secret returns the shared secret once the handshake has completed.
func (s *Session) Secret() (domain.SharedSecret, bool) { return s.secret.peek() }

// InboundDone is closed when the inbound path has stopped, or when it never
// started because the handshake failed.
func (s *Session) InboundDone() <-chan struct{} { return s.inboundDone }

// Run performs the handshake, starts the inbound path feeding sink and then
// drives the outbound path from src until it ends. It returns nil when src
// is exhausted, an ErrHandshake-wrapped error if the exchange failed, or the
// write error that ended the outbound path.
func (s *Session) Run(src domain.LineSource, sink domain.InboundSink) error {
	defer s.close()

	s.log.Info("starting key exchange")
	res, err := handshake.Run(s.conn, s.role, s.group, s.rand)
	if err != nil {
		s.stopInbound()
		return fmt.Errorf("%w: %w", ErrHandshake, err)
	}
	s.secret.publish(res.Secret)
	s.log.WithField("fingerprint", crypto.Fingerprint(res.Secret)).Info("key exchange complete")
	s.log.WithField("secret", res.Secret.String()).Debug("shared secret")

	s.state.Store(int32(domain.Active))
	go s.inbound(sink)
	return s.outbound(src)
}

func (s *Session) inbound(sink domain.InboundSink) {
	defer s.stopInbound()

	key := s.secret.wait()
	buf := make([]byte, ChunkSize)
	for {
		n, err := s.conn.Read(buf)
		if n > 0 {
			plain := crypto.Transform(buf[:n], key)
			perr := sink.Inbound(plain)
			memzero.Zero(plain)
			if perr != nil {
				s.log.WithError(perr).Warn("inbound output failed")
				return
			}
		}
		switch {
		case errors.Is(err, io.EOF), err == nil && n == 0:
			s.log.Info("peer closed connection")
			return
		case err != nil:
			s.log.WithError(err).Info("inbound read stopped")
			return
		}
	}
}

func (s *Session) outbound(src domain.LineSource) error {
	key := s.secret.wait()
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		ct := crypto.Transform(line, key)
		memzero.Zero(line)
		if _, err := s.conn.Write(ct); err != nil {
			return fmt.Errorf("send: %w", err)
		}
	}
}

func (s *Session) stopInbound() {
	s.doneOnce.Do(func() { close(s.inboundDone) })
}

func (s *Session) close() {
	s.state.Store(int32(domain.Closed))
	if err := s.conn.Close(); err != nil {
		s.log.WithError(err).Debug("close connection")
	}
	s.log.Info("session closed")
}
