package transport

import (
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	kcp "github.com/xtaci/kcp-go/v5"
)

const preamble byte = 0

type kcpListener struct {
	ln       *kcp.Listener
	log      *logrus.Entry
	claimed  atomic.Bool
	accepted atomic.Bool
}

func listenKCP(addr string, log *logrus.Entry) (*kcpListener, error) {
	ln, err := kcp.ListenWithOptions(addr, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	return &kcpListener{ln: ln, log: log.WithField("network", string(KCP))}, nil
}

func (l *kcpListener) Accept() (net.Conn, error) {
	if !l.claimed.CompareAndSwap(false, true) {
		return nil, ErrListenerUsed
	}

	sess, err := l.ln.AcceptKCP()
	if err != nil {
		_ = l.ln.Close()
		return nil, err
	}
	tune(sess)

	var b [1]byte
	if _, err := io.ReadFull(sess, b[:]); err != nil {
		_ = sess.Close()
		_ = l.ln.Close()
		return nil, fmt.Errorf("kcp preamble: %w", err)
	}

	l.accepted.Store(true)
	go l.refuseRest()
	return newKCPConn(sess, l.ln), nil
}

// refuseRest closes every session that shows up after the first one. It
// returns once the listener is closed.
func (l *kcpListener) refuseRest() {
	for {
		extra, err := l.ln.AcceptKCP()
		if err != nil {
			return
		}
		l.log.WithField("peer", extra.RemoteAddr().String()).Warn("refusing additional peer")
		_ = extra.Close()
	}
}

func (l *kcpListener) Addr() net.Addr { return l.ln.Addr() }

func (l *kcpListener) Close() error {
	if l.accepted.Load() {
		// The accepted session still needs the socket; kcpConn.Close frees it.
		return nil
	}
	return l.ln.Close()
}

// Bytes on a kcp session are stuffed so that the stream can carry an
// in-band close marker. escByte in the payload is sent as escByte escLiteral;
// escByte escClose tells the peer that this side has closed.
const (
	escByte    byte = 0xFF
	escLiteral byte = 0x00
	escClose   byte = 0x01
)

// kcpConn gives a kcp session the close semantics of a TCP stream: a peer
// Close reads as io.EOF, and writes fail with ErrPeerClosed from then on.
// On the listener side it also releases the shared UDP socket.
type kcpConn struct {
	*kcp.UDPSession
	ln *kcp.Listener // nil on the dialing side

	rmu      sync.Mutex
	raw      []byte
	escaped  bool
	peerGone atomic.Bool

	closeOnce sync.Once
	closeErr  error
}

func newKCPConn(sess *kcp.UDPSession, ln *kcp.Listener) *kcpConn {
	return &kcpConn{UDPSession: sess, ln: ln}
}

func (c *kcpConn) Read(p []byte) (int, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()

	if c.peerGone.Load() {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if cap(c.raw) < len(p) {
		c.raw = make([]byte, len(p))
	}
	for {
		n, err := c.UDPSession.Read(c.raw[:len(p)])
		out := 0
		for _, b := range c.raw[:n] {
			if c.escaped {
				c.escaped = false
				if b == escClose {
					c.peerGone.Store(true)
					if out > 0 {
						return out, nil
					}
					return 0, io.EOF
				}
				p[out] = escByte
				out++
				continue
			}
			if b == escByte {
				c.escaped = true
				continue
			}
			p[out] = b
			out++
		}
		if out > 0 || err != nil {
			return out, err
		}
	}
}

func (c *kcpConn) Write(p []byte) (int, error) {
	if c.peerGone.Load() {
		return 0, ErrPeerClosed
	}
	buf := make([]byte, 0, len(p)+len(p)/64+1)
	for _, b := range p {
		buf = append(buf, b)
		if b == escByte {
			buf = append(buf, escLiteral)
		}
	}
	if _, err := c.UDPSession.Write(buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close sends the close marker, best effort, before tearing the session down.
func (c *kcpConn) Close() error {
	c.closeOnce.Do(func() {
		_, _ = c.UDPSession.Write([]byte{escByte, escClose})
		c.closeErr = c.UDPSession.Close()
		if c.ln != nil {
			_ = c.ln.Close()
		}
	})
	return c.closeErr
}

func dialKCP(addr string) (net.Conn, error) {
	sess, err := kcp.DialWithOptions(addr, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	tune(sess)
	if _, err := sess.Write([]byte{preamble}); err != nil {
		_ = sess.Close()
		return nil, fmt.Errorf("kcp preamble: %w", err)
	}
	return newKCPConn(sess, nil), nil
}

func tune(sess *kcp.UDPSession) {
	sess.SetStreamMode(true)
	sess.SetNoDelay(1, 20, 1, 1)
	sess.SetWindowSize(128, 128)
}
