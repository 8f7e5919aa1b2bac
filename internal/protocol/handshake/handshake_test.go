package handshake_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherchat/internal/crypto"
	"cipherchat/internal/domain"
	"cipherchat/internal/protocol/handshake"
)

// fixedKey returns an entropy source that yields priv as the private key.
func fixedKey(priv uint64) io.Reader {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], priv)
	return bytes.NewReader(b[:])
}

func runPair(t *testing.T, group crypto.Group, lrand, irand io.Reader) (handshake.Result, handshake.Result) {
	t.Helper()
	lc, ic := net.Pipe()
	defer lc.Close()
	defer ic.Close()

	type out struct {
		res handshake.Result
		err error
	}
	ch := make(chan out, 1)
	go func() {
		res, err := handshake.Run(lc, domain.Listener, group, lrand)
		ch <- out{res, err}
	}()

	ires, err := handshake.Run(ic, domain.Initiator, group, irand)
	require.NoError(t, err)

	select {
	case o := <-ch:
		require.NoError(t, o.err)
		return o.res, ires
	case <-time.After(5 * time.Second):
		t.Fatal("listener handshake did not finish")
	}
	return handshake.Result{}, handshake.Result{}
}

func TestRun_FixedKeysAgree(t *testing.T) {
	g := crypto.DefaultGroup()
	lres, ires := runPair(t, g, fixedKey(0xA5A5A5A5DEADBEEF), fixedKey(0x0BADF00D12345678))

	assert.Equal(t, lres.Secret, ires.Secret)
	assert.Equal(t, lres.Local, ires.Peer)
	assert.Equal(t, ires.Local, lres.Peer)
	assert.Equal(t, g.PublicKey(0xA5A5A5A5DEADBEEF), lres.Local)
	assert.Equal(t, g.ComputeSecret(g.PublicKey(0x0BADF00D12345678), 0xA5A5A5A5DEADBEEF), lres.Secret)
}

func TestRun_RandomKeysAgree(t *testing.T) {
	lres, ires := runPair(t, crypto.DefaultGroup(), rand.Reader, rand.Reader)
	assert.Equal(t, lres.Secret, ires.Secret)
}

func TestRun_SmallTestGroup(t *testing.T) {
	lres, ires := runPair(t, crypto.Group{P: 23, G: 5}, fixedKey(6), fixedKey(15))
	assert.Equal(t, domain.PublicKey(8), lres.Local)
	assert.Equal(t, domain.PublicKey(19), ires.Local)
	assert.Equal(t, domain.SharedSecret(2), lres.Secret)
	assert.Equal(t, domain.SharedSecret(2), ires.Secret)
}

// scripted replays a fixed inbound byte sequence and records writes.
type scripted struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func (s *scripted) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s *scripted) Write(p []byte) (int, error) { return s.out.Write(p) }

func TestRun_ListenerWritesFirst(t *testing.T) {
	g := crypto.Group{P: 23, G: 5}
	rw := &scripted{in: bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 19})}

	res, err := handshake.Run(rw, domain.Listener, g, fixedKey(6))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 8}, rw.out.Bytes())
	assert.Equal(t, domain.SharedSecret(2), res.Secret)
}

func TestRun_ShortReadFails(t *testing.T) {
	for _, role := range []domain.Role{domain.Listener, domain.Initiator} {
		rw := &scripted{in: bytes.NewReader([]byte{1, 2, 3})}
		_, err := handshake.Run(rw, role, crypto.DefaultGroup(), rand.Reader)
		require.Error(t, err, role.String())
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), role.String())
	}
}

func TestRun_InitiatorDoesNotWriteBeforeReading(t *testing.T) {
	rw := &scripted{in: bytes.NewReader(nil)}
	_, err := handshake.Run(rw, domain.Initiator, crypto.DefaultGroup(), rand.Reader)
	require.ErrorIs(t, err, io.EOF)
	assert.Zero(t, rw.out.Len())
}

type failingWriter struct{ io.Reader }

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRun_WriteFailure(t *testing.T) {
	_, err := handshake.Run(failingWriter{bytes.NewReader(nil)}, domain.Listener, crypto.DefaultGroup(), rand.Reader)
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestRun_BadGroupRejectedBeforeIO(t *testing.T) {
	rw := &scripted{in: bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 1})}
	_, err := handshake.Run(rw, domain.Listener, crypto.Group{P: 0, G: 2}, rand.Reader)
	require.ErrorIs(t, err, crypto.ErrBadModulus)
	assert.Zero(t, rw.out.Len())
}
