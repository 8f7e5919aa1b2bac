package app_test

import (
	"bytes"
	"context"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherchat/internal/app"
	"cipherchat/internal/crypto"
	"cipherchat/internal/domain"
	"cipherchat/internal/transport"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNew_Validation(t *testing.T) {
	_, err := app.New(app.Config{Role: domain.Initiator})
	assert.Error(t, err)

	_, err = app.New(app.Config{Role: domain.Role(9), Address: "x:1"})
	assert.Error(t, err)

	// A zero Config picks no role.
	_, err = app.New(app.Config{Address: "x:1"})
	assert.Error(t, err)

	_, err = app.New(app.Config{Role: domain.Initiator, Address: "x:1", Group: crypto.Group{P: 10, G: 2}})
	assert.ErrorIs(t, err, crypto.ErrBadModulus)

	_, err = app.New(app.Config{Role: domain.Initiator, Address: "x:1"})
	assert.NoError(t, err)
}

func TestRun_ConnectFailureIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	logger, _ := test.NewNullLogger()
	err = app.Run(context.Background(), app.Config{
		Role:    domain.Initiator,
		Address: addr,
		Stdin:   bytes.NewReader(nil),
		Stdout:  io.Discard,
		Logger:  logger,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to "+addr)
}

func TestRun_ListenerAndInitiatorChat(t *testing.T) {
	for _, network := range []transport.Network{transport.TCP, transport.KCP} {
		t.Run(string(network), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			logger, hook := test.NewNullLogger()
			bound := make(chan net.Addr, 1)

			lin, lw := io.Pipe()
			var lout syncBuffer
			ldone := make(chan error, 1)
			go func() {
				ldone <- app.Run(ctx, app.Config{
					Role:     domain.Listener,
					Address:  "127.0.0.1:0",
					Network:  network,
					Stdin:    lin,
					Stdout:   &lout,
					Logger:   logger,
					OnListen: func(a net.Addr) { bound <- a },
				})
			}()

			var addr net.Addr
			select {
			case addr = <-bound:
			case <-ctx.Done():
				t.Fatal("listener never bound")
			}

			iin, iw := io.Pipe()
			var iout syncBuffer
			idone := make(chan error, 1)
			go func() {
				idone <- app.Run(ctx, app.Config{
					Role:    domain.Initiator,
					Address: addr.String(),
					Network: network,
					Stdin:   iin,
					Stdout:  &iout,
					Logger:  logger,
				})
			}()

			_, err := io.WriteString(iw, "ping\n")
			require.NoError(t, err)
			require.Eventually(t, func() bool { return lout.String() == "> ping\n" },
				10*time.Second, 20*time.Millisecond)

			_, err = io.WriteString(lw, "pong\n")
			require.NoError(t, err)
			require.Eventually(t, func() bool { return iout.String() == "> pong\n" },
				10*time.Second, 20*time.Millisecond)

			require.NoError(t, iw.Close())
			require.NoError(t, <-idone)

			// The listener's inbound side notices the initiator leaving.
			require.Eventually(t, func() bool {
				for _, e := range hook.AllEntries() {
					if e.Message == "peer closed connection" && e.Data["role"] == "listener" {
						return true
					}
				}
				return false
			}, 10*time.Second, 20*time.Millisecond)

			require.NoError(t, lw.Close())
			require.NoError(t, <-ldone)

			var msgs []string
			for _, e := range hook.AllEntries() {
				msgs = append(msgs, e.Message)
			}
			assert.Contains(t, msgs, "listening")
			assert.Contains(t, msgs, "peer connected")
			assert.Contains(t, msgs, "connected")
			assert.Contains(t, msgs, "key exchange complete")
		})
	}
}
