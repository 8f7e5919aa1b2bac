package app

import (
	"context"
	"fmt"
	"net"

	"cipherchat/internal/domain"
	"cipherchat/internal/transport"
)

// Connect establishes the raw connection for the configured role. The
// listener accepts exactly one peer; the initiator dials once.
func (a *App) Connect(ctx context.Context) (net.Conn, error) {
	if a.cfg.Role == domain.Listener {
		return a.listen()
	}
	return a.dial(ctx)
}

func (a *App) listen() (net.Conn, error) {
	ln, err := transport.Listen(a.cfg.Network, a.cfg.Address, a.log)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", a.cfg.Address, err)
	}
	a.log.WithField("addr", ln.Addr().String()).Info("listening")
	if a.cfg.OnListen != nil {
		a.cfg.OnListen(ln.Addr())
	}

	conn, err := ln.Accept()
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("accept: %w", err)
	}
	a.log.WithField("peer", conn.RemoteAddr().String()).Info("peer connected")
	return conn, nil
}

func (a *App) dial(ctx context.Context) (net.Conn, error) {
	conn, err := transport.Dial(ctx, a.cfg.Network, a.cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", a.cfg.Address, err)
	}
	a.log.WithField("addr", a.cfg.Address).Info("connected")
	return conn, nil
}
