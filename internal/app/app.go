package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"cipherchat/internal/console"
	"cipherchat/internal/crypto"
	"cipherchat/internal/domain"
	"cipherchat/internal/services/session"
	"cipherchat/internal/transport"
)

// App is one configured peer.
type App struct {
	cfg Config
	log *logrus.Entry
}

// New validates cfg and fills in defaults.
func New(cfg Config) (*App, error) {
	if cfg.Address == "" {
		return nil, errors.New("address required")
	}
	if cfg.Role != domain.Listener && cfg.Role != domain.Initiator {
		return nil, fmt.Errorf("unknown role %v", cfg.Role)
	}
	if cfg.Network == "" {
		cfg.Network = transport.TCP
	}
	if cfg.Group == (crypto.Group{}) {
		cfg.Group = crypto.DefaultGroup()
	}
	if err := cfg.Group.Validate(); err != nil {
		return nil, err
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &App{
		cfg: cfg,
		log: cfg.Logger.WithField("network", string(cfg.Network)),
	}, nil
}

// Run connects, then chats until stdin is exhausted or the connection
// breaks on write.
func (a *App) Run(ctx context.Context) error {
	conn, err := a.Connect(ctx)
	if err != nil {
		return err
	}
	sess := session.New(conn, a.cfg.Role, session.Options{
		Group:  a.cfg.Group,
		Rand:   a.cfg.Rand,
		Logger: a.log,
	})
	return sess.Run(console.NewLineReader(a.cfg.Stdin), console.NewPrinter(a.cfg.Stdout))
}

// Run is shorthand for New followed by App.Run.
func Run(ctx context.Context, cfg Config) error {
	a, err := New(cfg)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
