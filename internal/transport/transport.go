package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
)

// Network names a supported transport.
type Network string

const (
	TCP Network = "tcp"
	KCP Network = "kcp"
)

var (
	ErrUnknownNetwork = errors.New("transport: unknown network")
	ErrListenerUsed   = errors.New("transport: listener already accepted its peer")
	ErrPeerClosed     = errors.New("transport: peer closed the connection")
)

// ParseNetwork maps a flag value to a Network.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case TCP, KCP:
		return n, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
	}
}

// Listener yields a single connected peer.
type Listener interface {
	// Accept blocks until a peer connects and then stops accepting. Calling
	// it again returns ErrListenerUsed.
	Accept() (net.Conn, error)
	Addr() net.Addr
	Close() error
}

// Listen binds addr on network.
func Listen(network Network, addr string, log *logrus.Entry) (Listener, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	var (
		ln  Listener
		err error
	)
	switch network {
	case TCP:
		ln, err = listenTCP(addr)
	case KCP:
		ln, err = listenKCP(addr, log)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
	if err != nil {
		return nil, err
	}
	return ln, nil
}

// Dial connects to addr on network.
func Dial(ctx context.Context, network Network, addr string) (net.Conn, error) {
	switch network {
	case TCP:
		var d net.Dialer
		return d.DialContext(ctx, "tcp", addr)
	case KCP:
		return dialKCP(addr)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
}
