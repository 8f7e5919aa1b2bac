package app

import (
	"io"
	"net"

	"github.com/sirupsen/logrus"

	"cipherchat/internal/crypto"
	"cipherchat/internal/domain"
	"cipherchat/internal/transport"
)

// Config holds runtime wiring options for one chat session.
type Config struct {
	Role    domain.Role
	Address string            // listener: bind host:port; initiator: peer host:port
	Network transport.Network // defaults to tcp
	Group   crypto.Group      // defaults to crypto.DefaultGroup()
	Rand    io.Reader         // defaults to crypto/rand
	Stdin   io.Reader         // outbound lines
	Stdout  io.Writer         // inbound text
	Logger  *logrus.Logger    // defaults to the standard logger

	// OnListen, if set, is called with the bound address before the
	// listener blocks in Accept.
	OnListen func(net.Addr)
}
