package domain

import "fmt"

// Role selects which side of the connection a peer plays. The zero value is
// not a valid role.
type Role int

const (
	// Listener waits for exactly one incoming connection.
	Listener Role = iota + 1
	// Initiator dials out to a listener.
	Initiator
)

func (r Role) String() string {
	switch r {
	case Listener:
		return "listener"
	case Initiator:
		return "initiator"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// State is the lifecycle stage of a session.
type State int32

const (
	// Handshaking covers the public-key exchange; nothing else flows yet.
	Handshaking State = iota
	// Active means the secret is known and both paths may run.
	Active
	// Closed is terminal; the connection has been released.
	Closed
)

func (s State) String() string {
	switch s {
	case Handshaking:
		return "handshaking"
	case Active:
		return "active"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}
