// Package transport establishes the raw connection a session runs over.
//
// Two networks are supported:
//
//   - tcp: plain TCP via the net package.
//   - kcp: reliable UDP via github.com/xtaci/kcp-go in stream mode.
//
// # Single-client policy
//
// A Listener hands out exactly one connection. On tcp the listening socket
// is closed after the first Accept. On kcp the UDP socket is shared with the
// accepted session, so it stays open and every later session is closed as
// soon as it appears.
//
// # kcp preamble
//
// A kcp listener only learns about a peer when a datagram arrives, while the
// session handshake makes the listener speak first. Dial therefore writes a
// single zero byte after connecting and Accept consumes it before returning.
// Nothing above this package sees the preamble.
//
// # kcp close signal
//
// KCP has no FIN and writes to UDP never fail, so a closed peer would go
// unnoticed. Every kcp connection stuffs its payload: 0xFF is sent as
// 0xFF 0x00, and Close sends 0xFF 0x01 before releasing the session. A reader
// that sees the marker returns io.EOF, and later writes fail with
// ErrPeerClosed, matching what a session sees over TCP after an orderly
// close. A peer that vanishes without closing (crash, lost route) is still
// not detected on kcp; there are no keepalives or timeouts.
package transport
