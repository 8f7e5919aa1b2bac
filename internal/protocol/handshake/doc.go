// Package handshake runs the public-key exchange that opens every session.
//
// # Wire format
//
// Each side writes exactly 8 bytes, its public key in big-endian order, and
// reads exactly 8 bytes from the peer. There is no version byte, no framing
// and no authentication.
//
// # Ordering
//
// Listener: write own public key, then read the peer's.
// Initiator: read the peer's public key, then write own.
//
// The result is the same shared secret either way. A short read is an
// error; nothing partial is ever returned.
package handshake
