// Package session runs an encrypted two-party chat over a connected byte
// stream.
//
// A Session moves through three states: Handshaking, Active and Closed.
//
// # Handshaking
//
// The 8-byte public-key exchange runs on the caller's goroutine. Any I/O
// failure ends the session with ErrHandshake; there is no retry.
//
// # Active
//
// The shared secret is published once and read by two paths:
//
//   - inbound: a goroutine reads up to ChunkSize bytes at a time, decrypts
//     each read as one cipher call and hands the plaintext to the sink. EOF
//     or a read error stops this path only; the outbound path is not told.
//   - outbound: the caller's goroutine reads lines from the source, encrypts
//     each line as one cipher call and writes it in full. A write error ends
//     Run.
//
// # Closed
//
// Run returns when the outbound path ends and closes the connection on the
// way out. Callers exit once Run returns, whether or not the inbound path
// already stopped.
//
// # Known weaknesses
//
// The keystream restarts for every write and every read, so when one read
// spans several writes only the first write's bytes decrypt correctly. No
// framing exists to fix this without changing the wire format.
package session
