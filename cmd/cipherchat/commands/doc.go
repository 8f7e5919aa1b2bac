// Package commands defines the cipherchat CLI.
//
// Commands
//
//   - server PORT   Wait for one peer on PORT, then chat (alias: listen)
//   - client ADDR   Connect to a peer at HOST:PORT, then chat (alias: connect)
//
// # Flags
//
//	--network tcp|kcp   transport for the raw byte stream (default tcp)
//	--bind HOST         interface the server binds (default 0.0.0.0)
//	-v, --verbose       debug logging, including the raw shared secret
//
// Lines typed on stdin are encrypted and sent; text from the peer is printed
// on stdout prefixed with "> ". Connection events are logged on stderr. The
// process exits when stdin is closed or a send fails.
package commands
