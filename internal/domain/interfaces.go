package domain

import "io"

// Conn is the duplex byte stream a session owns. net.Conn satisfies it.
// Read and Write may be called concurrently from different goroutines.
type Conn interface {
	io.ReadWriteCloser
}

// InboundSink receives decrypted inbound chunks for display.
type InboundSink interface {
	Inbound(plaintext []byte) error
}

// LineSource yields outbound lines. Each returned line carries its "\n"
// terminator. It returns io.EOF once input is exhausted.
type LineSource interface {
	ReadLine() ([]byte, error)
}
