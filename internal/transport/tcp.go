package transport

import (
	"net"
	"sync/atomic"
)

type tcpListener struct {
	ln       net.Listener
	claimed  atomic.Bool
	accepted atomic.Bool
}

func listenTCP(addr string) (*tcpListener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &tcpListener{ln: ln}, nil
}

func (l *tcpListener) Accept() (net.Conn, error) {
	if !l.claimed.CompareAndSwap(false, true) {
		return nil, ErrListenerUsed
	}
	conn, err := l.ln.Accept()
	// Stop accepting whatever happened; later peers are refused by the OS.
	_ = l.ln.Close()
	if err != nil {
		return nil, err
	}
	l.accepted.Store(true)
	return conn, nil
}

func (l *tcpListener) Addr() net.Addr { return l.ln.Addr() }

func (l *tcpListener) Close() error {
	if l.accepted.Load() {
		return nil
	}
	return l.ln.Close()
}
