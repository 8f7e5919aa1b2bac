package console

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"cipherchat/internal/domain"
)

// InboundPrefix tags text that came from the peer.
const InboundPrefix = "> "

// Printer writes inbound chunks to an io.Writer.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer { return &Printer{out: out} }

// Inbound prints one decrypted chunk. The chunk is printed as received; a
// chunk need not end on a line boundary.
func (p *Printer) Inbound(plaintext []byte) error {
	s := lossy(plaintext)

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.out, InboundPrefix+s)
	return err
}

// lossy decodes b as UTF-8, replacing every undecodable byte with U+FFFD.
func lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// LineReader yields newline-terminated lines of any length from an io.Reader.
type LineReader struct {
	br *bufio.Reader
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(in)}
}

// ReadLine returns the next line with a trailing "\n"; "\r\n" is folded to
// "\n". A final line without a terminator is returned with one appended. At
// end of input it returns io.EOF.
func (r *LineReader) ReadLine() ([]byte, error) {
	line, err := r.br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(line) == 0 {
		return nil, io.EOF
	}
	n := len(line)
	switch {
	case line[n-1] != '\n':
		line = append(line, '\n')
	case n >= 2 && line[n-2] == '\r':
		line = append(line[:n-2], '\n')
	}
	return line, nil
}

var (
	_ domain.InboundSink = (*Printer)(nil)
	_ domain.LineSource  = (*LineReader)(nil)
)
