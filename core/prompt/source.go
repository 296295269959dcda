// Package prompt asks questions and reads answers one line at a time.
package prompt

import (
	"bufio"
	"io"
	"strings"
)

// LineSource yields one line of user input per call. It returns an error,
// typically io.EOF, once no further line can be read.
type LineSource interface {
	ReadLine() (string, error)
}

// ReaderSource reads newline-terminated lines from an io.Reader.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps r, usually os.Stdin.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator. A final line that
// is not newline-terminated is still returned; io.EOF is reported only when
// nothing at all was read.
func (s *ReaderSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// LinesSource replays a fixed sequence of lines, then reports io.EOF.
type LinesSource struct {
	lines []string
	next  int
}

// NewLinesSource returns a source over lines.
func NewLinesSource(lines ...string) *LinesSource {
	return &LinesSource{lines: lines}
}

// ReadLine returns the next supplied line.
func (s *LinesSource) ReadLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Remaining reports how many lines have not been consumed.
func (s *LinesSource) Remaining() int {
	return len(s.lines) - s.next
}
