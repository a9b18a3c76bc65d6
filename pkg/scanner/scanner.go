package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Scanner provides rune-wise access to a string.
// Current always holds the look-ahead rune, which is
// consumed by Next.
type Scanner interface {
	Next() rune
	ConsumeRune(r rune) error
	SkipBlanks() rune
	SkipSpaces() rune
	Current() rune
	Peek() rune
	Eof() bool
	Position() int

	Errorf(msg string, args ...interface{}) error
}

type scanner struct {
	in      []byte
	offset  int
	no      int
	current rune
	eof     bool
}

func NewScanner(in string) Scanner {
	s := &scanner{
		in: []byte(in),
	}
	s.Next()
	return s
}

func (s *scanner) Next() rune {
	if s.offset >= len(s.in) {
		s.current = 0
		s.eof = true
		return 0
	}
	r, size := utf8.DecodeRune(s.in[s.offset:])
	s.current = r
	s.offset += size
	s.no++
	return r
}

func (s *scanner) ConsumeRune(r rune) error {
	if s.eof || s.Current() != r {
		return s.Errorf("%q expected", string(r))
	}
	s.Next()
	return nil
}

func (s *scanner) Current() rune {
	return s.current
}

// Peek returns the rune following the current one
// without consuming anything.
func (s *scanner) Peek() rune {
	if s.eof || s.offset >= len(s.in) {
		return 0
	}
	r, _ := utf8.DecodeRune(s.in[s.offset:])
	return r
}

func (s *scanner) Eof() bool {
	return s.eof
}

func (s *scanner) Position() int {
	return s.no
}

func (s *scanner) SkipBlanks() rune {
	n := s.Current()
	for !s.eof && unicode.IsSpace(n) {
		n = s.Next()
	}
	return n
}

// SkipSpaces skips plain space characters, only.
func (s *scanner) SkipSpaces() rune {
	n := s.Current()
	for !s.eof && n == ' ' {
		n = s.Next()
	}
	return n
}

func (s *scanner) Errorf(msg string, args ...interface{}) error {
	return fmt.Errorf("%q %d: %s", string(s.in), s.Position(), fmt.Sprintf(msg, args...))
}
