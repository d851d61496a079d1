package runes

import (
	"io"
	"regexp"
	"unicode/utf8"
)

// Reader reads runes from a borrowed slice. It never copies src.
type Reader struct {
	src []rune
	pos int
}

func NewReader(src []rune) *Reader {
	return &Reader{src: src}
}

// ReadRune returns the next rune and the size of its UTF-8 encoding. Runes
// that cannot be encoded are reported as utf8.RuneError.
func (r *Reader) ReadRune() (rune, int, error) {
	if r.pos >= len(r.src) {
		return 0, 0, io.EOF
	}

	char := r.src[r.pos]
	r.pos++
	if !utf8.ValidRune(char) {
		char = utf8.RuneError
	}
	return char, utf8.RuneLen(char), nil
}

// Width is the number of bytes ReadRune reports for char.
func Width(char rune) int {
	if !utf8.ValidRune(char) {
		return utf8.RuneLen(utf8.RuneError)
	}
	return utf8.RuneLen(char)
}

// Index converts a byte offset into the encoding produced by Reader into an
// index into src.
func Index(src []rune, offset int) int {
	i, n := 0, 0
	for i < len(src) && n < offset {
		n += Width(src[i])
		i++
	}
	return i
}

// FindSubmatchIndex behaves like regexp.FindSubmatchIndex on src, but every
// returned position is a rune index rather than a byte offset.
func FindSubmatchIndex(re *regexp.Regexp, src []rune) []int {
	loc := re.FindReaderSubmatchIndex(NewReader(src))
	for i, offset := range loc {
		if offset > 0 {
			loc[i] = Index(src, offset)
		}
	}
	return loc
}
