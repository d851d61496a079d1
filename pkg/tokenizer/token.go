package tokenizer

import "fmt"

type TokenType int

const (
	IDENTIFIER_TOKEN TokenType = -7
	NUMBER_TOKEN     TokenType = -6
	STRING_TOKEN     TokenType = -5
	CHAR_TOKEN       TokenType = -4
	SPACE_TOKEN      TokenType = -3
	NEWLINE_TOKEN    TokenType = -2
	ERROR_TOKEN      TokenType = -1
)

// CodeUnit is the width of a single input unit: byte for narrow input, rune
// for wide input.
type CodeUnit interface {
	byte | rune
}

// Token is a classified span [Start, End) of the assigned buffer. Value aliases
// the buffer and is only valid while the buffer is left untouched.
type Token[U CodeUnit] struct {
	Type  TokenType
	Value []U
	Start int
	End   int
	Line  int
}

func (t Token[U]) Len() int {
	return t.End - t.Start
}

func (t Token[U]) String() string {
	return fmt.Sprintf("%d:%d %d %q", t.Line, t.Start, t.Type, t.Text())
}

// Text returns the token value as a string regardless of unit width.
func (t Token[U]) Text() string {
	switch v := any(t.Value).(type) {
	case []byte:
		return string(v)
	case []rune:
		return string(v)
	}
	return ""
}
