// Package tokenizer classifies an input buffer into tokens using an ordered
// list of regular expressions. It is meant to sit underneath a hand-written
// recursive-descent parser: register patterns, Assign the input once, then
// drive it with Next, Peek, Expect and TryGet.
//
// Patterns are tried in registration order and the first one that matches at
// the cursor wins, even if a later pattern would match more input. Any unit no
// pattern accepts becomes a one-unit ERROR_TOKEN, so every call to Next makes
// progress until the input is exhausted.
//
// The tokenizer borrows the buffer passed to Assign for its whole lifetime and
// every Token.Value aliases it. Modifying the buffer while the tokenizer or its
// tokens are in use is undefined behaviour. A Tokenizer is not safe for
// concurrent use.
package tokenizer

type Tokenizer[U CodeUnit] struct {
	entries []entry
	names   map[TokenType]string
	handle  Handler
	matcher *matcher

	buf      []U
	assigned bool
	cur      int
	prev     int
	line     int
	tok      Token[U]
}

// Narrow tokenizes byte input.
type Narrow = Tokenizer[byte]

// Wide tokenizes rune input.
type Wide = Tokenizer[rune]

func New[U CodeUnit]() *Tokenizer[U] {
	return &Tokenizer[U]{
		names:  map[TokenType]string{},
		handle: Fatal,
		line:   1,
		tok:    Token[U]{Type: ERROR_TOKEN, Line: 1},
	}
}

func NewNarrow() *Narrow {
	return New[byte]()
}

func NewWide() *Wide {
	return New[rune]()
}

// Assign compiles the registered patterns and starts tokenizing buf. It may be
// called only once. The returned error reports a pattern that does not compile.
func (t *Tokenizer[U]) Assign(buf []U) error {
	if t.assigned {
		panic(ErrAlreadyAssigned)
	}

	m, err := compile(t.entries)
	if err != nil {
		return err
	}

	t.matcher = m
	t.buf = buf
	t.cur = 0
	t.prev = 0
	t.line = 1
	t.tok = Token[U]{Type: ERROR_TOKEN, Value: buf[:0:0], Line: 1}
	t.assigned = true
	return nil
}

func (t *Tokenizer[U]) CurrentToken() Token[U] {
	return t.tok
}

// Pos is the cursor, the index of the next unit Next will consume.
func (t *Tokenizer[U]) Pos() int {
	return t.cur
}

// Prev is the cursor as it was before the last successful Next.
func (t *Tokenizer[U]) Prev() int {
	return t.prev
}

// Line is the current line, starting at 1.
func (t *Tokenizer[U]) Line() int {
	return t.line
}

// Done reports whether the input is exhausted. Unlike the ERROR_TOKEN result of
// Next, it tells end-of-input apart from an unclassified unit.
func (t *Tokenizer[U]) Done() bool {
	return t.assigned && t.cur >= len(t.buf)
}

func (t *Tokenizer[U]) mustBeAssigned() {
	if !t.assigned {
		panic(ErrNotAssigned)
	}
}
