package tokenizer

import "iter"

// scan matches at the cursor without moving it. ok is false at end of input
// and when a recovered PatternNotMatched leaves nothing to consume.
func (t *Tokenizer[U]) scan() (Token[U], bool) {
	t.mustBeAssigned()

	if t.cur >= len(t.buf) {
		return t.errorToken(), false
	}

	alt, n := t.matcher.resolve(find(t.matcher, t.buf, t.cur))
	if alt < 0 || n == 0 {
		t.raise(PatternNotMatched, t.cur)
		return t.errorToken(), false
	}

	end := t.cur + n
	return Token[U]{
		Type:  t.matcher.types[alt],
		Value: t.buf[t.cur:end:end],
		Start: t.cur,
		End:   end,
		Line:  t.line,
	}, true
}

func (t *Tokenizer[U]) errorToken() Token[U] {
	return Token[U]{
		Type:  ERROR_TOKEN,
		Value: t.buf[t.cur:t.cur:t.cur],
		Start: t.cur,
		End:   t.cur,
		Line:  t.line,
	}
}

// Next consumes the token at the cursor and returns its type. It returns
// ERROR_TOKEN at end of input and for units no pattern accepts; use Done to
// tell them apart.
func (t *Tokenizer[U]) Next() TokenType {
	tok, ok := t.scan()
	t.tok = tok
	if !ok {
		return ERROR_TOKEN
	}

	t.prev = t.cur
	t.cur = tok.End
	if tok.Type == NEWLINE_TOKEN {
		t.line++
	}
	return tok.Type
}

// Peek classifies the token at the cursor and makes it the current token
// without consuming it.
func (t *Tokenizer[U]) Peek() TokenType {
	t.tok, _ = t.scan()
	return t.tok.Type
}

// Expect reports whether the next token has type typ. On mismatch the handler
// is called with UnexpectedToken. Expect never consumes.
func (t *Tokenizer[U]) Expect(typ TokenType) bool {
	if t.Peek() != typ {
		t.raise(UnexpectedToken, t.cur)
		return false
	}
	return true
}

// TryGet consumes the next token only if it has type typ.
func (t *Tokenizer[U]) TryGet(typ TokenType) bool {
	if t.Peek() != typ {
		return false
	}
	t.Next()
	return true
}

func (t *Tokenizer[U]) Succeed(typ TokenType) bool {
	return typ != ERROR_TOKEN
}

// Tokens consumes the rest of the input. Unclassified units are yielded as
// ERROR_TOKEN; iteration stops at end of input or when Next cannot advance.
func (t *Tokenizer[U]) Tokens() iter.Seq[Token[U]] {
	return func(yield func(Token[U]) bool) {
		for !t.Done() {
			before := t.cur
			t.Next()
			if t.cur == before {
				return
			}
			if !yield(t.tok) {
				return
			}
		}
	}
}
