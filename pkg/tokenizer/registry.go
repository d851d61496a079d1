package tokenizer

import (
	"fmt"

	"github.com/ian-shakespeare/libtok/pkg/array"
)

type entry struct {
	pattern string
	typ     TokenType
}

// AddTokenType registers pattern as type typ with an optional display name.
// Earlier registrations take priority over later ones. User types must not be
// negative; negative codes are reserved for the builtin types.
func (t *Tokenizer[U]) AddTokenType(pattern string, typ TokenType, name ...string) {
	if typ < 0 {
		panic(fmt.Errorf("%w: %d", ErrReservedType, typ))
	}
	t.add(pattern, typ, name...)
}

func (t *Tokenizer[U]) add(pattern string, typ TokenType, name ...string) {
	if t.assigned {
		panic(ErrAddAfterAssign)
	}
	if len(name) > 1 {
		panic(fmt.Sprintf("tokenizer: expected at most one display name, got %d", len(name)))
	}
	if array.Some(t.entries, func(e entry) bool { return e.typ == typ }) {
		panic(fmt.Errorf("%w: %d", ErrDuplicateType, typ))
	}

	t.entries = append(t.entries, entry{pattern: pattern, typ: typ})
	if len(name) == 1 {
		t.names[typ] = name[0]
	}
}

// TypeString returns the display name registered for typ.
func (t *Tokenizer[U]) TypeString(typ TokenType) (string, bool) {
	name, ok := t.names[typ]
	return name, ok
}

// CurrentTokenTypeString returns the display name of the current token's type.
// It panics if the type was registered without one.
func (t *Tokenizer[U]) CurrentTokenTypeString() string {
	name, ok := t.TypeString(t.tok.Type)
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrNoTypeString, t.tok.Type))
	}
	return name
}
