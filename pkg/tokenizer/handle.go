package tokenizer

import (
	"errors"
	"fmt"
)

var (
	ErrAddAfterAssign  = errors.New("add token type after assign")
	ErrAlreadyAssigned = errors.New("tokenizer already assigned")
	ErrNotAssigned     = errors.New("tokenizer not assigned")
	ErrDuplicateType   = errors.New("duplicate token type")
	ErrReservedType    = errors.New("reserved token type")
	ErrNoTypeString    = errors.New("token type has no display name")
)

type ErrorKind int

const (
	PatternNotMatched ErrorKind = iota
	UnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case PatternNotMatched:
		return "pattern not matched"
	case UnexpectedToken:
		return "unexpected token"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Handler decides whether a failure at pos is recoverable. Returning false
// makes the tokenizer panic with an *Error.
type Handler func(kind ErrorKind, pos int) bool

// Fatal is the handler used when none is set. It never recovers.
func Fatal(ErrorKind, int) bool {
	return false
}

type Error struct {
	Kind ErrorKind
	Pos  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d", e.Kind, e.Pos)
}

// SetHandle installs h as the error handler. A nil h restores Fatal.
func (t *Tokenizer[U]) SetHandle(h Handler) {
	if h == nil {
		h = Fatal
	}
	t.handle = h
}

func (t *Tokenizer[U]) raise(kind ErrorKind, pos int) {
	if !t.handle(kind, pos) {
		panic(&Error{Kind: kind, Pos: pos})
	}
}
