package tokenizer_test

import (
	"testing"

	"github.com/ian-shakespeare/libtok/pkg/tokenizer"
	"github.com/stretchr/testify/require"
)

const (
	PLUS_TOKEN tokenizer.TokenType = iota
	MINUS_TOKEN
	ASSIGN_TOKEN
	EQUAL_TOKEN
)

func newNarrow(t *testing.T, input string, builtins ...tokenizer.TokenType) *tokenizer.Narrow {
	t.Helper()

	tk := tokenizer.NewNarrow()
	for _, b := range builtins {
		require.True(t, tk.AddBuiltinTokenType(b))
	}
	require.NoError(t, tk.Assign([]byte(input)))
	return tk
}

// panicValue returns what f panics with, or nil.
func panicValue(f func()) (v any) {
	defer func() {
		v = recover()
	}()
	f()
	return nil
}

func panicError(t *testing.T, f func()) error {
	t.Helper()

	v := panicValue(f)
	require.NotNil(t, v, "expected a panic")
	err, ok := v.(error)
	require.True(t, ok, "expected panic with an error, got %T", v)
	return err
}
