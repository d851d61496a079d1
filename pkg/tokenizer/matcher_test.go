package tokenizer_test

import (
	"testing"

	"github.com/ian-shakespeare/libtok/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority(t *testing.T) {
	t.Parallel()

	t.Run("shorterFirst", func(t *testing.T) {
		t.Parallel()

		tk := tokenizer.NewNarrow()
		tk.AddTokenType(`=`, ASSIGN_TOKEN)
		tk.AddTokenType(`==`, EQUAL_TOKEN)
		require.NoError(t, tk.Assign([]byte("==")))

		assert.Equal(t, ASSIGN_TOKEN, tk.Next())
		assert.Equal(t, "=", tk.CurrentToken().Text())
		assert.Equal(t, ASSIGN_TOKEN, tk.Next())
		assert.True(t, tk.Done())
	})

	t.Run("longerFirst", func(t *testing.T) {
		t.Parallel()

		tk := tokenizer.NewNarrow()
		tk.AddTokenType(`==`, EQUAL_TOKEN)
		tk.AddTokenType(`=`, ASSIGN_TOKEN)
		require.NoError(t, tk.Assign([]byte("===")))

		assert.Equal(t, EQUAL_TOKEN, tk.Next())
		assert.Equal(t, "==", tk.CurrentToken().Text())
		assert.Equal(t, ASSIGN_TOKEN, tk.Next())
		assert.True(t, tk.Done())
	})

	t.Run("keywordBeforeIdentifier", func(t *testing.T) {
		t.Parallel()

		tk := tokenizer.NewNarrow()
		tk.AddTokenType(`if`, PLUS_TOKEN)
		require.True(t, tk.AddBuiltinTokenType(tokenizer.IDENTIFIER_TOKEN))
		require.NoError(t, tk.Assign([]byte("iffy")))

		assert.Equal(t, PLUS_TOKEN, tk.Next())
		assert.Equal(t, tokenizer.IDENTIFIER_TOKEN, tk.Next())
		assert.Equal(t, "fy", tk.CurrentToken().Text())
	})
}

func TestPatternGroups(t *testing.T) {
	t.Parallel()

	tk := tokenizer.NewNarrow()
	tk.AddTokenType(`(a)(b)`, PLUS_TOKEN)
	tk.AddTokenType(`(x)?y`, MINUS_TOKEN)
	tk.AddTokenType(`c`, ASSIGN_TOKEN)
	require.NoError(t, tk.Assign([]byte("abycxy")))

	expected := []struct {
		typ  tokenizer.TokenType
		text string
	}{
		{PLUS_TOKEN, "ab"},
		{MINUS_TOKEN, "y"},
		{ASSIGN_TOKEN, "c"},
		{MINUS_TOKEN, "xy"},
	}

	for _, e := range expected {
		assert.Equal(t, e.typ, tk.Next())
		assert.Equal(t, e.text, tk.CurrentToken().Text())
	}
	assert.True(t, tk.Done())
}

func TestFallback(t *testing.T) {
	t.Parallel()

	t.Run("noPatterns", func(t *testing.T) {
		t.Parallel()

		tk := newNarrow(t, "a")
		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, 1, tk.Pos())
		assert.Equal(t, 1, tk.CurrentToken().Len())
		assert.Equal(t, "a", tk.CurrentToken().Text())
		assert.True(t, tk.Done())

		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, 1, tk.Pos())
	})

	t.Run("narrowSingleByte", func(t *testing.T) {
		t.Parallel()

		tk := newNarrow(t, "é")
		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, []byte{0xc3}, tk.CurrentToken().Value)
		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, []byte{0xa9}, tk.CurrentToken().Value)
		assert.True(t, tk.Done())
	})

	t.Run("wideSingleRune", func(t *testing.T) {
		t.Parallel()

		tk := tokenizer.NewWide()
		require.NoError(t, tk.Assign([]rune("é\n")))
		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, []rune("é"), tk.CurrentToken().Value)
		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, []rune("\n"), tk.CurrentToken().Value)
		assert.True(t, tk.Done())
	})

	// Both an unclassified unit and end of input are reported as ERROR_TOKEN.
	// Done is the only way to tell them apart.
	t.Run("sentinelIsShared", func(t *testing.T) {
		t.Parallel()

		tk := newNarrow(t, "a?", tokenizer.IDENTIFIER_TOKEN)
		assert.Equal(t, tokenizer.IDENTIFIER_TOKEN, tk.Next())

		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, 1, tk.CurrentToken().Len())
		assert.True(t, tk.Done())

		assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
		assert.Equal(t, 0, tk.CurrentToken().Len())
		assert.Equal(t, 2, tk.Pos())
	})
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		name      string
		value     string
		tokenType tokenizer.TokenType
	}{
		{"identifier", "_foo1", tokenizer.IDENTIFIER_TOKEN},
		{"identifierUpper", "FooBar", tokenizer.IDENTIFIER_TOKEN},
		{"integer", "42", tokenizer.NUMBER_TOKEN},
		{"integerNegative", "-42", tokenizer.NUMBER_TOKEN},
		{"real", "3.25", tokenizer.NUMBER_TOKEN},
		{"realNegative", "-0.5", tokenizer.NUMBER_TOKEN},
		{"string", `"hello world"`, tokenizer.STRING_TOKEN},
		{"stringEmpty", `""`, tokenizer.STRING_TOKEN},
		{"stringEscapedQuote", `"a\"b"`, tokenizer.STRING_TOKEN},
		{"stringEscapedSlash", `"\\"`, tokenizer.STRING_TOKEN},
		{"char", `'a'`, tokenizer.CHAR_TOKEN},
		{"charEscaped", `'\''`, tokenizer.CHAR_TOKEN},
		{"space", " \t  ", tokenizer.SPACE_TOKEN},
		{"newline", "\n\n", tokenizer.NEWLINE_TOKEN},
		{"newlineCrlf", "\r\n\r\n", tokenizer.NEWLINE_TOKEN},
		{"newlineCr", "\r\r", tokenizer.NEWLINE_TOKEN},
	}

	for _, input := range inputs {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			tk := newNarrow(t, input.value, input.tokenType)
			assert.Equal(t, input.tokenType, tk.Next())
			assert.Equal(t, input.value, tk.CurrentToken().Text())
			assert.True(t, tk.Done())
		})
	}

	partials := []struct {
		name      string
		value     string
		tokenType tokenizer.TokenType
		expect    string
	}{
		{"identifierDigitStart", "1abc", tokenizer.IDENTIFIER_TOKEN, "1"},
		{"realTrailingDot", "3.", tokenizer.NUMBER_TOKEN, "3"},
		{"stringUnterminated", `"abc`, tokenizer.STRING_TOKEN, `"`},
		{"stringMultiline", "\"a\nb\"", tokenizer.STRING_TOKEN, `"`},
		{"charUnterminated", `'a`, tokenizer.CHAR_TOKEN, `'`},
		{"newlineMixed", "\n\r", tokenizer.NEWLINE_TOKEN, "\n"},
	}

	for _, input := range partials {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			tk := newNarrow(t, input.value, input.tokenType)
			tk.Next()
			assert.Equal(t, input.expect, tk.CurrentToken().Text())
			assert.False(t, tk.Done())
		})
	}
}

func TestWide(t *testing.T) {
	t.Parallel()

	tk := tokenizer.NewWide()
	tk.AddTokenType(`\p{Han}+`, PLUS_TOKEN, "NAME")
	tk.AddTokenType(`=`, ASSIGN_TOKEN)
	require.True(t, tk.AddBuiltinTokenType(tokenizer.NUMBER_TOKEN))
	require.True(t, tk.AddBuiltinTokenType(tokenizer.SPACE_TOKEN))
	require.NoError(t, tk.Assign([]rune("名前 = 42")))

	expected := []tokenizer.Token[rune]{
		{Type: PLUS_TOKEN, Value: []rune("名前"), Start: 0, End: 2, Line: 1},
		{Type: tokenizer.SPACE_TOKEN, Value: []rune(" "), Start: 2, End: 3, Line: 1},
		{Type: ASSIGN_TOKEN, Value: []rune("="), Start: 3, End: 4, Line: 1},
		{Type: tokenizer.SPACE_TOKEN, Value: []rune(" "), Start: 4, End: 5, Line: 1},
		{Type: tokenizer.NUMBER_TOKEN, Value: []rune("42"), Start: 5, End: 7, Line: 1},
	}

	for _, e := range expected {
		assert.Equal(t, e.Type, tk.Next())
		assert.Equal(t, e, tk.CurrentToken())
	}
	assert.Equal(t, tokenizer.ERROR_TOKEN, tk.Next())
	assert.True(t, tk.Done())
}
