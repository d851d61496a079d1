package tokenizer

type builtin struct {
	pattern string
	name    string
}

var builtins = map[TokenType]builtin{
	IDENTIFIER_TOKEN: {`[a-zA-Z_]\w*`, "IDENTIFIER"},
	NUMBER_TOKEN:     {`-?\d+(?:\.\d+)?`, "NUMBER"},
	STRING_TOKEN:     {`"(?:[^"\\\r\n]|\\[^\r\n])*"`, "STRING"},
	CHAR_TOKEN:       {`'(?:[^'\\\r\n]|\\[^\r\n])*'`, "CHAR"},
	SPACE_TOKEN:      {`[ \t]+`, "SPACE"},
	NEWLINE_TOKEN:    {`(?:\r\n)+|\n+|\r+`, "NEWLINE"},
}

// AddBuiltinTokenType registers one of the predefined token types and reports
// whether typ is one of them. Unsupported types are ignored.
func (t *Tokenizer[U]) AddBuiltinTokenType(typ TokenType) bool {
	b, ok := builtins[typ]
	if !ok {
		return false
	}

	t.add(b.pattern, typ, b.name)
	return true
}
