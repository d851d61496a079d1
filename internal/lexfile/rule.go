package lexfile

import (
	"github.com/ian-shakespeare/libtok/pkg/array"
	"github.com/ian-shakespeare/libtok/pkg/tokenizer"
)

// Rule is one entry of a rule set. Exactly one of Builtin and Pattern is set.
type Rule struct {
	Builtin string `mapstructure:"builtin"`
	Pattern string `mapstructure:"pattern"`
	Type    int    `mapstructure:"type"`
	Name    string `mapstructure:"name"`
}

var builtinTypes = map[string]tokenizer.TokenType{
	"identifier": tokenizer.IDENTIFIER_TOKEN,
	"number":     tokenizer.NUMBER_TOKEN,
	"string":     tokenizer.STRING_TOKEN,
	"char":       tokenizer.CHAR_TOKEN,
	"space":      tokenizer.SPACE_TOKEN,
	"newline":    tokenizer.NEWLINE_TOKEN,
}

// DefaultRules is used when a rule set defines no rules.
func DefaultRules() []Rule {
	return []Rule{
		{Builtin: "identifier"},
		{Builtin: "number"},
		{Builtin: "string"},
		{Builtin: "char"},
		{Builtin: "space"},
		{Builtin: "newline"},
	}
}

func (r Rule) tokenType() tokenizer.TokenType {
	if r.Builtin != "" {
		return builtinTypes[r.Builtin]
	}
	return tokenizer.TokenType(r.Type)
}

// ValidateRules checks what the tokenizer would otherwise reject with a panic.
func ValidateRules(rules []Rule) error {
	seen := []tokenizer.TokenType{}

	for i, r := range rules {
		switch {
		case r.Builtin != "" && r.Pattern != "":
			return NewRuleErrorf("rule %d: builtin and pattern are exclusive", i)
		case r.Builtin != "":
			if _, ok := builtinTypes[r.Builtin]; !ok {
				return NewRuleErrorf("rule %d: unknown builtin %q", i, r.Builtin)
			}
			if r.Name != "" {
				return NewRuleErrorf("rule %d: builtin %q has a fixed name", i, r.Builtin)
			}
		case r.Pattern == "":
			return NewRuleErrorf("rule %d: missing pattern", i)
		case r.Type < 0:
			return NewRuleErrorf("rule %d: type %d is reserved", i, r.Type)
		}

		typ := r.tokenType()
		if array.Contains(seen, typ) {
			return NewRuleErrorf("rule %d: duplicate type %d", i, typ)
		}
		seen = append(seen, typ)
	}

	return nil
}

// Build registers rules, in order, on a new tokenizer.
func Build[U tokenizer.CodeUnit](rules []Rule) (*tokenizer.Tokenizer[U], error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	tk := tokenizer.New[U]()
	for _, r := range rules {
		switch {
		case r.Builtin != "":
			tk.AddBuiltinTokenType(r.tokenType())
		case r.Name != "":
			tk.AddTokenType(r.Pattern, r.tokenType(), r.Name)
		default:
			tk.AddTokenType(r.Pattern, r.tokenType())
		}
	}
	return tk, nil
}
