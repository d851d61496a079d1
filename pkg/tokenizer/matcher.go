package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ian-shakespeare/libtok/pkg/array"
	"github.com/ian-shakespeare/libtok/pkg/runes"
)

// fallback matches any single unit. It is always the last alternative.
const fallback = `(?s:(.))`

// matcher is the composite of every registered pattern, anchored at the
// cursor. groups[i] is the capture group wrapping alternative i and types[i]
// is the type it resolves to; the last alternative is the fallback.
type matcher struct {
	re     *regexp.Regexp
	groups []int
	types  []TokenType
}

func compile(entries []entry) (*matcher, error) {
	m := &matcher{}

	var b strings.Builder
	b.WriteString(`\A(?:`)

	group := 1
	for _, e := range entries {
		re, err := regexp.Compile(e.pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern for token type %d: %w", e.typ, err)
		}

		b.WriteString("(" + e.pattern + ")|")
		m.groups = append(m.groups, group)
		m.types = append(m.types, e.typ)
		group += 1 + re.NumSubexp()
	}

	b.WriteString(fallback + ")")
	m.groups = append(m.groups, group)
	m.types = append(m.types, ERROR_TOKEN)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("composite pattern: %w", err)
	}
	m.re = re
	return m, nil
}

func (m *matcher) isFallback(alt int) bool {
	return alt == len(m.groups)-1
}

// resolve picks the earliest alternative that took part in loc and returns it
// with the length of its match, or -1 when loc holds no match. The fallback
// is always one unit long.
func (m *matcher) resolve(loc []int) (int, int) {
	if loc == nil {
		return -1, 0
	}

	alt := array.Index(m.groups, func(group int) bool {
		return loc[2*group] >= 0
	})
	if alt < 0 {
		return -1, 0
	}
	if m.isFallback(alt) {
		return alt, 1
	}

	group := m.groups[alt]
	return alt, loc[2*group+1] - loc[2*group]
}

// find runs the composite pattern on buf starting at cur. Positions in the
// result are unit offsets relative to cur.
func find[U CodeUnit](m *matcher, buf []U, cur int) []int {
	switch src := any(buf[cur:]).(type) {
	case []byte:
		return m.re.FindSubmatchIndex(src)
	case []rune:
		return runes.FindSubmatchIndex(m.re, src)
	}
	return nil
}
