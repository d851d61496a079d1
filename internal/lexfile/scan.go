package lexfile

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ian-shakespeare/libtok/pkg/array"
	"github.com/ian-shakespeare/libtok/pkg/iterator"
	"github.com/ian-shakespeare/libtok/pkg/tokenizer"
	"github.com/rs/zerolog"
)

// Record is a token as written by a Scanner.
type Record struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  int    `json:"type"`
	Name  string `json:"name"`
	Text  string `json:"text"`
}

type Scanner struct {
	config Config
	out    io.Writer
	logger zerolog.Logger
}

func NewScanner(config Config, out io.Writer, logger zerolog.Logger) *Scanner {
	return &Scanner{
		config: config,
		out:    out,
		logger: logger,
	}
}

// Scan tokenizes input with the configured rule set and writes one record per
// token. name only labels the output.
func (s *Scanner) Scan(name string, input []byte) error {
	if s.config.Wide {
		return scan(s, name, []rune(string(input)))
	}
	return scan(s, name, input)
}

func scan[U tokenizer.CodeUnit](s *Scanner, name string, input []U) error {
	tk, err := Build[U](s.config.Rules)
	if err != nil {
		return err
	}

	logger := s.logger.With().Str("file", name).Logger()
	tk.SetHandle(func(kind tokenizer.ErrorKind, pos int) bool {
		logger.Error().Stringer("kind", kind).Int("pos", pos).Msg("cannot tokenize")
		return true
	})

	if err := tk.Assign(input); err != nil {
		return NewRuleError(err.Error())
	}

	kept := iterator.Filter(tk.Tokens(), func(tok tokenizer.Token[U]) bool {
		typeName, _ := tk.TypeString(tok.Type)
		return !array.Contains(s.config.Skip, typeName)
	})

	count := 0
	for tok := range kept {
		if tok.Type == tokenizer.ERROR_TOKEN && s.config.Strict {
			return NewSyntaxErrorf("%s:%d: unclassified input %q at %d", name, tok.Line, tok.Text(), tok.Start)
		}

		if err := s.write(record(tk, name, tok)); err != nil {
			return err
		}
		count++
	}

	if !tk.Done() {
		return NewSyntaxErrorf("%s:%d: stopped at %d", name, tk.Line(), tk.Pos())
	}

	logger.Debug().Int("tokens", count).Int("lines", tk.Line()).Msg("tokenized")
	return nil
}

func record[U tokenizer.CodeUnit](tk *tokenizer.Tokenizer[U], file string, tok tokenizer.Token[U]) Record {
	name, ok := tk.TypeString(tok.Type)
	if !ok {
		if tok.Type == tokenizer.ERROR_TOKEN {
			name = "ERROR"
		} else {
			name = strconv.Itoa(int(tok.Type))
		}
	}

	return Record{
		File:  file,
		Line:  tok.Line,
		Start: tok.Start,
		End:   tok.End,
		Type:  int(tok.Type),
		Name:  name,
		Text:  tok.Text(),
	}
}

func (s *Scanner) write(r Record) error {
	if s.config.Format == "json" {
		return json.NewEncoder(s.out).Encode(r)
	}

	_, err := fmt.Fprintf(s.out, "%s:%d:%d\t%s\t%q\n", r.File, r.Line, r.Start, r.Name, r.Text)
	return err
}
