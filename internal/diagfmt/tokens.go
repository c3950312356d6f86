package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"pyfmt/internal/token"
)

type TokenOutput struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

type TokensOutput struct {
	Tokens []TokenOutput `json:"tokens"`
	Count  int           `json:"count"`
}

// FormatTokensPretty writes one numbered row per token. Layout tokens have no
// text; everything else shows its quoted source text.
func FormatTokensPretty(w io.Writer, tokens []token.Token) {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%4d: %-8s", i, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d\n", tok.Line, tok.Col+1)
	}
}

// FormatTokensJSON writes the token stream as one indented JSON document.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := TokensOutput{Tokens: make([]TokenOutput, 0, len(tokens))}
	for i, tok := range tokens {
		out.Tokens = append(out.Tokens, TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Line:  tok.Line,
			Col:   tok.Col + 1,
		})
	}
	out.Count = len(out.Tokens)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
