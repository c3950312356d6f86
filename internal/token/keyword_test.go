package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"False":    KwFalse,
		"None":     KwNone,
		"True":     KwTrue,
		"async":    KwAsync,
		"await":    KwAwait,
		"class":    KwClass,
		"def":      KwDef,
		"elif":     KwElif,
		"lambda":   KwLambda,
		"nonlocal": KwNonlocal,
		"yield":    KwYield,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Def", "CLASS", "true", "none", // case matters
		"match", "case", "type", "_", // soft keywords stay identifiers
		"print", "self", "toString",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
