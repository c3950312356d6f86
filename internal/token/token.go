package token

import (
	"pyfmt/internal/source"
)

// Token is a single lexical unit with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Line uint32 // 1-based start line
	Col  uint32 // 0-based start column
	Text string
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsLayout reports whether the token is a synthesized layout token.
func (t Token) IsLayout() bool { return t.Kind.IsLayout() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// OpensBlock reports whether the token introduces a compound statement whose
// body may be an indented suite.
func (t Token) OpensBlock() bool {
	switch t.Kind {
	case KwIf, KwWhile, KwFor, KwTry, KwWith, KwClass, KwDef:
		return true
	default:
		return false
	}
}
