package lexer

import (
	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

// Options configures a Lexer. The zero value is usable: diagnostics are
// dropped and token text is allocated per token.
type Options struct {
	// Reporter receives lexical diagnostics; nil ignores them while the
	// lexer keeps scanning.
	Reporter diag.Reporter
	// Interner, when set, dedupes identifier and operator text across files.
	Interner *source.Interner
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
