package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Newline terminates a logical line.
	Newline
	// Indent opens an indented block.
	Indent
	// Dedent closes an indented block.
	Dedent

	// Comment is a '#' comment running to the end of its physical line.
	Comment
	// String is a string literal, prefixes and quotes included.
	String
	// Number is a numeric literal.
	Number
	// Ident is an identifier or soft keyword.
	Ident
	// At is the '@' decorator marker.
	At
	// Op is any other operator or delimiter.
	Op

	// KwFalse represents the 'False' keyword.
	KwFalse // False
	// KwNone represents the 'None' keyword.
	KwNone // None
	// KwTrue represents the 'True' keyword.
	KwTrue // True
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwDel represents the 'del' keyword.
	KwDel // del
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExcept represents the 'except' keyword.
	KwExcept // except
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal // nonlocal
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwYield represents the 'yield' keyword.
	KwYield // yield
)

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwFalse && k <= KwYield
}

// IsLayout reports whether k is a synthesized layout token. Layout tokens
// never begin a logical line and are skipped by spacing accounting.
func (k Kind) IsLayout() bool {
	switch k {
	case Newline, Indent, Dedent:
		return true
	default:
		return false
	}
}

// String returns the display name used by token dumps and diagnostics.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Newline:
		return "Newline"
	case Indent:
		return "Indent"
	case Dedent:
		return "Dedent"
	case Comment:
		return "Comment"
	case String:
		return "String"
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case At:
		return "At"
	case Op:
		return "Op"
	case KwFalse:
		return "False"
	case KwNone:
		return "None"
	case KwTrue:
		return "True"
	case KwAnd:
		return "and"
	case KwAs:
		return "as"
	case KwAssert:
		return "assert"
	case KwAsync:
		return "async"
	case KwAwait:
		return "await"
	case KwBreak:
		return "break"
	case KwClass:
		return "class"
	case KwContinue:
		return "continue"
	case KwDef:
		return "def"
	case KwDel:
		return "del"
	case KwElif:
		return "elif"
	case KwElse:
		return "else"
	case KwExcept:
		return "except"
	case KwFinally:
		return "finally"
	case KwFor:
		return "for"
	case KwFrom:
		return "from"
	case KwGlobal:
		return "global"
	case KwIf:
		return "if"
	case KwImport:
		return "import"
	case KwIn:
		return "in"
	case KwIs:
		return "is"
	case KwLambda:
		return "lambda"
	case KwNonlocal:
		return "nonlocal"
	case KwNot:
		return "not"
	case KwOr:
		return "or"
	case KwPass:
		return "pass"
	case KwRaise:
		return "raise"
	case KwReturn:
		return "return"
	case KwTry:
		return "try"
	case KwWhile:
		return "while"
	case KwWith:
		return "with"
	case KwYield:
		return "yield"
	default:
		return "Unknown"
	}
}
