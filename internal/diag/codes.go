package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadContinuation    Code = 1003
	LexInconsistentDedent Code = 1004
	LexUnbalancedBracket  Code = 1005

	// Syntactic (2000-2999)
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectedIndent   Code = 2002
	SynUnexpectedIndent Code = 2003
	SynBareDecorator    Code = 2004
	SynBadAsyncTarget   Code = 2005
	SynExpectedColon    Code = 2006

	// I/O (4000-4999)
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexer note",
		LexUnknownChar:        "Unexpected character",
		LexUnterminatedString: "Unterminated string literal",
		LexBadContinuation:    "Unexpected character after line continuation",
		LexInconsistentDedent: "Dedent does not match any outer indentation level",
		LexUnbalancedBracket:  "Unbalanced closing bracket",
		SynInfo:               "Parser note",
		SynUnexpectedToken:    "Unexpected token",
		SynExpectedIndent:     "Expected an indented block",
		SynUnexpectedIndent:   "Unexpected indent",
		SynBareDecorator:      "Decorator is not followed by a class or function definition",
		SynBadAsyncTarget:     "'async' must introduce 'def', 'for' or 'with'",
		SynExpectedColon:      "Expected ':' at the end of a statement header",
		IOLoadFileError:       "I/O load file error",
		IOWriteFileError:      "I/O write file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
