package cst

// NodeKind tags a composite node with its grammar production.
type NodeKind uint8

const (
	// KindFile is the root node holding all top-level statements.
	KindFile NodeKind = iota
	// KindSimpleStmt is a one-line statement: expressions, assignments,
	// imports, return/pass/raise and friends, and standalone comments.
	KindSimpleStmt
	// KindIfStmt is an if/elif/else chain.
	KindIfStmt
	// KindWhileStmt is a while loop with an optional else clause.
	KindWhileStmt
	// KindForStmt is a for loop with an optional else clause.
	KindForStmt
	// KindTryStmt is a try with its except/else/finally clauses.
	KindTryStmt
	// KindWithStmt is a with statement.
	KindWithStmt
	// KindClassDef is a class definition.
	KindClassDef
	// KindFuncDef is a function definition, the 'def' keyword onward.
	KindFuncDef
	// KindDecorated wraps one or more decorators and the definition they apply to.
	KindDecorated
	// KindDecorator is a single '@' line inside a decorated statement.
	KindDecorator
	// KindAsyncFuncDef wraps the 'async' marker leaf and the inner KindFuncDef.
	KindAsyncFuncDef
	// KindAsyncStmt wraps the 'async' marker and an async for/with statement.
	KindAsyncStmt
	// KindSuite is an indented block: Newline, Indent, statements, Dedent.
	KindSuite
)

// IsStatement reports whether the kind is an ordinary statement: something
// that occupies its own line(s) but does not govern its own vertical spacing
// the way definitions and decorators do. The calculator forces spacing before
// these only when they directly follow a definition body.
func (k NodeKind) IsStatement() bool {
	switch k {
	case KindSimpleStmt, KindIfStmt, KindWhileStmt, KindForStmt,
		KindTryStmt, KindWithStmt, KindAsyncStmt:
		return true
	default:
		return false
	}
}

// String returns the display name used in tree dumps.
func (k NodeKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindSimpleStmt:
		return "SimpleStmt"
	case KindIfStmt:
		return "IfStmt"
	case KindWhileStmt:
		return "WhileStmt"
	case KindForStmt:
		return "ForStmt"
	case KindTryStmt:
		return "TryStmt"
	case KindWithStmt:
		return "WithStmt"
	case KindClassDef:
		return "ClassDef"
	case KindFuncDef:
		return "FuncDef"
	case KindDecorated:
		return "Decorated"
	case KindDecorator:
		return "Decorator"
	case KindAsyncFuncDef:
		return "AsyncFuncDef"
	case KindAsyncStmt:
		return "AsyncStmt"
	case KindSuite:
		return "Suite"
	default:
		return "Unknown"
	}
}
