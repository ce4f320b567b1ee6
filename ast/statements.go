package ast

// Block is a brace-delimited statement sequence.
type Block struct {
	node
	Statements []Statement
}

func (*Block) stmtNode() {}

// LetStatement binds a name to a value, e.g. "let mut x: u32 = 5;".
// Const marks a compile-time binding introduced with the const keyword.
type LetStatement struct {
	node
	Const   bool
	Mutable bool
	Name    *Identifier
	Type    Type
	Value   Expression
}

func (*LetStatement) stmtNode() {}

// ReturnStatement returns a value from the enclosing function.
type ReturnStatement struct {
	node
	Value Expression
}

func (*ReturnStatement) stmtNode() {}

// ConditionalStatement is an if statement. Else is nil when no alternative
// exists, a *Block for a plain else, or a *ConditionalStatement for an
// else-if chain.
type ConditionalStatement struct {
	node
	Condition Expression
	Then      *Block
	Else      Statement
}

func (*ConditionalStatement) stmtNode() {}

// ForStatement iterates a half-open integer range, e.g. "for i in 0..n { }".
type ForStatement struct {
	node
	Variable *Identifier
	Start    Expression
	Stop     Expression
	Body     *Block
}

func (*ForStatement) stmtNode() {}

// ExpressionStatement evaluates an expression for its effect.
type ExpressionStatement struct {
	node
	Expr Expression
}

func (*ExpressionStatement) stmtNode() {}
