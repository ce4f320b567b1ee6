package ast

// Annotation decorates a function declaration, e.g. "@test".
type Annotation struct {
	node
	Name *Identifier
}

// Parameter is one function parameter, e.g. "mut amount: u64".
type Parameter struct {
	node
	Mutable bool
	Name    *Identifier
	Type    Type
}

// FunctionDeclaration declares a function, either at file level or as a
// circuit member function.
type FunctionDeclaration struct {
	node
	Annotations []*Annotation
	Const       bool
	Name        *Identifier
	Parameters  []*Parameter
	ReturnType  Type
	Body        *Block
}

func (*FunctionDeclaration) declNode()      {}
func (*FunctionDeclaration) circuitMember() {}

// CircuitMember is either a variable member or a member function of a
// circuit declaration.
type CircuitMember interface {
	Node
	circuitMember()
}

// CircuitVariable is a typed variable member of a circuit. Its name may
// reuse a keyword or digit spelling.
type CircuitVariable struct {
	node
	Name *Identifier
	Type Type
}

func (*CircuitVariable) circuitMember() {}

// CircuitDeclaration declares a circuit and its members.
type CircuitDeclaration struct {
	node
	Name    *Identifier
	Members []CircuitMember
}

func (*CircuitDeclaration) declNode() {}

// ConstDeclaration is a file-level compile-time constant,
// e.g. "const LIMIT: u32 = 100;".
type ConstDeclaration struct {
	node
	Name  *Identifier
	Type  Type
	Value Expression
}

func (*ConstDeclaration) declNode() {}
