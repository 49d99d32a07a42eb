package scalar

// Op identifies the operation that produced a node.
type Op uint8

// Supported operations.
const (
	None Op = iota // leaf
	Neg
	Add
	Mul
	Pow
	Tanh
	Exp
)

var opNames = [...]string{
	None: "none",
	Neg:  "neg",
	Add:  "add",
	Mul:  "mul",
	Pow:  "pow",
	Tanh: "tanh",
	Exp:  "exp",
}

// String returns the lowercase operation name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Arity returns the number of predecessors a node produced by o has.
func (o Op) Arity() int {
	switch o {
	case None:
		return 0
	case Add, Mul:
		return 2
	default:
		return 1
	}
}
