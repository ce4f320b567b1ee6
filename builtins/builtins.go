// Package builtins catalogues the core circuit operations built into the
// language. Each one is addressed in source as a static method call on a
// well-known circuit, e.g. BHP256::commit(value, randomizer), and lowers
// to a single machine instruction in later compiler phases.
package builtins

// Instruction identifies one core circuit operation.
type Instruction int

const (
	Invalid Instruction = iota

	// Bowe-Hopwood-Pedersen commitments and hashes
	BHP256Commit
	BHP256Hash
	BHP512Commit
	BHP512Hash
	BHP768Commit
	BHP768Hash
	BHP1024Commit
	BHP1024Hash

	// Pedersen commitments and hashes
	Pedersen64Commit
	Pedersen64Hash
	Pedersen128Commit
	Pedersen128Hash

	// Poseidon hashes
	Poseidon2Hash
	Poseidon4Hash
	Poseidon8Hash
)

// names holds the qualified source spelling of every instruction.
var names = map[Instruction]string{
	BHP256Commit:  "BHP256::commit",
	BHP256Hash:    "BHP256::hash",
	BHP512Commit:  "BHP512::commit",
	BHP512Hash:    "BHP512::hash",
	BHP768Commit:  "BHP768::commit",
	BHP768Hash:    "BHP768::hash",
	BHP1024Commit: "BHP1024::commit",
	BHP1024Hash:   "BHP1024::hash",

	Pedersen64Commit:  "Pedersen64::commit",
	Pedersen64Hash:    "Pedersen64::hash",
	Pedersen128Commit: "Pedersen128::commit",
	Pedersen128Hash:   "Pedersen128::hash",

	Poseidon2Hash: "Poseidon2::hash",
	Poseidon4Hash: "Poseidon4::hash",
	Poseidon8Hash: "Poseidon8::hash",
}

var byName = make(map[string]Instruction, len(names))

func init() {
	for instruction, name := range names {
		byName[name] = instruction
	}
}

// FromMethod resolves a circuit name and a method name to the core
// instruction they address. The second result is false when the pair
// names no core operation.
func FromMethod(circuit, method string) (Instruction, bool) {
	instruction, ok := byName[circuit+"::"+method]
	return instruction, ok
}

// Arity returns the number of arguments the instruction takes: commits
// take a value and a randomizer, hashes a single value.
func (i Instruction) Arity() int {
	switch i {
	case BHP256Commit, BHP512Commit, BHP768Commit, BHP1024Commit,
		Pedersen64Commit, Pedersen128Commit:
		return 2
	case BHP256Hash, BHP512Hash, BHP768Hash, BHP1024Hash,
		Pedersen64Hash, Pedersen128Hash,
		Poseidon2Hash, Poseidon4Hash, Poseidon8Hash:
		return 1
	default:
		return 0
	}
}

// String returns the qualified spelling, e.g. "Poseidon2::hash".
func (i Instruction) String() string {
	if name, ok := names[i]; ok {
		return name
	}

	return "invalid"
}
