package airp

// Kind is an enum for the concrete shape of a Node.
type Kind uint8

//go:generate stringer -type Kind -trimprefix Kind

// Kinds to compare nodes of a tree with. The zero value signals invalid.
const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindNumber
	KindString
	KindTime
	KindArray
	KindObject
)

