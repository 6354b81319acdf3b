package tape

// Index is the position of a node in creation order.
type Index int32

// MaxOperands is the largest number of operands a node can reference.
const MaxOperands = 2

// Node is one recorded elementary operation.
//
// Partials hold the local derivative of Value with respect to each operand,
// evaluated when the node was created. The backward sweep never recomputes
// them, so chaining a node costs one multiply-add per operand.
type Node struct {
	Value    float64              // Forward value.
	Adjoint  float64              // Accumulated during the backward sweep.
	Partials [MaxOperands]float64 // ∂Value/∂operand.
	Operands [MaxOperands]Index   // Always strictly less than the node's own index.
	Arity    uint8                // Number of used operand slots.
	Kind     uint8                // Operation tag, interpreted by the ops package.

	gen uint32
}

// Leaf returns a node with no operands.
func Leaf(kind uint8, value float64) Node {
	return Node{Value: value, Kind: kind}
}

// Unary returns a node with a single operand.
func Unary(kind uint8, value float64, x Index, dx float64) Node {
	return Node{
		Value:    value,
		Kind:     kind,
		Arity:    1,
		Operands: [MaxOperands]Index{x},
		Partials: [MaxOperands]float64{dx},
	}
}

// Binary returns a node with two operands.
func Binary(kind uint8, value float64, a Index, da float64, b Index, db float64) Node {
	return Node{
		Value:    value,
		Kind:     kind,
		Arity:    2,
		Operands: [MaxOperands]Index{a, b},
		Partials: [MaxOperands]float64{da, db},
	}
}

// Generation returns the arena generation the node was allocated in.
func (n *Node) Generation() uint32 {
	return n.gen
}
