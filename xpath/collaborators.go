package xpath

// Node is the opaque handle the core borrows from the document model. It is
// never constructed by this package; callers supply nodes produced by their
// own document/axis implementation (see package memdoc for a reference one).
//
// Node values must be comparable with ==: two handles referring to the same
// document node must compare equal, and distinct nodes must compare unequal.
// This is what lets Nodeset use Node as a map key to forbid duplicates.
type Node interface {
	// StringValue returns the node's XPath string-value (e.g. concatenated
	// descendant text for an element, the literal value for an attribute).
	StringValue() string

	// Document returns the document the node belongs to.
	Document() Document

	// DocumentOrderKey returns a value such that comparing two nodes'
	// keys with < yields document order, with the standard XPath 1.0
	// tie-break of attribute/namespace nodes sorting immediately after
	// their owner element.
	DocumentOrderKey() uint64
}

// Document is the minimal document-level contract the core needs: a way to
// reach the document root from any node (for the RootNode expression).
type Document interface {
	Root() Node
}

// Axis enumerates the candidates reachable from a context node along one
// direction of navigation (child, descendant, parent, ...), applies test to
// each, and appends survivors to out in the axis's natural order. The axis
// owns traversal order and node-test application; Step (see step.go) only
// aggregates what successive axis applications append.
type Axis interface {
	SelectNodes(ctx *EvaluationContext, test NodeTest, out *OrderedSequence)
}

// NodeTest filters candidates emerging from an axis: a name match, a
// node-kind match, or a wildcard. Axes call it; the core never calls it
// directly.
type NodeTest interface {
	Test(ctx *EvaluationContext, candidate Node) bool
}

// Function is an XPath function implementation, looked up by qualified name
// and invoked with already-evaluated arguments.
type Function interface {
	Call(ctx *EvaluationContext, args []Value) (Value, error)
}
