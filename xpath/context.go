package xpath

import (
	"github.com/sirupsen/logrus"
)

// EvaluationContext binds everything an expression needs to evaluate:
// where it is (node, position, size) and what names mean (variables,
// functions, namespaces). Contexts are scoped: a per-node predicate context
// is only valid for the duration of that predicate's evaluation and must
// not escape it (§5).
type EvaluationContext struct {
	Node     Node
	Position int // 1-based ordinal within the current node list
	Size     int // length of that list

	variables map[QualifiedName]Value
	functions map[QualifiedName]Function
	namespace map[string]string

	// Log receives Debug-level diagnostics when a Variable, FunctionCall,
	// or name resolution fails to resolve. It is never required to be
	// configured: the zero value falls back to logrus's standard logger,
	// and nothing in the evaluation path depends on logging succeeding or
	// even occurring.
	Log *logrus.Logger
}

// NewContext builds a root evaluation context positioned at node, with
// position=size=1 (a singleton context, per §3's new_context_for).
func NewContext(node Node) *EvaluationContext {
	return &EvaluationContext{
		Node:      node,
		Position:  1,
		Size:      1,
		variables: make(map[QualifiedName]Value),
		functions: make(map[QualifiedName]Function),
		namespace: make(map[string]string),
	}
}

func (c *EvaluationContext) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

// BindVariable binds name to value, overwriting any previous binding.
func (c *EvaluationContext) BindVariable(name QualifiedName, value Value) {
	c.variables[name] = value
}

// BindFunction binds name to fn, overwriting any previous binding.
func (c *EvaluationContext) BindFunction(name QualifiedName, fn Function) {
	c.functions[name] = fn
}

// BindNamespace binds prefix to uri, overwriting any previous binding.
func (c *EvaluationContext) BindNamespace(prefix, uri string) {
	c.namespace[prefix] = uri
}

// ValueOf looks up a variable binding.
func (c *EvaluationContext) ValueOf(name QualifiedName) (Value, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// FunctionFor looks up a function binding.
func (c *EvaluationContext) FunctionFor(name QualifiedName) (Function, bool) {
	fn, ok := c.functions[name]
	return fn, ok
}

// NamespaceFor looks up a prefix's bound namespace URI.
func (c *EvaluationContext) NamespaceFor(prefix string) (string, bool) {
	uri, ok := c.namespace[prefix]
	return uri, ok
}

// NewContextFor derives a singleton context (position=1, size=1) at node,
// sharing this context's variable, function, and namespace bindings by
// reference: deriving a per-node context never clones those tables, only
// overlays (node, position, size).
func (c *EvaluationContext) NewContextFor(node Node) *EvaluationContext {
	return &EvaluationContext{
		Node:      node,
		Position:  1,
		Size:      1,
		variables: c.variables,
		functions: c.functions,
		namespace: c.namespace,
		Log:       c.Log,
	}
}

// NewContextsFor derives one context per node in seq, with position running
// 1..N and size fixed at N = len(seq). The returned contexts share this
// context's bindings by reference, same as NewContextFor.
func (c *EvaluationContext) NewContextsFor(seq OrderedSequence) []*EvaluationContext {
	out := make([]*EvaluationContext, len(seq))
	size := len(seq)
	for i, node := range seq {
		out[i] = &EvaluationContext{
			Node:      node,
			Position:  i + 1,
			Size:      size,
			variables: c.variables,
			functions: c.functions,
			namespace: c.namespace,
			Log:       c.Log,
		}
	}
	return out
}
