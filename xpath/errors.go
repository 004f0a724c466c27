package xpath

import "fmt"

// The core surfaces exactly five error kinds, each its own type so a switch
// over them (or errors.As) is exhaustive-checkable. None carries a source
// location; that is the caller's concern, since the core has no lexer.

// NotANodesetError is raised when an operand that must be a nodeset (a
// Path's start point, a Filter's input, a Union operand) is some other kind
// of value.
type NotANodesetError struct {
	Context string // which operand, e.g. "path start point", "filter operand"
}

func (e *NotANodesetError) Error() string {
	if e.Context == "" {
		return "xpath: expression did not evaluate to a nodeset"
	}
	return fmt.Sprintf("xpath: %s did not evaluate to a nodeset", e.Context)
}

// UnknownFunctionError is raised when no function is bound to a resolved
// qualified name.
type UnknownFunctionError struct {
	Name QualifiedName
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("xpath: unknown function %s", e.Name)
}

// UnknownVariableError is raised when no value is bound to a resolved
// qualified name.
type UnknownVariableError struct {
	Name QualifiedName
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("xpath: unknown variable %s", e.Name)
}

// UnknownNamespaceError is raised when a name carries a prefix with no
// namespace binding in the current context.
type UnknownNamespaceError struct {
	Prefix string
}

func (e *UnknownNamespaceError) Error() string {
	return fmt.Sprintf("xpath: unknown namespace prefix %q", e.Prefix)
}

// FunctionEvaluationError wraps an error raised by a Function implementation
// verbatim. Unwrap exposes the inner error so errors.Is/errors.As see
// through the wrapper.
type FunctionEvaluationError struct {
	Inner error
}

func (e *FunctionEvaluationError) Error() string {
	return fmt.Sprintf("xpath: error while evaluating function: %v", e.Inner)
}

func (e *FunctionEvaluationError) Unwrap() error { return e.Inner }
