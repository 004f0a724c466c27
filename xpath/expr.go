package xpath

// Expression is the single operation shared by every node in a compiled
// XPath tree: evaluate under a context, producing a value or an error.
// Expressions are immutable after construction and own their children
// exclusively; evaluation never mutates the tree, so a tree may be shared
// across concurrent evaluations as long as each evaluation owns its own
// context (§5).
type Expression interface {
	Evaluate(ctx *EvaluationContext) (Value, error)
}

// Literal holds a pre-computed value of any of the four kinds. Evaluating
// it never fails and always returns that same value.
type Literal struct {
	Value Value
}

func (e *Literal) Evaluate(ctx *EvaluationContext) (Value, error) {
	return e.Value, nil
}

// ContextNode evaluates to a singleton nodeset containing ctx.Node.
type ContextNode struct{}

func (e *ContextNode) Evaluate(ctx *EvaluationContext) (Value, error) {
	return NewNodesetValue(NodesetOf(ctx.Node)), nil
}

// RootNode evaluates to a singleton nodeset containing the document root
// reachable from ctx.Node.
type RootNode struct{}

func (e *RootNode) Evaluate(ctx *EvaluationContext) (Value, error) {
	return NewNodesetValue(NodesetOf(ctx.Node.Document().Root())), nil
}

// Variable holds a name as written in source (prefix unresolved). Evaluating
// it resolves the name against ctx, then looks up the bound value.
type Variable struct {
	Name PrefixedName
}

func (e *Variable) Evaluate(ctx *EvaluationContext) (Value, error) {
	name, err := resolveName(ctx, e.Name)
	if err != nil {
		ctx.logger().WithField("name", e.Name.String()).Debug("xpath: variable lookup failed to resolve namespace")
		return nil, err
	}
	v, ok := ctx.ValueOf(name)
	if !ok {
		ctx.logger().WithField("name", name.String()).Debug("xpath: unbound variable")
		return nil, &UnknownVariableError{Name: name}
	}
	return v, nil
}
