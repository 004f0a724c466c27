package xpath

// Path holds a start-point expression and an ordered list of Steps. Its
// start point must evaluate to a nodeset; each step then threads that
// nodeset through its axis/node-test/predicates pipeline in turn. With no
// steps at all, Path is the identity on its start point's nodeset.
type Path struct {
	Start Expression
	Steps []*Step
}

func (e *Path) Evaluate(ctx *EvaluationContext) (Value, error) {
	v, err := e.Start.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	ns, ok := AsNodeset(v)
	if !ok {
		return nil, &NotANodesetError{Context: "path start point"}
	}

	for _, step := range e.Steps {
		ns, err = step.evaluate(ctx, ns)
		if err != nil {
			return nil, err
		}
	}

	return NewNodesetValue(ns), nil
}
