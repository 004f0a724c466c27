package xpath

// Union evaluates both operands, each of which must be a nodeset (otherwise
// NotANodesetError), and returns their set union. Document order is not
// required at this layer — only a Step's node sequence and Filter's input
// are order-sensitive; a bare Union result is a plain nodeset.
type Union struct {
	Left, Right Expression
}

func (e *Union) Evaluate(ctx *EvaluationContext) (Value, error) {
	lv, err := e.Left.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	lns, ok := AsNodeset(lv)
	if !ok {
		return nil, &NotANodesetError{Context: "union left operand"}
	}
	rv, err := e.Right.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	rns, ok := AsNodeset(rv)
	if !ok {
		return nil, &NotANodesetError{Context: "union right operand"}
	}
	return NewNodesetValue(lns.Union(rns)), nil
}
