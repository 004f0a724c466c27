package xpath

// Filter applies a single predicate to an arbitrary node-valued expression,
// the `(expr)[predicate]` production. Unlike a Step's output, whose order
// is whatever the axis produced, Filter must canonicalize its input to
// document order first: `(preceding::foo)[1]` means "the first foo in
// document order", not "the first foo the preceding axis's own (reverse
// document order) traversal happens to visit".
type Filter struct {
	Operand   Expression
	Predicate Expression
}

func (e *Filter) Evaluate(ctx *EvaluationContext) (Value, error) {
	v, err := e.Operand.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	ns, ok := AsNodeset(v)
	if !ok {
		return nil, &NotANodesetError{Context: "filter operand"}
	}

	ordered := ns.DocumentOrder()
	filtered, err := applyPredicate(ctx, ordered, e.Predicate)
	if err != nil {
		return nil, err
	}
	return NewNodesetValue(filtered.ToNodeset()), nil
}
