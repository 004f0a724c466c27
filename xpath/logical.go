package xpath

// And evaluates Left; if its boolean coercion is false, And returns false
// without evaluating Right at all. The short-circuit is observable: Right
// may be a FunctionCall with side effects, or an expression that would
// otherwise fail.
type And struct {
	Left, Right Expression
}

func (e *And) Evaluate(ctx *EvaluationContext) (Value, error) {
	left, err := e.Left.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	if !left.Boolean() {
		return NewBoolean(false), nil
	}
	right, err := e.Right.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return NewBoolean(right.Boolean()), nil
}

// Or mirrors And with early-true short-circuit.
type Or struct {
	Left, Right Expression
}

func (e *Or) Evaluate(ctx *EvaluationContext) (Value, error) {
	left, err := e.Left.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	if left.Boolean() {
		return NewBoolean(true), nil
	}
	right, err := e.Right.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return NewBoolean(right.Boolean()), nil
}

// Negation evaluates its operand, coerces to number, and negates it.
// Negation of NaN is NaN; negation of ±0 is ∓0, both free consequences of
// IEEE-754 arithmetic.
type Negation struct {
	Operand Expression
}

func (e *Negation) Evaluate(ctx *EvaluationContext) (Value, error) {
	v, err := e.Operand.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return NewNumber(-v.Number()), nil
}
