package xpath

// FunctionCall holds a name as written in source plus its ordered argument
// expressions. Arguments are evaluated left-to-right, eagerly: unlike
// And/Or there is no short-circuiting here, since a function's arity and
// behavior depends on seeing every argument value.
type FunctionCall struct {
	Name      PrefixedName
	Arguments []Expression
}

func (e *FunctionCall) Evaluate(ctx *EvaluationContext) (Value, error) {
	name, err := resolveName(ctx, e.Name)
	if err != nil {
		ctx.logger().WithField("name", e.Name.String()).Debug("xpath: function lookup failed to resolve namespace")
		return nil, err
	}
	fn, ok := ctx.FunctionFor(name)
	if !ok {
		ctx.logger().WithField("name", name.String()).Debug("xpath: unbound function")
		return nil, &UnknownFunctionError{Name: name}
	}

	args := make([]Value, len(e.Arguments))
	for i, arg := range e.Arguments {
		v, err := arg.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	result, err := fn.Call(ctx, args)
	if err != nil {
		ctx.logger().WithField("name", name.String()).WithError(err).Debug("xpath: function evaluation failed")
		return nil, &FunctionEvaluationError{Inner: err}
	}
	return result, nil
}
