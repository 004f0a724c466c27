package xpath

import (
	"errors"
	"testing"
)

func TestVariableUnknownNamespace(t *testing.T) {
	v := &Variable{Name: PrefixedName{Prefix: "x", Local: "foo"}}
	_, err := v.Evaluate(NewContext(nil))
	var nsErr *UnknownNamespaceError
	if !errors.As(err, &nsErr) {
		t.Fatalf("expected UnknownNamespaceError, got %v", err)
	}
	if nsErr.Prefix != "x" {
		t.Errorf("Prefix = %q, want \"x\"", nsErr.Prefix)
	}
}

func TestVariableUnknownVariable(t *testing.T) {
	v := &Variable{Name: PrefixedName{Local: "foo"}}
	_, err := v.Evaluate(NewContext(nil))
	var varErr *UnknownVariableError
	if !errors.As(err, &varErr) {
		t.Fatalf("expected UnknownVariableError, got %v", err)
	}
}

func TestVariableResolvesBoundValue(t *testing.T) {
	ctx := NewContext(nil)
	ctx.BindVariable(QualifiedName{Local: "foo"}, NewString("bar"))
	v := &Variable{Name: PrefixedName{Local: "foo"}}
	got, err := v.Evaluate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "bar" {
		t.Errorf("got %q, want \"bar\"", got.String())
	}
}

func TestVariableWithNamespaceBinding(t *testing.T) {
	ctx := NewContext(nil)
	ctx.BindNamespace("x", "urn:example")
	ctx.BindVariable(QualifiedName{NamespaceURI: "urn:example", Local: "foo"}, NewNumber(1))
	v := &Variable{Name: PrefixedName{Prefix: "x", Local: "foo"}}
	got, err := v.Evaluate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Number() != 1 {
		t.Errorf("got %v, want 1", got.Number())
	}
}

type constFunction struct {
	value Value
	err   error
}

func (f constFunction) Call(ctx *EvaluationContext, args []Value) (Value, error) {
	return f.value, f.err
}

func TestFunctionCallUnknownFunction(t *testing.T) {
	fc := &FunctionCall{Name: PrefixedName{Local: "unknown-fn"}}
	_, err := fc.Evaluate(NewContext(nil))
	var fnErr *UnknownFunctionError
	if !errors.As(err, &fnErr) {
		t.Fatalf("expected UnknownFunctionError, got %v", err)
	}
	if fnErr.Name.Local != "unknown-fn" {
		t.Errorf("Name = %v, want unknown-fn", fnErr.Name)
	}
}

func TestFunctionCallEvaluatesArgumentsEagerlyLeftToRight(t *testing.T) {
	var order []int
	argA := recordingArg{id: 1, order: &order}
	argB := recordingArg{id: 2, order: &order}

	ctx := NewContext(nil)
	ctx.BindFunction(QualifiedName{Local: "f"}, constFunction{value: NewBoolean(true)})

	fc := &FunctionCall{Name: PrefixedName{Local: "f"}, Arguments: []Expression{argA, argB}}
	if _, err := fc.Evaluate(ctx); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("argument evaluation order = %v, want [1 2]", order)
	}
}

type recordingArg struct {
	id    int
	order *[]int
}

func (a recordingArg) Evaluate(ctx *EvaluationContext) (Value, error) {
	*a.order = append(*a.order, a.id)
	return NewBoolean(true), nil
}

func TestFunctionCallWrapsInnerError(t *testing.T) {
	inner := &NotANodesetError{Context: "boom"}
	ctx := NewContext(nil)
	ctx.BindFunction(QualifiedName{Local: "f"}, constFunction{err: inner})

	fc := &FunctionCall{Name: PrefixedName{Local: "f"}}
	_, err := fc.Evaluate(ctx)
	var wrapped *FunctionEvaluationError
	if !errors.As(err, &wrapped) {
		t.Fatalf("expected FunctionEvaluationError, got %v", err)
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should see through FunctionEvaluationError to the inner error")
	}
}
