package exprs

import (
	"fmt"
	"hash/fnv"

	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/values"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Wrapped carries a value without a native starlark counterpart.
type Wrapped struct {
	Value values.Value
}

var (
	_ starlark.Value      = new(Wrapped)
	_ starlark.Comparable = new(Wrapped)
)

func Wrap(v values.Value) *Wrapped {
	return &Wrapped{
		Value: v,
	}
}

func (w *Wrapped) String() string {
	return values.Inspect(w.Value)
}

// TypePrefix keeps wrapped type names apart from native starlark types.
const TypePrefix = "js."

func (w *Wrapped) Type() string {
	return TypePrefix + string(classify.GetRealType(w.Value))
}

func (w *Wrapped) Freeze() {}

func (w *Wrapped) Truth() starlark.Bool {
	return starlark.Bool(values.Truthy(w.Value))
}

func (w *Wrapped) Hash() (uint32, error) {
	if w.Value != nil && !w.Value.Kind().IsPrimitive() {
		return 0, fmt.Errorf("unhashable type: %s", w.Type())
	}
	if _, ok := w.Value.(*values.Symbol); ok {
		return 0, fmt.Errorf("unhashable type: %s", w.Type())
	}
	h := fnv.New32a()
	h.Write([]byte(w.Type()))
	h.Write([]byte(values.Inspect(w.Value)))
	return h.Sum32(), nil
}

func (w *Wrapped) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	other, ok := y.(*Wrapped)
	if !ok {
		return false, fmt.Errorf("%s %s %s not implemented", w.Type(), op, y.Type())
	}
	switch op {
	case syntax.EQL:
		return values.SameValueZero(w.Value, other.Value), nil
	case syntax.NEQ:
		return !values.SameValueZero(w.Value, other.Value), nil
	}
	return false, fmt.Errorf("%s %s %s not implemented", w.Type(), op, other.Type())
}
