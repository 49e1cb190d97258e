package debugs

import (
	"fmt"

	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/exprs"
	"github.com/reusee/realtype/values"
	"go.starlark.net/starlark"
)

// Globals returns the expression builtins plus the classifiers.
func Globals() starlark.StringDict {
	ret := exprs.Builtins()

	for name, fn := range map[string]func(values.Value) any{
		"get_type":      func(v values.Value) any { return classify.GetType(v) },
		"get_real_type": func(v values.Value) any { return classify.GetRealType(v) },
	} {
		ret[name] = starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x starlark.Value
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
				return nil, err
			}
			v, err := exprs.FromStarlark(thread, x)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			return exprs.ToStarlark(fn(v)), nil
		})
	}

	for name, fn := range map[string]func([]values.Value) any{
		"get_types_of_items":                func(items []values.Value) any { return classify.GetTypesOfItems(items) },
		"get_real_types_of_items":           func(items []values.Value) any { return classify.GetRealTypesOfItems(items) },
		"all_items_have_the_same_type":      func(items []values.Value) any { return classify.AllItemsHaveTheSameType(items) },
		"every_item_has_a_unique_real_type": func(items []values.Value) any { return classify.EveryItemHasAUniqueRealType(items) },
		"count_real_types":                  func(items []values.Value) any { return classify.CountRealTypes(items) },
		"every_item_is_nan":                 func(items []values.Value) any { return classify.EveryItemIsNaN(items) },
		"every_item_is_finite":              func(items []values.Value) any { return classify.EveryItemIsFinite(items) },
	} {
		ret[name] = starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x starlark.Value
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
				return nil, err
			}
			v, err := exprs.FromStarlark(thread, x)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			arr, ok := v.(*values.Array)
			if !ok {
				return nil, fmt.Errorf("%s: expecting a list, got %s", b.Name(), x.Type())
			}
			return exprs.ToStarlark(fn(arr.Elems)), nil
		})
	}

	return ret
}
