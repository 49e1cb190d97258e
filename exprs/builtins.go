package exprs

import (
	"fmt"
	"math"

	"github.com/reusee/realtype/values"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var FileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

type builtinFunc = func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// Builtins returns the predeclared names of the expression environment.
func Builtins() starlark.StringDict {
	ret := starlark.StringDict{
		"undefined": Wrap(values.Undefined{}),
		"null":      starlark.None,
		"NaN":       starlark.Float(math.NaN()),
		"Infinity":  starlark.Float(math.Inf(1)),
	}
	for name, fn := range map[string]builtinFunc{
		"date":      date,
		"regexp":    regexp,
		"Map":       newMap,
		"Object":    newObject,
		"Error":     newError,
		"Symbol":    symbol,
		"BigInt":    bigInt,
		"String":    boxer(func(v values.Value) values.Value { return values.String(values.ToString(v)) }),
		"Number":    boxer(func(v values.Value) values.Value { return values.ToNumber(v) }),
		"Boolean":   boxer(func(v values.Value) values.Value { return values.Bool(values.Truthy(v)) }),
		"div":       binary(func(a, b values.Value) values.Value { return values.Div(a, b) }),
		"add":       binary(values.Add),
		"strict_eq": binary(func(a, b values.Value) values.Value { return values.Bool(values.StrictEqual(a, b)) }),
		"not_":      not,
		"parse_int": parseInt,
	} {
		ret[name] = starlark.NewBuiltin(name, fn)
	}
	return ret
}

func date(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var iso string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "iso", &iso); err != nil {
		return nil, err
	}
	return Wrap(values.ParseDate(iso)), nil
}

func regexp(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pattern, flags string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "pattern", &pattern, "flags?", &flags); err != nil {
		return nil, err
	}
	return Wrap(values.NewRegExp(pattern, flags)), nil
}

func newMap(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pairs starlark.Iterable
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "pairs?", &pairs); err != nil {
		return nil, err
	}
	m := values.NewMap()
	if pairs == nil {
		return Wrap(m), nil
	}
	iter := pairs.Iterate()
	defer iter.Done()
	var pair starlark.Value
	for iter.Next(&pair) {
		seq, ok := pair.(starlark.Indexable)
		if !ok || seq.Len() != 2 {
			return nil, fmt.Errorf("%s: pair must be a sequence of length 2, got %s", b.Name(), pair.Type())
		}
		key, err := FromStarlark(thread, seq.Index(0))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		value, err := FromStarlark(thread, seq.Index(1))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		m.Set(key, value)
	}
	return Wrap(m), nil
}

func newObject(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("%s: unexpected positional arguments", b.Name())
	}
	obj := values.NewObject()
	for _, kv := range kwargs {
		value, err := FromStarlark(thread, kv[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		obj.Set(string(kv[0].(starlark.String)), value)
	}
	return ToStarlark(obj), nil
}

func newError(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var msg string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "msg?", &msg); err != nil {
		return nil, err
	}
	return Wrap(values.NewError(msg)), nil
}

func symbol(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var desc string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "desc?", &desc); err != nil {
		return nil, err
	}
	return Wrap(values.NewSymbol(desc)), nil
}

func bigInt(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "v", &v); err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case starlark.Int:
		return Wrap(values.NewBigInt(v.BigInt())), nil
	case starlark.String:
		i, ok := values.ParseBigInt(string(v))
		if !ok {
			return nil, fmt.Errorf("%s: cannot convert %q to a BigInt", b.Name(), string(v))
		}
		return Wrap(i), nil
	}
	return nil, fmt.Errorf("%s: cannot convert %s to a BigInt", b.Name(), v.Type())
}

func boxer(prim func(values.Value) values.Value) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var arg starlark.Value
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "v", &arg); err != nil {
			return nil, err
		}
		v, err := FromStarlark(thread, arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return Wrap(values.Box(prim(v))), nil
	}
}

func binary(op func(a, b values.Value) values.Value) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
			return nil, err
		}
		a, err := FromStarlark(thread, x)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		c, err := FromStarlark(thread, y)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return ToStarlark(op(a, c)), nil
	}
}

func not(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	v, err := FromStarlark(thread, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.Bool(values.Not(v)), nil
}

func parseInt(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	var radix int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &x, "radix?", &radix); err != nil {
		return nil, err
	}
	v, err := FromStarlark(thread, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return ToStarlark(values.ParseInt(values.ToString(v), radix)), nil
}
