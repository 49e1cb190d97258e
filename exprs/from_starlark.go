package exprs

import (
	"fmt"

	"github.com/reusee/realtype/values"
	"go.starlark.net/starlark"
)

// FromStarlark converts a starlark value.
// Callables become functions invoking the callable on thread.
func FromStarlark(thread *starlark.Thread, v starlark.Value) (values.Value, error) {
	c := &converter{
		thread: thread,
		seen:   make(map[starlark.Value]values.Value),
	}
	return c.convert(v)
}

type converter struct {
	thread *starlark.Thread
	seen   map[starlark.Value]values.Value
}

func (c *converter) convert(v starlark.Value) (values.Value, error) {
	switch v := v.(type) {

	case nil:
		return values.Undefined{}, nil

	case *Wrapped:
		if v.Value == nil {
			return values.Undefined{}, nil
		}
		return v.Value, nil

	case starlark.NoneType:
		return values.Null{}, nil

	case starlark.Bool:
		return values.Bool(v), nil

	case starlark.Int:
		return values.Number(v.Float()), nil

	case starlark.Float:
		return values.Number(v), nil

	case starlark.String:
		return values.String(v), nil

	case starlark.Bytes:
		return values.String(v), nil

	case *starlark.List:
		if ret, ok := c.seen[v]; ok {
			return ret, nil
		}
		arr := values.NewArray()
		c.seen[v] = arr
		for i := range v.Len() {
			elem, err := c.convert(v.Index(i))
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, elem)
		}
		return arr, nil

	case starlark.Tuple:
		arr := values.NewArray()
		for _, e := range v {
			elem, err := c.convert(e)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, elem)
		}
		return arr, nil

	case *starlark.Dict:
		if ret, ok := c.seen[v]; ok {
			return ret, nil
		}
		obj := values.NewObject()
		c.seen[v] = obj
		for _, item := range v.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("object key must be string, got %s", item[0].Type())
			}
			field, err := c.convert(item[1])
			if err != nil {
				return nil, err
			}
			obj.Set(string(key), field)
		}
		return obj, nil

	case *starlark.Set:
		if ret, ok := c.seen[v]; ok {
			return ret, nil
		}
		set := values.NewSet()
		c.seen[v] = set
		iter := v.Iterate()
		defer iter.Done()
		var e starlark.Value
		for iter.Next(&e) {
			elem, err := c.convert(e)
			if err != nil {
				return nil, err
			}
			set.Add(elem)
		}
		return set, nil

	case *starlark.Function:
		return c.function(v, v.Name(), v.NumParams()), nil

	case *starlark.Builtin:
		return c.function(v, v.Name(), -1), nil

	}

	return nil, fmt.Errorf("unsupported starlark type: %s", v.Type())
}

func (c *converter) function(callable starlark.Callable, name string, arity int) *values.Function {
	if name == "lambda" {
		name = ""
	}
	if arity < 0 {
		arity = 0
	}
	thread := c.thread
	return values.NewFunction(name, arity, func(args ...values.Value) (values.Value, error) {
		starlarkArgs := make(starlark.Tuple, 0, len(args))
		for _, arg := range args {
			starlarkArgs = append(starlarkArgs, ToStarlark(arg))
		}
		ret, err := starlark.Call(thread, callable, starlarkArgs, nil)
		if err != nil {
			return nil, err
		}
		return FromStarlark(thread, ret)
	})
}
