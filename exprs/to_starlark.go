package exprs

import (
	"fmt"
	"math"
	"reflect"

	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/values"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToStarlark converts values and classification results to starlark values.
// Unsupported Go types panic.
func ToStarlark(v any) starlark.Value {
	return toStarlark(v, make(map[values.Value]starlark.Value))
}

func toStarlark(v any, seen map[values.Value]starlark.Value) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case values.Value:
		return valueToStarlark(v, seen)

	case classify.Tag:
		return starlark.String(v)

	case classify.TypeCount:
		return starlark.Tuple{
			starlark.String(v.Tag),
			starlark.MakeInt(v.Count),
		}

	case bool:
		return starlark.Bool(v)

	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case uint64:
		return starlark.MakeUint64(v)

	case float64:
		return starlark.Float(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlark(e, seen)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlark(val, seen))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlark(value.Index(i).Interface(), seen)
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlark(iter.Key().Interface(), seen),
				toStarlark(iter.Value().Interface(), seen),
			)
		}
		return d

	case reflect.Struct:
		n := value.NumField()
		d := starlark.NewDict(n)
		typ := value.Type()
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlark(value.Field(i).Interface(), seen),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlark(elem.Interface(), seen)

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

const maxSafeInteger = 1<<53 - 1

func valueToStarlark(v values.Value, seen map[values.Value]starlark.Value) starlark.Value {
	switch v := v.(type) {

	case values.Null:
		return starlark.None

	case values.Bool:
		return starlark.Bool(v)

	case values.Number:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger && !(f == 0 && math.Signbit(f)) {
			return starlark.MakeInt64(int64(f))
		}
		return starlark.Float(f)

	case values.String:
		return starlark.String(v)

	case *values.Array:
		if ret, ok := seen[v]; ok {
			return ret
		}
		list := starlark.NewList(nil)
		seen[v] = list
		for _, elem := range v.Elems {
			_ = list.Append(valueToStarlark(orUndefined(elem), seen))
		}
		return list

	case *values.Object:
		if ret, ok := seen[v]; ok {
			return ret
		}
		d := starlark.NewDict(v.Len())
		seen[v] = d
		for _, key := range v.Keys() {
			field, _ := v.Get(key)
			_ = d.SetKey(starlark.String(key), valueToStarlark(orUndefined(field), seen))
		}
		return d

	case *values.Function:
		return starlark.NewBuiltin(functionName(v), func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
			}
			callArgs := make([]values.Value, 0, len(args))
			for _, arg := range args {
				value, err := FromStarlark(thread, arg)
				if err != nil {
					return nil, err
				}
				callArgs = append(callArgs, value)
			}
			ret, err := v.Call(callArgs...)
			if err != nil {
				return nil, err
			}
			return ToStarlark(ret), nil
		})

	}

	return Wrap(v)
}

func functionName(f *values.Function) string {
	if f.Name == "" {
		return "anonymous"
	}
	return f.Name
}

func orUndefined(v values.Value) values.Value {
	if v == nil {
		return values.Undefined{}
	}
	return v
}
