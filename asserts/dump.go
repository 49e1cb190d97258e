package asserts

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/realtype/values"
)

type inspector interface {
	Inspect() string
}

// Dump renders a result the way a console prints it.
// Top level strings are printed bare, nested ones quoted.
func Dump(v any) string {
	if v != nil && reflect.TypeOf(v).Kind() == reflect.String {
		return reflect.ValueOf(v).String()
	}
	return inspect(v)
}

func inspect(v any) string {
	switch v := v.(type) {
	case nil:
		return "undefined"
	case values.Value:
		return values.Inspect(v)
	case inspector:
		return v.Inspect()
	case error:
		return v.Error()
	case string:
		return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.String:
		return inspect(value.String())

	case reflect.Bool:
		return strconv.FormatBool(value.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10)

	case reflect.Float32, reflect.Float64:
		return values.FormatNumber(value.Float())

	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.IsNil() || value.Len() == 0 {
			return "[]"
		}
		parts := make([]string, value.Len())
		for i := range value.Len() {
			parts[i] = inspect(value.Index(i).Interface())
		}
		return "[ " + strings.Join(parts, ", ") + " ]"

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return "null"
		}
		return inspect(value.Elem().Interface())

	}

	return fmt.Sprintf("%+v", v)
}
