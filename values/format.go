package values

import (
	"math"
	"strconv"
	"strings"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

// FormatNumber renders a number the way number-to-string conversion does.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		str := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(str, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (Undefined) String() string { return "undefined" }
func (Null) String() string      { return "null" }

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (n Number) String() string {
	return FormatNumber(float64(n))
}

func (s String) String() string {
	return string(s)
}

func (b BigInt) String() string {
	if b.Int == nil {
		return "0"
	}
	return b.Int.String()
}

func (s *Symbol) String() string {
	return "Symbol(" + s.Description + ")"
}

func (a *Array) String() string {
	return Inspect(a)
}

func (o *Object) String() string {
	return Inspect(o)
}

func (f *Function) String() string {
	return Inspect(f)
}

func (d *Date) String() string {
	if !d.Valid {
		return "Invalid Date"
	}
	return d.Time.UTC().Format(isoLayout)
}

func (r *RegExp) String() string {
	return "/" + r.Source + "/" + r.Flags
}

func (s *Set) String() string {
	return Inspect(s)
}

func (m *Map) String() string {
	return Inspect(m)
}

func (e *Error) String() string {
	if e.Message == "" {
		return "Error"
	}
	return "Error: " + e.Message
}

func (b *Boxed) String() string {
	return Inspect(b)
}

// Inspect renders a value for humans, in the style of a console dump.
// Strings are quoted, cycles are printed as [Circular].
func Inspect(v Value) string {
	buf := new(strings.Builder)
	inspect(buf, v, make(map[Value]bool))
	return buf.String()
}

func inspect(buf *strings.Builder, v Value, seen map[Value]bool) {
	switch v := v.(type) {

	case nil:
		buf.WriteString("undefined")

	case String:
		buf.WriteString(quote(string(v)))

	case BigInt:
		buf.WriteString(v.String())
		buf.WriteString("n")

	case *Array:
		if seen[v] {
			buf.WriteString("[Circular]")
			return
		}
		seen[v] = true
		defer delete(seen, v)
		if len(v.Elems) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[ ")
		for i, elem := range v.Elems {
			if i > 0 {
				buf.WriteString(", ")
			}
			inspect(buf, elem, seen)
		}
		buf.WriteString(" ]")

	case *Object:
		if seen[v] {
			buf.WriteString("[Circular]")
			return
		}
		seen[v] = true
		defer delete(seen, v)
		if v.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{ ")
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(objectKey(key))
			buf.WriteString(": ")
			inspect(buf, v.fields[key], seen)
		}
		buf.WriteString(" }")

	case *Function:
		if v.Name == "" {
			buf.WriteString("[Function (anonymous)]")
			return
		}
		buf.WriteString("[Function: ")
		buf.WriteString(v.Name)
		buf.WriteString("]")

	case *Set:
		if seen[v] {
			buf.WriteString("[Circular]")
			return
		}
		seen[v] = true
		defer delete(seen, v)
		buf.WriteString("Set(")
		buf.WriteString(strconv.Itoa(v.Len()))
		buf.WriteString(") ")
		if v.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{ ")
		for i, elem := range v.elems {
			if i > 0 {
				buf.WriteString(", ")
			}
			inspect(buf, elem, seen)
		}
		buf.WriteString(" }")

	case *Map:
		if seen[v] {
			buf.WriteString("[Circular]")
			return
		}
		seen[v] = true
		defer delete(seen, v)
		buf.WriteString("Map(")
		buf.WriteString(strconv.Itoa(v.Len()))
		buf.WriteString(") ")
		if v.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{ ")
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			inspect(buf, key, seen)
			buf.WriteString(" => ")
			inspect(buf, v.vals[i], seen)
		}
		buf.WriteString(" }")

	case *Boxed:
		buf.WriteString("[")
		buf.WriteString(ClassName(v))
		buf.WriteString(": ")
		inspect(buf, v.Value, seen)
		buf.WriteString("]")

	default:
		buf.WriteString(v.String())

	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}

func objectKey(key string) string {
	if key == "" {
		return "''"
	}
	for i, r := range key {
		if r == '_' || r == '$' ||
			r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return quote(key)
	}
	return key
}
