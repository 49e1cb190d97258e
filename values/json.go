package values

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	ErrCyclic = errors.New("converting circular structure to JSON")
	ErrBigInt = errors.New("do not know how to serialize a BigInt")
)

// Stringify serializes a value with the JSON serialization rules of the
// dynamic runtime: non-finite numbers become null, undefined, functions and
// symbols are dropped from objects and become null in arrays, dates become
// ISO strings, and sets, maps, regexps and errors become empty objects.
// ok is false when the value itself is not serializable (undefined, functions, symbols).
func Stringify(v Value) (ret string, ok bool, err error) {
	if skipped(v) {
		return "", false, nil
	}
	buf := new(bytes.Buffer)
	if err := encode(buf, v, make(map[Value]bool)); err != nil {
		return "", false, err
	}
	return buf.String(), true, nil
}

func skipped(v Value) bool {
	switch orUndefined(v).(type) {
	case Undefined, *Function, *Symbol:
		return true
	}
	return false
}

func encode(buf *bytes.Buffer, v Value, seen map[Value]bool) error {
	switch v := orUndefined(v).(type) {

	case Undefined, *Function, *Symbol, Null:
		buf.WriteString("null")

	case Bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case Number:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(FormatNumber(f))

	case String:
		return encodeString(buf, string(v))

	case BigInt:
		return ErrBigInt

	case *Date:
		if !v.Valid {
			buf.WriteString("null")
			return nil
		}
		return encodeString(buf, v.String())

	case *Boxed:
		return encode(buf, v.Value, seen)

	case *Array:
		if seen[v] {
			return ErrCyclic
		}
		seen[v] = true
		defer delete(seen, v)
		buf.WriteByte('[')
		for i, elem := range v.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, elem, seen); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case *Object:
		if seen[v] {
			return ErrCyclic
		}
		seen[v] = true
		defer delete(seen, v)
		buf.WriteByte('{')
		n := 0
		for _, key := range v.keys {
			field := v.fields[key]
			if skipped(field) {
				continue
			}
			if n > 0 {
				buf.WriteByte(',')
			}
			n++
			if err := encodeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, field, seen); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case *RegExp, *Set, *Map, *Error:
		buf.WriteString("{}")

	default:
		return fmt.Errorf("unsupported value: %T", v)

	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

func marshal(v Value) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := encode(buf, v, make(map[Value]bool)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON methods serialize in array element position, where
// unserializable values become null.

func (u Undefined) MarshalJSON() ([]byte, error) { return marshal(u) }
func (n Null) MarshalJSON() ([]byte, error)      { return marshal(n) }
func (b Bool) MarshalJSON() ([]byte, error)      { return marshal(b) }
func (n Number) MarshalJSON() ([]byte, error)    { return marshal(n) }
func (s String) MarshalJSON() ([]byte, error)    { return marshal(s) }
func (b BigInt) MarshalJSON() ([]byte, error)    { return marshal(b) }
func (s *Symbol) MarshalJSON() ([]byte, error)   { return marshal(s) }
func (a *Array) MarshalJSON() ([]byte, error)    { return marshal(a) }
func (o *Object) MarshalJSON() ([]byte, error)   { return marshal(o) }
func (f *Function) MarshalJSON() ([]byte, error) { return marshal(f) }
func (d *Date) MarshalJSON() ([]byte, error)     { return marshal(d) }
func (r *RegExp) MarshalJSON() ([]byte, error)   { return marshal(r) }
func (s *Set) MarshalJSON() ([]byte, error)      { return marshal(s) }
func (m *Map) MarshalJSON() ([]byte, error)      { return marshal(m) }
func (e *Error) MarshalJSON() ([]byte, error)    { return marshal(e) }
func (b *Boxed) MarshalJSON() ([]byte, error)    { return marshal(b) }
