package values

import (
	"math"
	"math/big"
	"time"
)

// Value is a runtime datum of a dynamically typed language.
// The set of implementations is closed.
type Value interface {
	Kind() Kind
	String() string
	value()
}

type Undefined struct{}

type Null struct{}

type Bool bool

type Number float64

type String string

// BigInt is an arbitrary precision integer primitive.
type BigInt struct {
	Int *big.Int
}

// Symbol is a unique primitive. Two symbols with the same description are distinct.
type Symbol struct {
	Description string
}

type Array struct {
	Elems []Value
}

// Object is a record with insertion ordered string keys.
type Object struct {
	keys   []string
	fields map[string]Value
}

type Function struct {
	Name  string
	Arity int
	Impl  func(args ...Value) (Value, error)
}

type Date struct {
	Time  time.Time
	Valid bool
}

type RegExp struct {
	Source string
	Flags  string
}

// Set holds unique values in insertion order, compared with SameValueZero.
type Set struct {
	elems []Value
}

// Map holds key value pairs in insertion order, keys compared with SameValueZero.
type Map struct {
	keys []Value
	vals []Value
}

type Error struct {
	Message string
}

// Boxed is an object wrapper around a Bool, Number or String primitive.
type Boxed struct {
	Value Value
}

func (Undefined) value() {}
func (Null) value()      {}
func (Bool) value()      {}
func (Number) value()    {}
func (String) value()    {}
func (BigInt) value()    {}
func (*Symbol) value()   {}
func (*Array) value()    {}
func (*Object) value()   {}
func (*Function) value() {}
func (*Date) value()     {}
func (*RegExp) value()   {}
func (*Set) value()      {}
func (*Map) value()      {}
func (*Error) value()    {}
func (*Boxed) value()    {}

func NaN() Number {
	return Number(math.NaN())
}

func Inf(sign int) Number {
	return Number(math.Inf(sign))
}

func NewBigInt(i *big.Int) BigInt {
	return BigInt{
		Int: new(big.Int).Set(i),
	}
}

func ParseBigInt(str string) (BigInt, bool) {
	i, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return BigInt{}, false
	}
	return BigInt{Int: i}, true
}

func NewSymbol(desc string) *Symbol {
	return &Symbol{
		Description: desc,
	}
}

func NewArray(elems ...Value) *Array {
	return &Array{
		Elems: elems,
	}
}

func NewObject() *Object {
	return &Object{
		fields: make(map[string]Value),
	}
}

// Set assigns a field, keeping the position of an existing key.
func (o *Object) Set(key string, value Value) *Object {
	if o.fields == nil {
		o.fields = make(map[string]Value)
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
	return o
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) Len() int {
	return len(o.keys)
}

func NewFunction(name string, arity int, impl func(args ...Value) (Value, error)) *Function {
	return &Function{
		Name:  name,
		Arity: arity,
		Impl:  impl,
	}
}

// Call invokes the function. A function without implementation returns undefined.
func (f *Function) Call(args ...Value) (Value, error) {
	if f.Impl == nil {
		return Undefined{}, nil
	}
	return f.Impl(args...)
}

func NewDate(t time.Time) *Date {
	return &Date{
		Time:  t,
		Valid: true,
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDate parses the date time string formats. Unparseable input yields an invalid date.
func ParseDate(str string) *Date {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, str)
		if err == nil {
			return NewDate(t)
		}
	}
	return &Date{}
}

func NewRegExp(source, flags string) *RegExp {
	if source == "" {
		source = "(?:)"
	}
	return &RegExp{
		Source: source,
		Flags:  flags,
	}
}

func NewSet(elems ...Value) *Set {
	s := new(Set)
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

func (s *Set) Add(v Value) *Set {
	if !s.Has(v) {
		s.elems = append(s.elems, v)
	}
	return s
}

func (s *Set) Has(v Value) bool {
	for _, elem := range s.elems {
		if SameValueZero(elem, v) {
			return true
		}
	}
	return false
}

func (s *Set) Values() []Value {
	return s.elems
}

func (s *Set) Len() int {
	return len(s.elems)
}

func NewMap() *Map {
	return new(Map)
}

func (m *Map) Set(key, value Value) *Map {
	for i, k := range m.keys {
		if SameValueZero(k, key) {
			m.vals[i] = value
			return m
		}
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
	return m
}

func (m *Map) Get(key Value) (Value, bool) {
	for i, k := range m.keys {
		if SameValueZero(k, key) {
			return m.vals[i], true
		}
	}
	return nil, false
}

func (m *Map) Range(fn func(key, value Value) bool) {
	for i, k := range m.keys {
		if !fn(k, m.vals[i]) {
			return
		}
	}
}

func (m *Map) Len() int {
	return len(m.keys)
}

func NewError(message string) *Error {
	return &Error{
		Message: message,
	}
}

// Box wraps a primitive the way an explicit wrapper constructor call does.
// Values other than Bool, Number and String are converted first.
func Box(v Value) *Boxed {
	switch v := v.(type) {
	case Bool, Number, String:
		return &Boxed{Value: v}
	case *Boxed:
		return v
	}
	return &Boxed{Value: String(ToString(v))}
}
