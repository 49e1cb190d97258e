package values

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{123, "123"},
		{113.2, "113.2"},
		{-0.5, "-0.5"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789012345680000, "123456789012345680000"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range testCases {
		if got := FormatNumber(tc.input); got != tc.expected {
			t.Fatalf("got %s, want %s", got, tc.expected)
		}
	}
}

func TestInspect(t *testing.T) {
	cyclic := NewArray()
	cyclic.Elems = append(cyclic.Elems, cyclic)
	testCases := []struct {
		input    Value
		expected string
	}{
		{nil, "undefined"},
		{String("it's"), `'it\'s'`},
		{NewArray(Number(1), Number(2), Number(3)), "[ 1, 2, 3 ]"},
		{NewArray(), "[]"},
		{NewObject().Set("id", Number(1)).Set("full name", String("x")), "{ id: 1, 'full name': 'x' }"},
		{NewObject(), "{}"},
		{NewFunction("double", 1, nil), "[Function: double]"},
		{NewFunction("", 0, nil), "[Function (anonymous)]"},
		{NewSet(Number(1), Number(2), Number(1)), "Set(2) { 1, 2 }"},
		{NewMap(), "Map(0) {}"},
		{NewMap().Set(String("a"), Number(1)), "Map(1) { 'a' => 1 }"},
		{NewRegExp("[abcd]+", ""), "/[abcd]+/"},
		{NewRegExp("", ""), "/(?:)/"},
		{Box(String("12")), "[String: '12']"},
		{Box(Number(3)), "[Number: 3]"},
		{mustBigInt(t, "7"), "7n"},
		{NewSymbol("id"), "Symbol(id)"},
		{NewError("bad"), "Error: bad"},
		{ParseDate("2020-05-12T23:50:21.817Z"), "2020-05-12T23:50:21.817Z"},
		{ParseDate("not a date"), "Invalid Date"},
		{cyclic, "[ [Circular] ]"},
	}
	for _, tc := range testCases {
		if got := Inspect(tc.input); got != tc.expected {
			t.Fatalf("got %s, want %s", got, tc.expected)
		}
	}
}

func TestObjectSetKeepsOrder(t *testing.T) {
	o := NewObject().Set("b", Number(1)).Set("a", Number(2)).Set("b", Number(3))
	if got := Inspect(o); got != "{ b: 3, a: 2 }" {
		t.Fatalf("got %s", got)
	}
	if v, ok := o.Get("b"); !ok || !StrictEqual(v, Number(3)) {
		t.Fatalf("got %v", v)
	}
}

func TestSetAndMapKeys(t *testing.T) {
	s := NewSet(NaN(), NaN(), Number(0), Number(math.Copysign(0, -1)))
	if s.Len() != 2 {
		t.Fatalf("got %d", s.Len())
	}
	key := NewArray()
	m := NewMap().Set(key, Number(1)).Set(NewArray(), Number(2)).Set(key, Number(3))
	if m.Len() != 2 {
		t.Fatalf("got %d", m.Len())
	}
	if v, _ := m.Get(key); !StrictEqual(v, Number(3)) {
		t.Fatalf("got %v", v)
	}
}

func TestClassName(t *testing.T) {
	testCases := []struct {
		input    Value
		expected string
	}{
		{nil, "Undefined"},
		{Null{}, "Null"},
		{NewArray(), "Array"},
		{NewRegExp("a", ""), "RegExp"},
		{Box(String("x")), "String"},
		{Box(Bool(true)), "Boolean"},
		{NaN(), "Number"},
	}
	for _, tc := range testCases {
		if got := ClassName(tc.input); got != tc.expected {
			t.Fatalf("got %s, want %s", got, tc.expected)
		}
	}
}

func TestStringify(t *testing.T) {
	date := NewDate(time.Date(2020, 5, 12, 23, 50, 21, 817000000, time.UTC))
	testCases := []struct {
		input    Value
		expected string
	}{
		{NewArray(Number(1), String("a"), Bool(true), Null{}), `[1,"a",true,null]`},
		{NewArray(NaN(), Inf(1), Undefined{}, NewFunction("f", 0, nil)), `[null,null,null,null]`},
		{NewObject().Set("a", Undefined{}).Set("b", Number(1)), `{"b":1}`},
		{NewArray(NewSet(Number(1)), NewMap(), NewRegExp("x", "")), `[{},{},{}]`},
		{date, `"2020-05-12T23:50:21.817Z"`},
		{Box(String("<b>")), `"<b>"`},
	}
	for _, tc := range testCases {
		got, ok, err := Stringify(tc.input)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("should be serializable")
		}
		if got != tc.expected {
			t.Fatalf("got %s, want %s", got, tc.expected)
		}
	}

	if _, ok, _ := Stringify(Undefined{}); ok {
		t.Fatal("undefined should not serialize")
	}

	cyclic := NewArray()
	cyclic.Elems = append(cyclic.Elems, cyclic)
	if _, _, err := Stringify(cyclic); !errors.Is(err, ErrCyclic) {
		t.Fatalf("got %v", err)
	}
	if _, _, err := Stringify(NewArray(mustBigInt(t, "1"))); !errors.Is(err, ErrBigInt) {
		t.Fatalf("got %v", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	bs, err := json.Marshal([]Value{
		Number(1), NaN(), Undefined{}, NewArray(Number(2)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(bs) != `[1,null,null,[2]]` {
		t.Fatalf("got %s", bs)
	}
}
