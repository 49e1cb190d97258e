package exprs

import (
	"math"
	"testing"

	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/values"
)

func TestEvalTypes(t *testing.T) {
	for _, c := range []struct {
		src     string
		shallow classify.Tag
		real    classify.Tag
	}{
		{"True", classify.TagBoolean, classify.TagBoolean},
		{"1", classify.TagNumber, classify.TagNumber},
		{"1.5", classify.TagNumber, classify.TagNumber},
		{"'x'", classify.TagString, classify.TagString},
		{"BigInt('7')", classify.TagBigInt, classify.TagBigInt},
		{"BigInt(7)", classify.TagBigInt, classify.TagBigInt},
		{"Symbol('s')", classify.TagSymbol, classify.TagSymbol},
		{"[1, 2]", classify.TagObject, classify.TagArray},
		{"(1, 2)", classify.TagObject, classify.TagArray},
		{"{'a': 1}", classify.TagObject, classify.TagObject},
		{"Object(id=1)", classify.TagObject, classify.TagObject},
		{"lambda x: x", classify.TagFunction, classify.TagFunction},
		{"len", classify.TagFunction, classify.TagFunction},
		{"undefined", classify.TagUndefined, classify.TagUndefined},
		{"null", classify.TagObject, classify.TagNull},
		{"None", classify.TagObject, classify.TagNull},
		{"NaN", classify.TagNumber, classify.TagNaN},
		{"Infinity", classify.TagNumber, classify.TagInfinity},
		{"-Infinity", classify.TagNumber, classify.TagInfinity},
		{"div(1, 0)", classify.TagNumber, classify.TagInfinity},
		{"date('2020-01-01')", classify.TagObject, classify.TagDate},
		{"regexp('a+', 'g')", classify.TagObject, classify.TagRegExp},
		{"set([1, 2])", classify.TagObject, classify.TagSet},
		{"Map()", classify.TagObject, classify.TagMap},
		{"Map([('a', 1)])", classify.TagObject, classify.TagMap},
		{"Error('boom')", classify.TagObject, classify.TagError},
		{"String('x')", classify.TagObject, classify.TagString},
		{"Number(1)", classify.TagObject, classify.TagNumber},
		{"Boolean(0)", classify.TagObject, classify.TagBoolean},
		{"add('1', 2)", classify.TagString, classify.TagString},
		{"not_('')", classify.TagBoolean, classify.TagBoolean},
		{"parse_int('12abc')", classify.TagNumber, classify.TagNumber},
		{"parse_int('abc')", classify.TagNumber, classify.TagNaN},
	} {
		t.Run(c.src, func(t *testing.T) {
			v, err := Eval(c.src)
			if err != nil {
				t.Fatal(err)
			}
			if got := classify.GetType(v); got != c.shallow {
				t.Fatalf("got %v", got)
			}
			if got := classify.GetRealType(v); got != c.real {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestEvalValues(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected string
	}{
		{"[1, 'a', None]", "[ 1, 'a', null ]"},
		{"Object(id=1, name='x')", "{ id: 1, name: 'x' }"},
		{"add(1, 2)", "3"},
		{"add(BigInt(1), BigInt(2))", "3n"},
		{"parse_int('0x1f')", "31"},
		{"parse_int('z', 36)", "35"},
		{"div(7, 2)", "3.5"},
		{"strict_eq(1, 1.0)", "true"},
		{"strict_eq(NaN, NaN)", "false"},
		{"String(12)", "[String: '12']"},
		{"Map([('a', 1)])", "Map(1) { 'a' => 1 }"},
	} {
		t.Run(c.src, func(t *testing.T) {
			v, err := Eval(c.src)
			if err != nil {
				t.Fatal(err)
			}
			if got := values.Inspect(v); got != c.expected {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestEvalError(t *testing.T) {
	for _, src := range []string{
		"",
		"nope",
		"1 +",
		"BigInt('x')",
		"BigInt(1.5)",
		"{1: 2}",
		"Map([1])",
		"date()",
	} {
		t.Run(src, func(t *testing.T) {
			if _, err := Eval(src); err == nil {
				t.Fatal("should fail")
			}
		})
	}
}

func TestEvalFunction(t *testing.T) {
	v, err := Eval("lambda x: add(x, 1)")
	if err != nil {
		t.Fatal(err)
	}
	fn, ok := v.(*values.Function)
	if !ok {
		t.Fatalf("got %T", v)
	}
	if fn.Arity != 1 {
		t.Fatalf("got %v", fn.Arity)
	}
	ret, err := fn.Call(values.Number(41))
	if err != nil {
		t.Fatal(err)
	}
	if ret != values.Number(42) {
		t.Fatalf("got %v", ret)
	}
}

func TestRoundTrip(t *testing.T) {
	arr := values.NewArray(values.Number(1), values.Undefined{}, values.String("a"))
	arr.Elems = append(arr.Elems, arr)
	v, err := FromStarlark(nil, ToStarlark(arr))
	if err != nil {
		t.Fatal(err)
	}
	got := v.(*values.Array)
	if len(got.Elems) != 4 {
		t.Fatalf("got %v", got.Elems)
	}
	if got.Elems[3] != values.Value(got) {
		t.Fatal("cycle not kept")
	}
	if _, ok := got.Elems[1].(values.Undefined); !ok {
		t.Fatalf("got %v", got.Elems[1])
	}

	n, err := FromStarlark(nil, ToStarlark(values.Number(math.Copysign(0, -1))))
	if err != nil {
		t.Fatal(err)
	}
	if !math.Signbit(float64(n.(values.Number))) {
		t.Fatal("negative zero lost")
	}
}

func TestEvalMixedComparison(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected values.Value
	}{
		{"String('x') == 'x'", values.Bool(false)},
		{"'x' == String('x')", values.Bool(false)},
		{"String('x') != 'x'", values.Bool(true)},
		{"Number(1) == 1", values.Bool(false)},
		{"undefined == undefined", values.Bool(true)},
		{"undefined == None", values.Bool(false)},
		{"[String('x')] == ['x']", values.Bool(false)},
	} {
		t.Run(c.src, func(t *testing.T) {
			v, err := Eval(c.src)
			if err != nil {
				t.Fatal(err)
			}
			if v != c.expected {
				t.Fatalf("got %v", v)
			}
		})
	}

	for _, src := range []string{
		"String('x') < 'x'",
		"'x' < String('x')",
		"undefined < undefined",
	} {
		t.Run(src, func(t *testing.T) {
			if _, err := Eval(src); err == nil {
				t.Fatal("should fail")
			}
		})
	}

	if got := Wrap(values.Box(values.String("x"))).Type(); got != "js.string" {
		t.Fatalf("got %s", got)
	}
}
