package suites

import (
	"time"

	"github.com/reusee/realtype/asserts"
	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/values"
)

var knownTypesDate = time.Date(2020, 5, 12, 23, 50, 21, 817*int(time.Millisecond), time.UTC)

// KnownTypes returns one value of each real type.
func KnownTypes() []values.Value {
	double := values.NewFunction("", 1, func(args ...values.Value) (values.Value, error) {
		var x values.Value = values.Undefined{}
		if len(args) > 0 {
			x = args[0]
		}
		return values.ToNumber(x) * 2, nil
	})
	return []values.Value{
		values.Bool(false),
		values.Number(123),
		values.String("abcde"),
		values.NewArray(values.Number(1), values.Number(2), values.Number(3)),
		values.NewObject().Set("id", values.Number(1)),
		double,
		values.Undefined{},
		values.Null{},
		values.Div(values.String("a"), values.Number(3)),
		values.Div(values.Number(1), values.Number(0)),
		values.NewDate(knownTypesDate),
		values.NewRegExp("[abcd]+", ""),
		values.NewSet(values.Number(1), values.Number(2), values.Number(3), values.Number(4)),
		values.NewMap(),
	}
}

func nums(ns ...float64) []values.Value {
	ret := make([]values.Value, 0, len(ns))
	for _, n := range ns {
		ret = append(ret, values.Number(n))
	}
	return ret
}

// Original reports the classic classification suite.
func Original(r *asserts.Reporter) {
	getType(r)
	allItemsHaveTheSameType(r)
	typesVersusRealTypes(r)
	everyItemHasAUniqueRealType(r)
	countRealTypes(r)
	allAreNaN(r)
	allAreFinite(r)
}

func getType(r *asserts.Reporter) {
	r.Block("getType")
	r.Test("Boolean", classify.GetType(values.Bool(true)), classify.TagBoolean)
	r.Test("Number", classify.GetType(values.Number(123)), classify.TagNumber)
	r.Test("String", classify.GetType(values.String("whoo")), classify.TagString)
	r.Test("Array", classify.GetType(values.NewArray()), classify.TagObject)
	r.Test("Object", classify.GetType(values.NewObject()), classify.TagObject)
	r.Test("Function", classify.GetType(values.NewFunction("", 0, nil)), classify.TagFunction)
	r.Test("Undefined", classify.GetType(values.Undefined{}), classify.TagUndefined)
	r.Test("Null", classify.GetType(values.Null{}), classify.TagObject)
}

func allItemsHaveTheSameType(r *asserts.Reporter) {
	r.Block("allItemsHaveTheSameType")
	r.Test("All values are numbers",
		classify.AllItemsHaveTheSameType(nums(11, 12, 13)),
		true,
	)
	r.Test("All values are strings",
		classify.AllItemsHaveTheSameType([]values.Value{
			values.String("11"),
			values.String("12"),
			values.String("13"),
		}),
		true,
	)
	// a boxed string is an object
	r.Test("All values are strings but wait",
		classify.AllItemsHaveTheSameType([]values.Value{
			values.String("11"),
			values.Box(values.String("12")),
			values.String("13"),
		}),
		false,
	)
	// NaN and Infinity are numbers
	r.Test("Values like a number",
		classify.AllItemsHaveTheSameType([]values.Value{
			values.Number(123),
			values.Div(values.Number(123), values.String("a")),
			values.Div(values.Number(1), values.Number(0)),
		}),
		true,
	)
	r.Test("Values like an object",
		classify.AllItemsHaveTheSameType([]values.Value{
			values.NewObject(),
		}),
		true,
	)
}

func typesVersusRealTypes(r *asserts.Reporter) {
	r.Block("getTypesOfItems VS getRealTypesOfItems")
	r.Test("Check basic types",
		classify.GetTypesOfItems(KnownTypes()),
		[]classify.Tag{
			classify.TagBoolean,
			classify.TagNumber,
			classify.TagString,
			classify.TagObject,
			classify.TagObject,
			classify.TagFunction,
			classify.TagUndefined,
			classify.TagObject,
			classify.TagNumber,
			classify.TagNumber,
			classify.TagObject,
			classify.TagObject,
			classify.TagObject,
			classify.TagObject,
		},
	)
	r.Test("Check real types",
		classify.GetRealTypesOfItems(KnownTypes()),
		[]classify.Tag{
			classify.TagBoolean,
			classify.TagNumber,
			classify.TagString,
			classify.TagArray,
			classify.TagObject,
			classify.TagFunction,
			classify.TagUndefined,
			classify.TagNull,
			classify.TagNaN,
			classify.TagInfinity,
			classify.TagDate,
			classify.TagRegExp,
			classify.TagSet,
			classify.TagMap,
		},
	)
}

func everyItemHasAUniqueRealType(r *asserts.Reporter) {
	r.Block("everyItemHasAUniqueRealType")
	r.Test("All value types in the array are unique",
		classify.EveryItemHasAUniqueRealType([]values.Value{
			values.Bool(true),
			values.Number(123),
			values.String("123"),
		}),
		true,
	)
	r.Test("Two values have the same type",
		classify.EveryItemHasAUniqueRealType([]values.Value{
			values.Bool(true),
			values.Number(123),
			values.Bool(values.StrictEqual(values.String("123"), values.Number(123))),
		}),
		false,
	)
	r.Test("There are no repeated types in knownTypes",
		classify.EveryItemHasAUniqueRealType(KnownTypes()),
		true,
	)
}

func countRealTypes(r *asserts.Reporter) {
	r.Block("countRealTypes")
	expected := []classify.TypeCount{
		{Tag: classify.TagBoolean, Count: 3},
		{Tag: classify.TagNull, Count: 1},
		{Tag: classify.TagObject, Count: 1},
	}
	null := values.Null{}
	r.Test("Count unique types of array items",
		classify.CountRealTypes([]values.Value{
			values.Bool(true),
			null,
			values.Not(null),
			values.Not(values.Not(null)),
			values.NewObject(),
		}),
		expected,
	)
	r.Test("Counted unique types are sorted",
		classify.CountRealTypes([]values.Value{
			values.NewObject(),
			null,
			values.Bool(true),
			values.Not(null),
			values.Not(values.Not(null)),
		}),
		expected,
	)
}

func allAreNaN(r *asserts.Reporter) {
	r.Block("myTestAllAreNaN")
	inf := values.Inf(1)
	r.Test("All the items are NaN",
		classify.EveryItemIsNaN([]values.Value{
			values.Div(inf, inf),
			values.Add(values.NaN(), values.Number(1)),
			values.ParseInt("nikita", 5),
		}),
		true,
	)
}

func allAreFinite(r *asserts.Reporter) {
	r.Block("myTestAllAreFinite")
	r.Test("All values are numeric",
		classify.EveryItemIsFinite([]values.Value{
			values.Number(123),
			values.Number(113.2),
			values.Div(values.Number(23), values.Number(12)),
		}),
		true,
	)
	r.Test("Has String",
		classify.EveryItemIsFinite([]values.Value{
			values.Number(123),
			values.Number(113.2),
			values.String("123"),
		}),
		false,
	)
	r.Test("Has Infinity",
		classify.EveryItemIsFinite([]values.Value{
			values.Number(123),
			values.Number(113.2),
			values.Inf(1),
		}),
		false,
	)
	r.Test("Has NaN",
		classify.EveryItemIsFinite([]values.Value{
			values.NaN(),
			values.Number(123),
		}),
		false,
	)
}
