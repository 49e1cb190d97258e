package classify

import (
	"math"
	"slices"
	"strings"

	"github.com/reusee/realtype/values"
	"github.com/samber/lo"
)

// GetType returns the shallow tag of a value.
func GetType(v values.Value) Tag {
	if v == nil {
		return TagUndefined
	}
	switch v.Kind() {
	case values.KindUndefined:
		return TagUndefined
	case values.KindBoolean:
		return TagBoolean
	case values.KindNumber:
		return TagNumber
	case values.KindString:
		return TagString
	case values.KindBigInt:
		return TagBigInt
	case values.KindSymbol:
		return TagSymbol
	case values.KindFunction:
		return TagFunction
	}
	return TagObject
}

// GetRealType returns the real tag of a value.
// NaN and infinite numbers get their own tags, everything else is tagged
// by its lower-cased class name.
func GetRealType(v values.Value) Tag {
	if n, ok := v.(values.Number); ok {
		f := float64(n)
		if math.IsNaN(f) {
			return TagNaN
		}
		if math.IsInf(f, 0) {
			return TagInfinity
		}
	}
	return Tag(strings.ToLower(values.ClassName(v)))
}

// GetTypesOfItems returns the shallow tag of each item.
func GetTypesOfItems(items []values.Value) []Tag {
	return lo.Map(items, func(item values.Value, _ int) Tag {
		return GetType(item)
	})
}

// GetRealTypesOfItems returns the real tag of each item.
func GetRealTypesOfItems(items []values.Value) []Tag {
	return lo.Map(items, func(item values.Value, _ int) Tag {
		return GetRealType(item)
	})
}

// AllItemsHaveTheSameType reports whether all items share the shallow tag of the first one.
// An empty slice has no counterexample.
func AllItemsHaveTheSameType(items []values.Value) bool {
	if len(items) == 0 {
		return true
	}
	first := GetType(items[0])
	return lo.EveryBy(items, func(item values.Value) bool {
		return GetType(item) == first
	})
}

// EveryItemHasAUniqueRealType reports whether no two items share a real tag.
func EveryItemHasAUniqueRealType(items []values.Value) bool {
	tags := GetRealTypesOfItems(items)
	return len(lo.Uniq(tags)) == len(tags)
}

// CountRealTypes counts items per real tag, sorted by tag.
func CountRealTypes(items []values.Value) []TypeCount {
	counts := lo.CountValues(GetRealTypesOfItems(items))
	tags := lo.Keys(counts)
	slices.Sort(tags)
	ret := make([]TypeCount, 0, len(tags))
	for _, tag := range tags {
		ret = append(ret, TypeCount{
			Tag:   tag,
			Count: counts[tag],
		})
	}
	return ret
}

// EveryItemIsNaN reports whether all items are tagged NaN.
func EveryItemIsNaN(items []values.Value) bool {
	return lo.EveryBy(items, func(item values.Value) bool {
		return GetRealType(item) == TagNaN
	})
}

// EveryItemIsFinite reports whether all items are finite primitive numbers.
func EveryItemIsFinite(items []values.Value) bool {
	return lo.EveryBy(items, func(item values.Value) bool {
		n, ok := item.(values.Number)
		return ok && !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0)
	})
}
