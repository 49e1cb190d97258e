package values

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// StrictEqual compares with identity semantics: primitives by value,
// objects by reference. NaN is not equal to anything, +0 equals -0.
func StrictEqual(a, b Value) bool {
	a, b = orUndefined(a), orUndefined(b)
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case Undefined, Null:
		return true
	case Bool:
		return a == b.(Bool)
	case Number:
		return a == b.(Number)
	case String:
		return a == b.(String)
	case BigInt:
		return bigCmp(a, b.(BigInt)) == 0
	}
	return a == b
}

// SameValueZero is StrictEqual except that NaN equals NaN.
func SameValueZero(a, b Value) bool {
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok && math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
	}
	return StrictEqual(a, b)
}

func orUndefined(v Value) Value {
	if v == nil {
		return Undefined{}
	}
	return v
}

func bigCmp(a, b BigInt) int {
	x, y := a.Int, b.Int
	if x == nil {
		x = new(big.Int)
	}
	if y == nil {
		y = new(big.Int)
	}
	return x.Cmp(y)
}

// Truthy reports the boolean coercion of a value.
func Truthy(v Value) bool {
	switch v := orUndefined(v).(type) {
	case Undefined, Null:
		return false
	case Bool:
		return bool(v)
	case Number:
		return v != 0 && !math.IsNaN(float64(v))
	case String:
		return v != ""
	case BigInt:
		return v.Int != nil && v.Int.Sign() != 0
	}
	return true
}

func Not(v Value) Bool {
	return Bool(!Truthy(v))
}

// toPrimitive unwraps boxes and turns other objects into their string form.
func toPrimitive(v Value) Value {
	v = orUndefined(v)
	if v.Kind().IsPrimitive() {
		return v
	}
	if b, ok := v.(*Boxed); ok {
		return b.Value
	}
	return String(ToString(v))
}

// ToNumber is the numeric coercion of a value.
func ToNumber(v Value) Number {
	switch v := orUndefined(v).(type) {
	case Undefined:
		return NaN()
	case Null:
		return 0
	case Bool:
		if v {
			return 1
		}
		return 0
	case Number:
		return v
	case String:
		return StringToNumber(string(v))
	case BigInt:
		if v.Int == nil {
			return 0
		}
		f, _ := new(big.Float).SetInt(v.Int).Float64()
		return Number(f)
	case *Boxed:
		return ToNumber(v.Value)
	case *Date:
		if !v.Valid {
			return NaN()
		}
		return Number(v.Time.UnixMilli())
	case *Symbol, *Object, *Function, *RegExp, *Set, *Map, *Error:
		return NaN()
	}
	return ToNumber(toPrimitive(v))
}

const whitespace = " \t\n\v\f\r\u00a0\u1680\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a\u2028\u2029\u202f\u205f\u3000\ufeff"

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// StringToNumber parses numeric string literals. Empty strings are zero.
func StringToNumber(str string) Number {
	str = strings.Trim(str, whitespace)
	switch str {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return Inf(1)
	case "-Infinity":
		return Inf(-1)
	}
	if len(str) > 2 && str[0] == '0' {
		base := 0
		switch str[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, ok := parseDigits(str[2:], base)
			if !ok || n.n != len(str)-2 {
				return NaN()
			}
			return n.value
		}
	}
	if !decimalPattern.MatchString(str) {
		return NaN()
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil && !math.IsInf(f, 0) {
		return NaN()
	}
	return Number(f)
}

type digits struct {
	value Number
	n     int
}

func parseDigits(str string, base int) (ret digits, ok bool) {
	for _, r := range str {
		d := digitValue(r)
		if d < 0 || d >= base {
			break
		}
		ret.value = ret.value*Number(base) + Number(d)
		ret.n++
	}
	return ret, ret.n > 0
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

// ParseInt parses the leading integer of a string in the given radix.
// Radix 0 means 10, or 16 when the string has a 0x prefix.
// Radices outside 2 to 36 and strings without leading digits yield NaN.
func ParseInt(str string, radix int) Number {
	str = strings.TrimLeft(str, whitespace)
	sign := Number(1)
	if str != "" && (str[0] == '-' || str[0] == '+') {
		if str[0] == '-' {
			sign = -1
		}
		str = str[1:]
	}
	stripPrefix := true
	if radix != 0 {
		if radix < 2 || radix > 36 {
			return NaN()
		}
		if radix != 16 {
			stripPrefix = false
		}
	} else {
		radix = 10
	}
	if stripPrefix && len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X') {
		str = str[2:]
		radix = 16
	}
	d, ok := parseDigits(str, radix)
	if !ok {
		return NaN()
	}
	return sign * d.value
}

// ToString is the string coercion of a value.
func ToString(v Value) string {
	switch v := orUndefined(v).(type) {
	case *Array:
		return joinArray(v, make(map[*Array]bool))
	case *Object:
		return "[object Object]"
	case *Function:
		return "function " + v.Name + "() { [native code] }"
	case *Set:
		return "[object Set]"
	case *Map:
		return "[object Map]"
	case *Boxed:
		return ToString(v.Value)
	default:
		return v.String()
	}
}

func joinArray(a *Array, seen map[*Array]bool) string {
	if seen[a] {
		return ""
	}
	seen[a] = true
	defer delete(seen, a)
	parts := make([]string, len(a.Elems))
	for i, elem := range a.Elems {
		switch elem := orUndefined(elem).(type) {
		case Undefined, Null:
		case *Array:
			parts[i] = joinArray(elem, seen)
		default:
			parts[i] = ToString(elem)
		}
	}
	return strings.Join(parts, ",")
}

// Add is the binary plus operator: string concatenation when either
// operand is a string after primitive conversion, numeric addition otherwise.
func Add(a, b Value) Value {
	pa, pb := toPrimitive(a), toPrimitive(b)
	_, aStr := pa.(String)
	_, bStr := pb.(String)
	if aStr || bStr {
		return String(ToString(pa) + ToString(pb))
	}
	if x, ok := pa.(BigInt); ok {
		if y, ok := pb.(BigInt); ok {
			return BigInt{Int: new(big.Int).Add(bigOrZero(x), bigOrZero(y))}
		}
	}
	return ToNumber(pa) + ToNumber(pb)
}

// Div is the binary division operator. Division by zero yields an infinity or NaN.
func Div(a, b Value) Number {
	x := float64(ToNumber(a))
	y := float64(ToNumber(b))
	return Number(x / y)
}

func bigOrZero(b BigInt) *big.Int {
	if b.Int == nil {
		return new(big.Int)
	}
	return b.Int
}
