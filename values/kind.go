package values

type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindBigInt
	KindString
	KindSymbol
	KindArray
	KindObject
	KindFunction
	KindDate
	KindRegExp
	KindSet
	KindMap
	KindError
	KindBoxed
)

var kindNames = [...]string{
	KindUndefined: "Undefined",
	KindNull:      "Null",
	KindBoolean:   "Boolean",
	KindNumber:    "Number",
	KindBigInt:    "BigInt",
	KindString:    "String",
	KindSymbol:    "Symbol",
	KindArray:     "Array",
	KindObject:    "Object",
	KindFunction:  "Function",
	KindDate:      "Date",
	KindRegExp:    "RegExp",
	KindSet:       "Set",
	KindMap:       "Map",
	KindError:     "Error",
	KindBoxed:     "Boxed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsPrimitive reports whether values of the kind are not objects.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindUndefined, KindNull, KindBoolean, KindNumber,
		KindBigInt, KindString, KindSymbol:
		return true
	}
	return false
}

func (Undefined) Kind() Kind { return KindUndefined }
func (Null) Kind() Kind      { return KindNull }
func (Bool) Kind() Kind      { return KindBoolean }
func (Number) Kind() Kind    { return KindNumber }
func (String) Kind() Kind    { return KindString }
func (BigInt) Kind() Kind    { return KindBigInt }
func (*Symbol) Kind() Kind   { return KindSymbol }
func (*Array) Kind() Kind    { return KindArray }
func (*Object) Kind() Kind   { return KindObject }
func (*Function) Kind() Kind { return KindFunction }
func (*Date) Kind() Kind     { return KindDate }
func (*RegExp) Kind() Kind   { return KindRegExp }
func (*Set) Kind() Kind      { return KindSet }
func (*Map) Kind() Kind      { return KindMap }
func (*Error) Kind() Kind    { return KindError }
func (*Boxed) Kind() Kind    { return KindBoxed }

// ClassName returns the internal class descriptor of a value,
// the word a universal to-string probe reports as "[object <ClassName>]".
// Boxed primitives report the class of the wrapped primitive.
// A nil Value is undefined.
func ClassName(v Value) string {
	if v == nil {
		return KindUndefined.String()
	}
	if b, ok := v.(*Boxed); ok {
		return ClassName(b.Value)
	}
	return v.Kind().String()
}
