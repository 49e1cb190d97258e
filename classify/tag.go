package classify

import (
	"encoding/json"
	"strconv"
)

// Tag is a type label.
type Tag string

const (
	TagBoolean   Tag = "boolean"
	TagNumber    Tag = "number"
	TagString    Tag = "string"
	TagBigInt    Tag = "bigint"
	TagSymbol    Tag = "symbol"
	TagObject    Tag = "object"
	TagFunction  Tag = "function"
	TagUndefined Tag = "undefined"

	TagArray    Tag = "array"
	TagNull     Tag = "null"
	TagNaN      Tag = "NaN"
	TagInfinity Tag = "Infinity"
	TagDate     Tag = "date"
	TagRegExp   Tag = "regexp"
	TagSet      Tag = "set"
	TagMap      Tag = "map"
	TagError    Tag = "error"
)

// TypeCount is the number of items bearing a tag.
type TypeCount struct {
	Tag   Tag
	Count int
}

// MarshalJSON encodes the pair as a two element array.
func (t TypeCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Tag, t.Count})
}

func (t TypeCount) Inspect() string {
	return "[ '" + string(t.Tag) + "', " + strconv.Itoa(t.Count) + " ]"
}
