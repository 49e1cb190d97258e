package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
color?: bool
cases?: [...{
	label: string
	expr: string
	shallow?: string
	real?: string
}]
`

type testCase struct {
	Label   string `json:"label"`
	Expr    string `json:"expr"`
	Shallow string `json:"shallow,omitempty"`
	Real    string `json:"real,omitempty"`
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}

	var color bool
	err := loader.AssignFirst("color", &color)
	if err != nil {
		t.Fatal(err)
	}
	if !color {
		t.Fatal()
	}

	var cases []testCase
	err = loader.AssignFirst("cases", &cases)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", cases); str != "[{set literal set([1, 2])  set} {null null object null}]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &cases)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var colors []bool
	for value, err := range loader.IterCueValues("color") {
		if err != nil {
			t.Fatal(err)
		}
		var b bool
		if err := value.Decode(&b); err != nil {
			t.Fatal(err)
		}
		colors = append(colors, b)
	}
	if str := fmt.Sprintf("%v", colors); str != "[true false]" {
		t.Fatalf("got %q", str)
	}

	var labels []string
	for cases := range All[[]testCase](loader, "cases") {
		for _, c := range cases {
			labels = append(labels, c.Label)
		}
	}
	if str := fmt.Sprintf("%v", labels); str != "[set literal null boxed string]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"missing.cue"}, testSchema)
	for _, err := range loader.IterCueValues("color") {
		if err == nil {
			t.Fatal("should error")
		}
	}
}

func TestIncompleteValues(t *testing.T) {
	for _, path := range []string{
		"non_concrete.cue",
		"missing_expr.cue",
	} {
		t.Run(path, func(t *testing.T) {
			loader := NewLoader([]string{path}, testSchema)
			if err := loader.Err(); err == nil {
				t.Fatal("should error")
			}
			var color bool
			if err := loader.AssignFirst("color", &color); err == nil {
				t.Fatal("should error")
			}
		})
	}
}

func TestOptionalFieldNotSet(t *testing.T) {
	loader := NewLoader([]string{"test2.cue"}, testSchema+"strict_exit?: bool\n")
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	var strict bool
	if err := loader.AssignFirst("strict_exit", &strict); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
	if First[bool](loader, "strict_exit") {
		t.Fatal("should be false")
	}
}
