package asserts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/reusee/realtype/logs"
	"github.com/reusee/realtype/values"
)

// Reporter prints assertion results grouped in blocks.
type Reporter struct {
	out       io.Writer
	logger    logs.Logger
	block     string
	indent    string
	passes    int
	failures  int
	okColor   *color.Color
	failColor *color.Color
}

func NewReporter(out io.Writer, logger logs.Logger, colorize bool) *Reporter {
	okColor := color.New(color.FgGreen)
	failColor := color.New(color.FgRed, color.Bold)
	if colorize {
		okColor.EnableColor()
		failColor.EnableColor()
	} else {
		okColor.DisableColor()
		failColor.DisableColor()
	}
	return &Reporter{
		out:       out,
		logger:    logger,
		okColor:   okColor,
		failColor: failColor,
	}
}

// Block ends the current block and starts a new one.
func (r *Reporter) Block(name string) {
	r.block = name
	r.indent = ""
	r.line("# " + name)
	r.line("")
	r.indent = "  "
	if r.logger != nil {
		r.logger.Debug("assertion block", "name", name)
	}
}

// Test compares actual with expected and prints the result.
// Array-like values are compared by their JSON serialization, others by strict equality.
func (r *Reporter) Test(label string, actual, expected any) {
	if Equal(actual, expected) {
		r.passes++
		r.line(r.okColor.Sprint("[OK]") + " " + label)
		r.line("")
		return
	}

	r.failures++
	r.line(r.failColor.Sprint("[FAIL]") + " " + label)
	r.line("Expected:")
	r.line(Dump(expected))
	r.line("Actual:")
	r.line(Dump(actual))
	r.line("")
	if r.logger != nil {
		r.logger.Warn("assertion failed",
			"block", r.block,
			"label", label,
		)
	}
}

func (r *Reporter) Passes() int {
	return r.passes
}

func (r *Reporter) Failures() int {
	return r.failures
}

func (r *Reporter) line(text string) {
	if text == "" {
		fmt.Fprintln(r.out)
		return
	}
	for l := range strings.SplitSeq(text, "\n") {
		fmt.Fprintln(r.out, r.indent+l)
	}
}

// Equal reports whether two results match.
// It never panics.
func Equal(actual, expected any) (ret bool) {
	defer func() {
		if p := recover(); p != nil {
			ret = false
		}
	}()
	if isArrayLike(actual) && isArrayLike(expected) {
		return serializedEqual(actual, expected)
	}
	return strictEqual(actual, expected)
}

func isArrayLike(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case *values.Array:
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func serializedEqual(a, b any) bool {
	bsA, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bsB, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(bsA, bsB)
}

func strictEqual(a, b any) bool {
	va, okA := a.(values.Value)
	vb, okB := b.(values.Value)
	if okA && okB {
		return values.StrictEqual(va, vb)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	typeA := reflect.TypeOf(a)
	if typeA != reflect.TypeOf(b) || !typeA.Comparable() {
		return false
	}
	return a == b
}
