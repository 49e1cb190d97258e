package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/realtype/asserts"
	"github.com/reusee/realtype/modes"
	"github.com/reusee/realtype/rtconfigs"
)

func TestClassifyAll(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := classifyAll(buf, []string{
		"String('x')",
		"div(1, 0)",
		"[]",
	}); err != nil {
		t.Fatal(err)
	}
	expected := "String('x')\tobject\tstring\n" +
		"div(1, 0)\tnumber\tInfinity\n" +
		"[]\tobject\tarray\n"
	if got := buf.String(); got != expected {
		t.Fatalf("got %q", got)
	}

	if err := classifyAll(buf, []string{"nope"}); err == nil {
		t.Fatal("should fail")
	}
}

func TestRunSuite(t *testing.T) {
	buf := new(bytes.Buffer)
	scope := dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() asserts.Sink {
			return buf
		},
	)
	if code := run(scope); code != 0 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(buf.String(), "# myTestAllAreFinite") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestRunBadConfig(t *testing.T) {
	for _, path := range []string{
		"../../configs/bad.cue",
		"../../configs/non_concrete.cue",
		"../../configs/missing_expr.cue",
	} {
		t.Run(path, func(t *testing.T) {
			scope := dscope.New(new(Module), modes.ForTest(t)).Fork(
				func() rtconfigs.ConfigFiles {
					return rtconfigs.ConfigFiles{path}
				},
			)
			if code := run(scope); code != 1 {
				t.Fatalf("got %d", code)
			}
		})
	}
}

func TestClassifyMixedComparison(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := classifyAll(buf, []string{"String('x') == 'x'"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "String('x') == 'x'\tboolean\tboolean\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRunStrict(t *testing.T) {
	buf := new(bytes.Buffer)
	scope := dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() asserts.Sink {
			return buf
		},
		func() rtconfigs.Cases {
			return rtconfigs.Cases{
				{Label: "wrong", Expr: "1", Real: "string"},
			}
		},
		func() rtconfigs.StrictExit {
			return true
		},
	)
	if code := run(scope); code != 1 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(buf.String(), "[FAIL] wrong") {
		t.Fatalf("got %s", buf.String())
	}
}
