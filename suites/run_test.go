package suites

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/realtype/asserts"
	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/modes"
	"github.com/reusee/realtype/rtconfigs"
)

func TestRun(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() asserts.Sink {
			return buf
		},
	).Call(func(
		run Run,
	) {
		if failures := run(t.Context()); failures != 0 {
			t.Fatalf("got %d failures:\n%s", failures, buf.String())
		}
	})

	out := buf.String()
	if !strings.HasPrefix(out, "# getType\n\n  [OK] Boolean\n\n  [OK] Number\n") {
		t.Fatalf("got %q", out)
	}
	if strings.Contains(out, "[FAIL]") {
		t.Fatalf("got %s", out)
	}
	if n := strings.Count(out, "[OK]"); n != 25 {
		t.Fatalf("got %d", n)
	}
	for _, block := range []string{
		"getType",
		"allItemsHaveTheSameType",
		"getTypesOfItems VS getRealTypesOfItems",
		"everyItemHasAUniqueRealType",
		"countRealTypes",
		"myTestAllAreNaN",
		"myTestAllAreFinite",
	} {
		if !strings.Contains(out, "# "+block+"\n") {
			t.Fatalf("no block %s", block)
		}
	}
	if strings.Contains(out, "# config cases") {
		t.Fatal("should not report config cases")
	}
}

func TestRunConfigCases(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() asserts.Sink {
			return buf
		},
		func() rtconfigs.ConfigFiles {
			return rtconfigs.ConfigFiles{
				"../rtconfigs/testdata/realtype.cue",
				"../rtconfigs/testdata/more.cue",
			}
		},
		func() rtconfigs.Color {
			return false
		},
	).Call(func(
		run Run,
	) {
		if failures := run(t.Context()); failures != 0 {
			t.Fatalf("got %d failures:\n%s", failures, buf.String())
		}
	})

	out := buf.String()
	for _, line := range []string{
		"# config cases\n",
		"  [OK] set literal\n",
		"  [OK] division by zero\n",
		"  [OK] boxed string\n",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("no %q in %s", line, out)
		}
	}
}

func TestConfigCases(t *testing.T) {
	buf := new(bytes.Buffer)
	r := asserts.NewReporter(buf, nil, false)
	ConfigCases(r, rtconfigs.Cases{
		{Label: "any", Expr: "[]"},
		{Label: "mixed comparison", Expr: "String('x') == 'x'", Real: "boolean"},
		{Label: "mismatch", Expr: "'x'", Real: "number"},
		{Label: "broken", Expr: "1 +", Real: "number"},
	})
	if r.Passes() != 2 || r.Failures() != 2 {
		t.Fatalf("got %d %d", r.Passes(), r.Failures())
	}
	out := buf.String()
	if !strings.Contains(out, "  [FAIL] mismatch\n  Expected:\n  [ 'string', 'number' ]\n  Actual:\n  [ 'string', 'string' ]\n") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "  [FAIL] broken\n  Expected:\n  [ '', 'number' ]\n  Actual:\n  eval \"1 +\": ") {
		t.Fatalf("got %s", out)
	}
}

func TestKnownTypes(t *testing.T) {
	items := KnownTypes()
	if len(items) != 14 {
		t.Fatalf("got %d", len(items))
	}
	if !classify.EveryItemHasAUniqueRealType(items) {
		t.Fatal("should be unique")
	}
	counts := classify.CountRealTypes(items)
	if len(counts) != len(items) {
		t.Fatalf("got %v", counts)
	}
}
