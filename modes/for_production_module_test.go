package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		injected *testing.T,
		mode Mode,
	) {
		if injected != nil {
			t.Fatal("production mode should not provide a test")
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})
}
