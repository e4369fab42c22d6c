// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"testing"

	"github.com/conduit-go/conduit/effect"
)

func TestReturnRun(t *testing.T) {
	got := effect.Run(effect.Return[int](42))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestRunWith(t *testing.T) {
	m := effect.Return[string, int](42)
	got := effect.RunWith(m, func(int) string { return "value" })
	if got != "value" {
		t.Fatalf("got %q, want %q", got, "value")
	}
}

func TestBindChain(t *testing.T) {
	m := effect.Return[int](5)
	n := effect.Bind(m, func(x int) effect.Cont[int, int] {
		return effect.Bind(effect.Return[int](x+1), func(y int) effect.Cont[int, int] {
			return effect.Return[int](y * 2)
		})
	})
	if got := effect.Run(n); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestMapThen(t *testing.T) {
	m := effect.Map(effect.Return[int](3), func(x int) int { return x * x })
	if got := effect.Run(m); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	n := effect.Then(effect.Return[int](1), effect.Return[int](2))
	if got := effect.Run(n); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestSuspend(t *testing.T) {
	m := effect.Suspend(func(k func(int) int) int { return k(7) + 1 })
	if got := effect.Run(m); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}
