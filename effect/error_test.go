// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"testing"

	"github.com/conduit-go/conduit/effect"
)

func TestRunErrorSuccess(t *testing.T) {
	got := effect.RunError[string](effect.Return[effect.Resumed](9))
	v, ok := got.GetRight()
	if !ok || v != 9 {
		t.Fatalf("got %+v", got)
	}
}

func TestRunErrorThrow(t *testing.T) {
	got := effect.RunError[string, int](effect.ThrowError[string, int]("oops"))
	e, ok := got.GetLeft()
	if !ok || e != "oops" {
		t.Fatalf("got %+v", got)
	}
}

func TestCatchErrorRecovers(t *testing.T) {
	comp := effect.CatchError[string, int](
		effect.ThrowError[string, int]("oops"),
		func(e string) effect.Cont[effect.Resumed, int] {
			return effect.Return[effect.Resumed](len(e))
		},
	)
	got := effect.RunError[string, int](comp)
	v, ok := got.GetRight()
	if !ok || v != len("oops") {
		t.Fatalf("got %+v", got)
	}
}

func TestEitherCombinators(t *testing.T) {
	r := effect.Right[string, int](3)
	mapped := effect.MapEither(r, func(x int) int { return x * 2 })
	if v, ok := mapped.GetRight(); !ok || v != 6 {
		t.Fatalf("got %+v", mapped)
	}

	l := effect.Left[string, int]("bad")
	flat := effect.FlatMapEither(l, func(int) effect.Either[string, int] {
		t.Fatal("should not be called on Left")
		return effect.Right[string, int](0)
	})
	if !flat.IsLeft() {
		t.Fatalf("got %+v, want Left", flat)
	}

	relabelled := effect.MapLeftEither(l, func(e string) error { return errStr(e) })
	e, ok := relabelled.GetLeft()
	if !ok || e.Error() != "bad" {
		t.Fatalf("got %+v", relabelled)
	}
}

type errStr string

func (e errStr) Error() string { return string(e) }
