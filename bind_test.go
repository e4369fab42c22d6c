// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe_test

import (
	"testing"

	pipe "github.com/conduit-go/conduit"
	"github.com/conduit-go/conduit/effect"
)

func runClosed(p pipe.Pipe[pipe.Void, pipe.Void, pipe.Void, struct{}, int]) int {
	return effect.RunWith(pipe.RunPipe(p), func(r int) effect.Resumed { return r }).(int)
}

func TestBindReturnIsLeftIdentity(t *testing.T) {
	k := func(x int) pipe.Pipe[pipe.Void, pipe.Void, pipe.Void, struct{}, int] {
		return pipe.Return[pipe.Void, pipe.Void, pipe.Void, struct{}, int](x + 1)
	}
	bound := pipe.Bind(pipe.Return[pipe.Void, pipe.Void, pipe.Void, struct{}, int](41), k)
	if got := runClosed(bound); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestBindDoneIsRightIdentity(t *testing.T) {
	p := pipe.Return[pipe.Void, pipe.Void, pipe.Void, struct{}, int](7)
	bound := pipe.Bind(p, func(x int) pipe.Pipe[pipe.Void, pipe.Void, pipe.Void, struct{}, int] {
		return pipe.Return[pipe.Void, pipe.Void, pipe.Void, struct{}, int](x)
	})
	if runClosed(bound) != runClosed(p) {
		t.Fatalf("bind-with-return-k changed the result")
	}
}

func TestBindCollapsesYieldToHaveOutput(t *testing.T) {
	p := pipe.Bind(pipe.Yield[pipe.Void, pipe.Void, int, struct{}](9), func(struct{}) pipe.Pipe[pipe.Void, pipe.Void, int, struct{}, struct{}] {
		return pipe.Return[pipe.Void, pipe.Void, int, struct{}, struct{}](struct{}{})
	})
	ho, ok := p.(pipe.HaveOutput[pipe.Void, pipe.Void, int, struct{}, struct{}])
	if !ok {
		t.Fatalf("expected HaveOutput, got %T", p)
	}
	if ho.Value != 9 {
		t.Fatalf("got value %d, want 9", ho.Value)
	}
	if _, ok := ho.Next.(pipe.Done[pipe.Void, pipe.Void, int, struct{}, struct{}]); !ok {
		t.Fatalf("expected Next to collapse to Done, got %T", ho.Next)
	}
}
