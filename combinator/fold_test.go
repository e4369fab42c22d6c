// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pipe "github.com/conduit-go/conduit"
	"github.com/conduit-go/conduit/combinator"
	"github.com/conduit-go/conduit/effect"
)

func runClosedInt(p pipe.Pipe[pipe.Void, pipe.Void, pipe.Void, struct{}, int]) int {
	var out int
	effect.RunWith(pipe.RunPipe(p), func(r int) effect.Resumed { out = r; return nil })
	return out
}

func TestFoldSumsAllElements(t *testing.T) {
	source := sourceOf([]int{1, 2, 3, 4})
	sum := pipe.InjectLeftovers[pipe.Void](combinator.Fold[int, int](0, func(acc, x int) int { return acc + x }))
	got := runClosedInt(pipe.Fuse(source, sum))

	assert.Equal(t, 10, got)
}

func TestFoldOnEmptySourceReturnsInitial(t *testing.T) {
	source := sourceOf(nil)
	sum := pipe.InjectLeftovers[pipe.Void](combinator.Fold[int, int](7, func(acc, x int) int { return acc + x }))
	got := runClosedInt(pipe.Fuse(source, sum))

	assert.Equal(t, 7, got)
}

func TestConsumeAllPreservesOrder(t *testing.T) {
	source := sourceOf([]int{5, 3, 1, 4})
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(source, sink))

	assert.Equal(t, []int{5, 3, 1, 4}, got)
}
