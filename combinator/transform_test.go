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

func runClosedSlice(p pipe.Pipe[pipe.Void, pipe.Void, pipe.Void, struct{}, []int]) []int {
	var out []int
	effect.RunWith(pipe.RunPipe(p), func(r []int) effect.Resumed { out = r; return nil })
	return out
}

func sourceOf(xs []int) pipe.Source[int, struct{}] {
	return pipe.SourceList[pipe.Void, pipe.Void, int, struct{}](xs)
}

func TestMapDoublesEveryElement(t *testing.T) {
	source := sourceOf([]int{1, 2, 3})
	doubled := pipe.InjectLeftovers[pipe.Void](combinator.Map(func(x int) int { return x * 2 }))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(pipe.Fuse(source, doubled), sink))

	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestFilterKeepsOnlyMatchingElements(t *testing.T) {
	source := sourceOf([]int{1, 2, 3, 4, 5})
	even := pipe.InjectLeftovers[pipe.Void](combinator.Filter(func(x int) bool { return x%2 == 0 }))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(pipe.Fuse(source, even), sink))

	assert.Equal(t, []int{2, 4}, got)
}

func TestTakeStopsAfterNElements(t *testing.T) {
	source := sourceOf([]int{1, 2, 3, 4, 5})
	take3 := pipe.InjectLeftovers[pipe.Void](combinator.Take[int](3))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(pipe.Fuse(source, take3), sink))

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestTakeOfZeroConsumesNothing(t *testing.T) {
	source := sourceOf([]int{1, 2, 3})
	take0 := pipe.InjectLeftovers[pipe.Void](combinator.Take[int](0))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(pipe.Fuse(source, take0), sink))

	assert.Empty(t, got)
}

func TestDropSkipsTheFirstNElements(t *testing.T) {
	source := sourceOf([]int{1, 2, 3, 4, 5})
	drop2 := pipe.InjectLeftovers[pipe.Void](combinator.Drop[int](2))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(pipe.Fuse(source, drop2), sink))

	assert.Equal(t, []int{3, 4, 5}, got)
}

func TestDropOfZeroIsIdentity(t *testing.T) {
	source := sourceOf([]int{1, 2, 3})
	drop0 := pipe.InjectLeftovers[pipe.Void](combinator.Drop[int](0))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(pipe.Fuse(source, drop0), sink))

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMapThenFilterThenTakeComposeLeftToRight(t *testing.T) {
	source := sourceOf([]int{1, 2, 3, 4, 5, 6, 7})
	tripled := pipe.InjectLeftovers[pipe.Void](combinator.Map(func(x int) int { return x * 3 }))
	divisibleByTwo := pipe.InjectLeftovers[pipe.Void](combinator.Filter(func(x int) bool { return x%2 == 0 }))
	take2 := pipe.InjectLeftovers[pipe.Void](combinator.Take[int](2))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())

	chained := pipe.Fuse(pipe.Fuse(pipe.Fuse(pipe.Fuse(source, tripled), divisibleByTwo), take2), sink)
	got := runClosedSlice(chained)

	assert.Equal(t, []int{6, 12}, got)
}
