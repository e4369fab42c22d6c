// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe_test

import (
	"reflect"
	"testing"

	pipe "github.com/conduit-go/conduit"
	"github.com/conduit-go/conduit/combinator"
	"github.com/conduit-go/conduit/effect"
)

// acquiredSource is a resource handle whose acquisition and release are
// both externally observable, standing in for a file handle or a socket.
type acquiredSource struct {
	values []int
}

func TestBracketPClosesExactlyOnceWhenConsumerStopsEarly(t *testing.T) {
	releases := 0
	acquire := effect.Return[effect.Resumed](acquiredSource{values: []int{1, 2, 3}})
	release := func(acquiredSource) pipe.Eff[struct{}] {
		releases++
		return effect.Return[effect.Resumed](struct{}{})
	}
	use := func(res acquiredSource) pipe.Source[int, struct{}] {
		return pipe.SourceList[pipe.Void, pipe.Void, int, struct{}](res.values)
	}
	bracketed := pipe.BracketP[pipe.Void, pipe.Void, int, struct{}, struct{}, acquiredSource](acquire, release, use)

	take1 := pipe.InjectLeftovers[pipe.Void](combinator.Take[int](1))
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(pipe.Fuse(bracketed, take1), sink))

	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("got %v, want [1]", got)
	}
	if releases != 1 {
		t.Fatalf("release ran %d times, want exactly 1", releases)
	}
}

func TestBracketPClosesExactlyOnceOnNaturalCompletion(t *testing.T) {
	releases := 0
	acquire := effect.Return[effect.Resumed](acquiredSource{values: []int{1, 2}})
	release := func(acquiredSource) pipe.Eff[struct{}] {
		releases++
		return effect.Return[effect.Resumed](struct{}{})
	}
	use := func(res acquiredSource) pipe.Source[int, struct{}] {
		return pipe.SourceList[pipe.Void, pipe.Void, int, struct{}](res.values)
	}
	bracketed := pipe.BracketP[pipe.Void, pipe.Void, int, struct{}, struct{}, acquiredSource](acquire, release, use)

	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	got := runClosedSlice(pipe.Fuse(bracketed, sink))

	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", got)
	}
	if releases != 1 {
		t.Fatalf("release ran %d times, want exactly 1", releases)
	}
}

// BracketP's own release hook is wired through AddCleanup, which walks
// the step structure (Done/HaveOutput/...); a host effect that throws
// from inside a PipeM's embedded Eff short-circuits past that structure
// entirely; effect.RunError's handler intercepts the Throw directly, so
// AddCleanup's wrapping continuation is never reached and release never
// runs. A use that needs exception safety around its own embedded effect
// must compose effect.OnError (or effect.Bracket) around that effect
// itself, as the next test shows, rather than relying on BracketP alone.
func TestBracketPReleaseDoesNotRunForAThrowInUsesOwnEffect(t *testing.T) {
	releases := 0
	acquire := effect.Return[effect.Resumed](acquiredSource{})
	release := func(acquiredSource) pipe.Eff[struct{}] {
		releases++
		return effect.Return[effect.Resumed](struct{}{})
	}
	use := func(acquiredSource) pipe.Source[int, struct{}] {
		return pipe.PipeM[pipe.Void, pipe.Void, int, struct{}, struct{}]{
			Effect: effect.ThrowError[string, pipe.Source[int, struct{}]]("disk read failed"),
		}
	}
	bracketed := pipe.BracketP[pipe.Void, pipe.Void, int, struct{}, struct{}, acquiredSource](acquire, release, use)
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	fused := pipe.Fuse(bracketed, sink)

	result := effect.RunError[string](pipe.RunPipe(fused))
	if !result.IsLeft() {
		t.Fatalf("got %+v, want Left", result)
	}
	if releases != 0 {
		t.Fatalf("release ran %d times, want 0 (BracketP alone does not see an embedded-effect throw)", releases)
	}
}

// failingSource emits a few good elements before its embedded effect
// raises partway through the stream, mirroring a source reading a file
// that fails after some bytes were already delivered downstream.
func failingSource(good []int, errMsg string) pipe.Source[int, struct{}] {
	if len(good) == 0 {
		return pipe.PipeM[pipe.Void, pipe.Void, int, struct{}, struct{}]{
			Effect: effect.ThrowError[string, pipe.Source[int, struct{}]](errMsg),
		}
	}
	v := good[0]
	return pipe.HaveOutput[pipe.Void, pipe.Void, int, struct{}, struct{}]{
		Next:         failingSource(good[1:], errMsg),
		OnEarlyClose: effect.Return[effect.Resumed](struct{}{}),
		Value:        v,
	}
}

// drainSource runs a source to its natural or exceptional end inside a
// single host effect, discarding whatever it yields along the way. This
// is what lets effect.OnError see a throw that happens after a source
// has already produced some output: OnError only intercepts a Throw
// happening within the single Eff it wraps, not one in a later PipeM
// step the pipe machinery would otherwise drive lazily on its own.
func drainSource(p pipe.Source[int, struct{}]) pipe.Eff[struct{}] {
	switch s := p.(type) {
	case pipe.Done[pipe.Void, pipe.Void, int, struct{}, struct{}]:
		return effect.Return[effect.Resumed](struct{}{})
	case pipe.HaveOutput[pipe.Void, pipe.Void, int, struct{}, struct{}]:
		return drainSource(s.Next)
	case pipe.PipeM[pipe.Void, pipe.Void, int, struct{}, struct{}]:
		return effect.Bind(s.Effect, func(next pipe.Source[int, struct{}]) pipe.Eff[struct{}] {
			return drainSource(next)
		})
	default:
		panic("drainSource: unreachable step for a well-formed source")
	}
}

// TestBracketPPropagatesFailingSourceWhileReleasingAboveIt exercises the
// scenario of a source that streams a few elements and then fails: the
// host exception from its embedded effect must still surface to the
// caller, and a cleanup wrapping the whole source (via effect.OnError,
// for the reasons the two tests above establish) must run exactly once
// despite the source having already produced output before failing.
func TestBracketPPropagatesFailingSourceWhileReleasingAboveIt(t *testing.T) {
	releases := 0
	acquire := effect.Return[effect.Resumed](acquiredSource{})
	release := func(acquiredSource) pipe.Eff[struct{}] {
		return effect.Return[effect.Resumed](struct{}{})
	}
	use := func(acquiredSource) pipe.Source[int, struct{}] {
		inner := failingSource([]int{1, 2}, "disk read failed")
		guarded := effect.OnError[string, struct{}](
			drainSource(inner),
			func(string) pipe.Eff[struct{}] {
				releases++
				return effect.Return[effect.Resumed](struct{}{})
			},
		)
		return pipe.PipeM[pipe.Void, pipe.Void, int, struct{}, struct{}]{
			Effect: effect.Map(guarded, func(struct{}) pipe.Source[int, struct{}] {
				return pipe.Return[pipe.Void, pipe.Void, int, struct{}, struct{}](struct{}{})
			}),
		}
	}
	bracketed := pipe.BracketP[pipe.Void, pipe.Void, int, struct{}, struct{}, acquiredSource](acquire, release, use)
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	fused := pipe.Fuse(bracketed, sink)

	result := effect.RunError[string](pipe.RunPipe(fused))
	if !result.IsLeft() {
		t.Fatalf("got %+v, want Left", result)
	}
	if releases != 1 {
		t.Fatalf("release ran %d times, want exactly 1", releases)
	}
}

func TestBracketPComposedWithOnErrorStillReleasesOnThrow(t *testing.T) {
	releases := 0
	acquire := effect.Return[effect.Resumed](acquiredSource{})
	release := func(acquiredSource) pipe.Eff[struct{}] {
		// BracketP's own hook; never reached by this scenario, kept only
		// to satisfy BracketP's signature.
		return effect.Return[effect.Resumed](struct{}{})
	}
	use := func(acquiredSource) pipe.Source[int, struct{}] {
		guarded := effect.OnError[string, pipe.Source[int, struct{}]](
			effect.ThrowError[string, pipe.Source[int, struct{}]]("disk read failed"),
			func(string) pipe.Eff[struct{}] {
				releases++
				return effect.Return[effect.Resumed](struct{}{})
			},
		)
		return pipe.PipeM[pipe.Void, pipe.Void, int, struct{}, struct{}]{Effect: guarded}
	}
	bracketed := pipe.BracketP[pipe.Void, pipe.Void, int, struct{}, struct{}, acquiredSource](acquire, release, use)
	sink := pipe.InjectLeftovers[pipe.Void](combinator.ConsumeAll[int]())
	fused := pipe.Fuse(bracketed, sink)

	result := effect.RunError[string](pipe.RunPipe(fused))
	if !result.IsLeft() {
		t.Fatalf("got %+v, want Left", result)
	}
	if releases == 0 {
		t.Fatalf("expected use's own effect.OnError cleanup to have run regardless of BracketP's release")
	}
}
