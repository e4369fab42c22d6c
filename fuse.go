// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// Fuse composes left and right end-to-end: right is driven until it
// needs input, at which point left is advanced to supply it. Neither
// side may carry leftovers (L = Void on both), which the signature
// enforces statically; a conduit that does carry leftovers must first go
// through InjectLeftovers or AnyLeftovers.
//
// Right is driven preferentially (right-biased): left is only ever
// advanced in response to right's NeedInput, mirroring how a consumer
// pulls from its producer rather than a producer pushing into its
// consumer.
func Fuse[A, B, C, R0, R1, R2 any](
	left Pipe[Void, A, B, R0, R1],
	right Pipe[Void, B, C, R1, R2],
) Pipe[Void, A, C, R0, R2] {
	return fuseStep(noopClose(), left, right)
}

// fuseStep is Fuse's driver. final is the action pending to release left
// if it is abandoned without delivering another element; each time left
// accepts a pull, final is replaced by the new output's own finalizer
// rather than composed with it, because the previous output has by then
// already been consumed and its finalizer obligation has lapsed.
func fuseStep[A, B, C, R0, R1, R2 any](
	final Eff[struct{}],
	left Pipe[Void, A, B, R0, R1],
	right Pipe[Void, B, C, R1, R2],
) Pipe[Void, A, C, R0, R2] {
	switch r := right.(type) {
	case Done[Void, B, C, R1, R2]:
		return PipeM[Void, A, C, R0, R2]{
			Effect: effect.Then(final, effect.Return[effect.Resumed, Pipe[Void, A, C, R0, R2]](Done[Void, A, C, R0, R2]{Result: r.Result})),
		}
	case HaveOutput[Void, B, C, R1, R2]:
		return HaveOutput[Void, A, C, R0, R2]{
			Next:         fuseStep(final, left, r.Next),
			OnEarlyClose: r.OnEarlyClose,
			Value:        r.Value,
		}
	case PipeM[Void, B, C, R1, R2]:
		return PipeM[Void, A, C, R0, R2]{
			Effect: effect.Map(r.Effect, func(rp Pipe[Void, B, C, R1, R2]) Pipe[Void, A, C, R0, R2] {
				return fuseStep(final, left, rp)
			}),
		}
	case Leftover[Void, B, C, R1, R2]:
		return absurd[Pipe[Void, A, C, R0, R2]](r.Pushed)
	case NeedInput[Void, B, C, R1, R2]:
		switch l := left.(type) {
		case Done[Void, A, B, R0, R1]:
			// The previous output's finalizer has already lapsed; this
			// is a fresh fusion of an exhausted left against whatever
			// right does once told upstream is done.
			return Fuse(Done[Void, A, B, R0, R1]{Result: l.Result}, r.OnUpstreamDone(l.Result))
		case HaveOutput[Void, A, B, R0, R1]:
			return fuseStep(l.OnEarlyClose, l.Next, r.OnInput(l.Value))
		case PipeM[Void, A, B, R0, R1]:
			return PipeM[Void, A, C, R0, R2]{
				Effect: effect.Map(l.Effect, func(lp Pipe[Void, A, B, R0, R1]) Pipe[Void, A, C, R0, R2] {
					return fuseStep(final, lp, right)
				}),
			}
		case NeedInput[Void, A, B, R0, R1]:
			return NeedInput[Void, A, C, R0, R2]{
				OnInput: func(a A) Pipe[Void, A, C, R0, R2] {
					return fuseStep(final, l.OnInput(a), right)
				},
				OnUpstreamDone: func(r0 R0) Pipe[Void, A, C, R0, R2] {
					return fuseStep(final, l.OnUpstreamDone(r0), right)
				},
			}
		case Leftover[Void, A, B, R0, R1]:
			return absurd[Pipe[Void, A, C, R0, R2]](l.Pushed)
		default:
			panic("pipe: Fuse: unknown step variant")
		}
	default:
		panic("pipe: Fuse: unknown step variant")
	}
}

// ResumablePipe bundles a not-yet-exhausted source-shaped pipe together
// with the finalizer pending for its most recently delivered (but not yet
// abandoned) output, so it can be handed to another FuseResume call
// later without losing that finalizer obligation. Its shape mirrors
// Source, but its leftover type matches its own output (E), which is
// what lets a downstream FuseResume push an unused element straight back
// onto it.
type ResumablePipe[E any] struct {
	Left      Pipe[E, Void, E, struct{}, struct{}]
	LeftFinal Eff[struct{}]
}

// FuseResume drives right to completion against a resumable left, like
// Fuse, but returns left's remaining state instead of discarding it, so
// the caller can resume pulling from it in a later fusion — for example,
// reading a bounded number of elements from a shared source, handing
// control back, then connecting the same source to a different sink for
// the next batch. Unlike Fuse, right may carry its own leftovers: one
// pushed back is turned into a synthesized output on left, to be
// re-delivered on the next pull. A leftover already sitting on left is
// stripped before recursing and re-attached to the result once right
// settles.
func FuseResume[E, R2 any](
	rp ResumablePipe[E],
	right Pipe[E, E, Void, struct{}, R2],
) Eff[effect.Pair[ResumablePipe[E], R2]] {
	switch r := right.(type) {
	case Done[E, E, Void, struct{}, R2]:
		return effect.Return[effect.Resumed](effect.Pair[ResumablePipe[E], R2]{Fst: rp, Snd: r.Result})
	case HaveOutput[E, E, Void, struct{}, R2]:
		// right's output type is Void: this step can never actually be
		// constructed by a well-formed Sink.
		return absurd[Eff[effect.Pair[ResumablePipe[E], R2]]](r.Value)
	case PipeM[E, E, Void, struct{}, R2]:
		return effect.Bind(r.Effect, func(next Pipe[E, E, Void, struct{}, R2]) Eff[effect.Pair[ResumablePipe[E], R2]] {
			return FuseResume(rp, next)
		})
	case Leftover[E, E, Void, struct{}, R2]:
		newLeft := HaveOutput[E, Void, E, struct{}, struct{}]{Next: rp.Left, OnEarlyClose: rp.LeftFinal, Value: r.Pushed}
		return FuseResume(ResumablePipe[E]{Left: newLeft, LeftFinal: rp.LeftFinal}, r.Next)
	case NeedInput[E, E, Void, struct{}, R2]:
		switch l := rp.Left.(type) {
		case Leftover[E, Void, E, struct{}, struct{}]:
			return effect.Map(
				FuseResume(ResumablePipe[E]{Left: l.Next, LeftFinal: rp.LeftFinal}, right),
				func(pair effect.Pair[ResumablePipe[E], R2]) effect.Pair[ResumablePipe[E], R2] {
					pair.Fst.Left = Leftover[E, Void, E, struct{}, struct{}]{Next: pair.Fst.Left, Pushed: l.Pushed}
					return pair
				},
			)
		case Done[E, Void, E, struct{}, struct{}]:
			drained := NoInput[E, E, Void, struct{}, R2](struct{}{}, r.OnUpstreamDone(struct{}{}))
			return FuseResume(ResumablePipe[E]{
				Left:      Done[E, Void, E, struct{}, struct{}]{Result: struct{}{}},
				LeftFinal: rp.LeftFinal,
			}, drained)
		case HaveOutput[E, Void, E, struct{}, struct{}]:
			return FuseResume(ResumablePipe[E]{Left: l.Next, LeftFinal: l.OnEarlyClose}, r.OnInput(l.Value))
		case PipeM[E, Void, E, struct{}, struct{}]:
			return effect.Bind(l.Effect, func(lp Pipe[E, Void, E, struct{}, struct{}]) Eff[effect.Pair[ResumablePipe[E], R2]] {
				return FuseResume(ResumablePipe[E]{Left: lp, LeftFinal: rp.LeftFinal}, right)
			})
		case NeedInput[E, Void, E, struct{}, struct{}]:
			// I = Void here, so OnInput can never be invoked meaningfully;
			// the only legal continuation is the one for upstream done.
			return FuseResume(ResumablePipe[E]{Left: l.OnUpstreamDone(struct{}{}), LeftFinal: rp.LeftFinal}, right)
		default:
			panic("pipe: FuseResume: unknown step variant")
		}
	default:
		panic("pipe: FuseResume: unknown step variant")
	}
}
