// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// TransPipe lifts a natural transformation of the host effect into a
// transformation of pipes built over it, rewriting every PipeM's embedded
// effect with nat while leaving every other step untouched. Useful for
// re-interpreting a pipe's effects (e.g. adding a trace wrapper) without
// rebuilding the pipe's control flow.
func TransPipe[L, I, O, U, R any](nat func(Eff[Pipe[L, I, O, U, R]]) Eff[Pipe[L, I, O, U, R]], p Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] {
	switch s := p.(type) {
	case Done[L, I, O, U, R]:
		return s
	case HaveOutput[L, I, O, U, R]:
		return HaveOutput[L, I, O, U, R]{
			Next:         TransPipe(nat, s.Next),
			OnEarlyClose: s.OnEarlyClose,
			Value:        s.Value,
		}
	case NeedInput[L, I, O, U, R]:
		return NeedInput[L, I, O, U, R]{
			OnInput:        func(i I) Pipe[L, I, O, U, R] { return TransPipe(nat, s.OnInput(i)) },
			OnUpstreamDone: func(u U) Pipe[L, I, O, U, R] { return TransPipe(nat, s.OnUpstreamDone(u)) },
		}
	case PipeM[L, I, O, U, R]:
		return PipeM[L, I, O, U, R]{
			Effect: effect.Map(nat(s.Effect), func(next Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] {
				return TransPipe(nat, next)
			}),
		}
	case Leftover[L, I, O, U, R]:
		return Leftover[L, I, O, U, R]{Next: TransPipe(nat, s.Next), Pushed: s.Pushed}
	default:
		panic("pipe: TransPipe: unknown step variant")
	}
}

// MapOutput rewrites every output a pipe emits with f, without otherwise
// touching its control flow.
func MapOutput[L, I, O1, O2, U, R any](f func(O1) O2, p Pipe[L, I, O1, U, R]) Pipe[L, I, O2, U, R] {
	switch s := p.(type) {
	case Done[L, I, O1, U, R]:
		return Done[L, I, O2, U, R]{Result: s.Result}
	case HaveOutput[L, I, O1, U, R]:
		return HaveOutput[L, I, O2, U, R]{
			Next:         MapOutput(f, s.Next),
			OnEarlyClose: s.OnEarlyClose,
			Value:        f(s.Value),
		}
	case NeedInput[L, I, O1, U, R]:
		return NeedInput[L, I, O2, U, R]{
			OnInput:        func(i I) Pipe[L, I, O2, U, R] { return MapOutput(f, s.OnInput(i)) },
			OnUpstreamDone: func(u U) Pipe[L, I, O2, U, R] { return MapOutput(f, s.OnUpstreamDone(u)) },
		}
	case PipeM[L, I, O1, U, R]:
		return PipeM[L, I, O2, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[L, I, O1, U, R]) Pipe[L, I, O2, U, R] {
				return MapOutput(f, next)
			}),
		}
	case Leftover[L, I, O1, U, R]:
		return Leftover[L, I, O2, U, R]{Next: MapOutput(f, s.Next), Pushed: s.Pushed}
	default:
		panic("pipe: MapOutput: unknown step variant")
	}
}

// MapOutputMaybe is MapOutput for a possibly-filtering transformation:
// an output for which f returns None is dropped rather than emitted, and
// its OnEarlyClose is dropped with it without running.
func MapOutputMaybe[L, I, O1, O2, U, R any](f func(O1) Maybe[O2], p Pipe[L, I, O1, U, R]) Pipe[L, I, O2, U, R] {
	switch s := p.(type) {
	case Done[L, I, O1, U, R]:
		return Done[L, I, O2, U, R]{Result: s.Result}
	case HaveOutput[L, I, O1, U, R]:
		next := MapOutputMaybe(f, s.Next)
		if v, ok := f(s.Value).Get(); ok {
			return HaveOutput[L, I, O2, U, R]{Next: next, OnEarlyClose: s.OnEarlyClose, Value: v}
		}
		return next
	case NeedInput[L, I, O1, U, R]:
		return NeedInput[L, I, O2, U, R]{
			OnInput:        func(i I) Pipe[L, I, O2, U, R] { return MapOutputMaybe(f, s.OnInput(i)) },
			OnUpstreamDone: func(u U) Pipe[L, I, O2, U, R] { return MapOutputMaybe(f, s.OnUpstreamDone(u)) },
		}
	case PipeM[L, I, O1, U, R]:
		return PipeM[L, I, O2, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[L, I, O1, U, R]) Pipe[L, I, O2, U, R] {
				return MapOutputMaybe(f, next)
			}),
		}
	case Leftover[L, I, O1, U, R]:
		return Leftover[L, I, O2, U, R]{Next: MapOutputMaybe(f, s.Next), Pushed: s.Pushed}
	default:
		panic("pipe: MapOutputMaybe: unknown step variant")
	}
}

// MapInput rewrites every input element this pipe consumes with f before
// delivering it. Leftovers the pipe pushes back keep their type L1 and are
// passed through unchanged: g is never called, so a leftover is not
// converted back to the I2 representation and none is dropped.
func MapInput[L1, I1, I2, O, U, R any](f func(I2) I1, g func(I1) L1, p Pipe[L1, I1, O, U, R]) Pipe[L1, I2, O, U, R] {
	switch s := p.(type) {
	case Done[L1, I1, O, U, R]:
		return Done[L1, I2, O, U, R]{Result: s.Result}
	case HaveOutput[L1, I1, O, U, R]:
		return HaveOutput[L1, I2, O, U, R]{
			Next:         MapInput(f, g, s.Next),
			OnEarlyClose: s.OnEarlyClose,
			Value:        s.Value,
		}
	case NeedInput[L1, I1, O, U, R]:
		return NeedInput[L1, I2, O, U, R]{
			OnInput:        func(i2 I2) Pipe[L1, I2, O, U, R] { return MapInput(f, g, s.OnInput(f(i2))) },
			OnUpstreamDone: func(u U) Pipe[L1, I2, O, U, R] { return MapInput(f, g, s.OnUpstreamDone(u)) },
		}
	case PipeM[L1, I1, O, U, R]:
		return PipeM[L1, I2, O, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[L1, I1, O, U, R]) Pipe[L1, I2, O, U, R] {
				return MapInput(f, g, next)
			}),
		}
	case Leftover[L1, I1, O, U, R]:
		return Leftover[L1, I2, O, U, R]{Next: MapInput(f, g, s.Next), Pushed: s.Pushed}
	default:
		panic("pipe: MapInput: unknown step variant")
	}
}

// AddCleanup registers a finalizer to run when p's current leading output
// is abandoned, composing with (rather than replacing) any finalizer that
// output already carries. f receives whether the pipe ran to completion
// (true on Done) so a caller can distinguish a clean finish from an
// early close.
func AddCleanup[L, I, O, U, R any](f func(bool) Eff[struct{}], p Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] {
	switch s := p.(type) {
	case Done[L, I, O, U, R]:
		return PipeM[L, I, O, U, R]{
			Effect: effect.Bind(effect.Return[effect.Resumed](true), func(completed bool) Eff[Pipe[L, I, O, U, R]] {
				return effect.Map(f(completed), func(struct{}) Pipe[L, I, O, U, R] { return s })
			}),
		}
	case HaveOutput[L, I, O, U, R]:
		return HaveOutput[L, I, O, U, R]{
			Next: AddCleanup(f, s.Next),
			OnEarlyClose: effect.Bind(s.OnEarlyClose, func(struct{}) Eff[struct{}] { return f(false) }),
			Value: s.Value,
		}
	case NeedInput[L, I, O, U, R]:
		return NeedInput[L, I, O, U, R]{
			OnInput:        func(i I) Pipe[L, I, O, U, R] { return AddCleanup(f, s.OnInput(i)) },
			OnUpstreamDone: func(u U) Pipe[L, I, O, U, R] { return AddCleanup(f, s.OnUpstreamDone(u)) },
		}
	case PipeM[L, I, O, U, R]:
		return PipeM[L, I, O, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] {
				return AddCleanup(f, next)
			}),
		}
	case Leftover[L, I, O, U, R]:
		return Leftover[L, I, O, U, R]{Next: AddCleanup(f, s.Next), Pushed: s.Pushed}
	default:
		panic("pipe: AddCleanup: unknown step variant")
	}
}

// SinkToPipe re-tags a Sink's Void output type to any output type O,
// which is always safe: a Sink's HaveOutput case is unreachable (its
// output type is already Void) so the only real work is relabeling.
func SinkToPipe[I, O, R any](s Sink[I, R]) Pipe[I, I, O, struct{}, R] {
	switch v := s.(type) {
	case Done[I, I, Void, struct{}, R]:
		return Done[I, I, O, struct{}, R]{Result: v.Result}
	case HaveOutput[I, I, Void, struct{}, R]:
		return absurd[Pipe[I, I, O, struct{}, R]](v.Value)
	case NeedInput[I, I, Void, struct{}, R]:
		return NeedInput[I, I, O, struct{}, R]{
			OnInput:        func(i I) Pipe[I, I, O, struct{}, R] { return SinkToPipe[I, O, R](v.OnInput(i)) },
			OnUpstreamDone: func(u struct{}) Pipe[I, I, O, struct{}, R] { return SinkToPipe[I, O, R](v.OnUpstreamDone(u)) },
		}
	case PipeM[I, I, Void, struct{}, R]:
		return PipeM[I, I, O, struct{}, R]{
			Effect: effect.Map(v.Effect, func(next Sink[I, R]) Pipe[I, I, O, struct{}, R] {
				return SinkToPipe[I, O, R](next)
			}),
		}
	case Leftover[I, I, Void, struct{}, R]:
		return Leftover[I, I, O, struct{}, R]{Next: SinkToPipe[I, O, R](v.Next), Pushed: v.Pushed}
	default:
		panic("pipe: SinkToPipe: unknown step variant")
	}
}

// PipePush delivers a single input element to a pipe by driving it
// exactly as NeedInput's OnInput would, running any PipeM effects
// encountered first. It replays a buffered element through a pipe that
// has not yet dispatched on the next NeedInput; FuseResume does not use
// it, and re-queues right's leftovers as outputs on left instead.
func PipePush[L, I, O, U, R any](i I, p Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] {
	switch s := p.(type) {
	case NeedInput[L, I, O, U, R]:
		return s.OnInput(i)
	case PipeM[L, I, O, U, R]:
		return PipeM[L, I, O, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] {
				return PipePush(i, next)
			}),
		}
	case HaveOutput[L, I, O, U, R]:
		return HaveOutput[L, I, O, U, R]{Next: PipePush(i, s.Next), OnEarlyClose: s.OnEarlyClose, Value: s.Value}
	case Leftover[L, I, O, U, R]:
		return Leftover[L, I, O, U, R]{Next: PipePush(i, s.Next), Pushed: s.Pushed}
	case Done[L, I, O, U, R]:
		// p has already finished and never asked for more input; the
		// pushed element has nowhere to go.
		return s
	default:
		panic("pipe: PipePush: unknown step variant")
	}
}

// NoInput tells every subsequent NeedInput in p that upstream has already
// finished with result u, walking past every other step unchanged.
//
// Its Leftover case intentionally drops the pushed-back value rather than
// preserving it: there is no upstream left to hand it to, and Leftover
// only has meaning relative to a consumer still able to observe it. This
// is asymmetric with InjectLeftovers, which re-delivers every leftover
// instead of discarding it; the asymmetry is deliberate, not an oversight
// (see the design notes for why both behaviors are kept as-is).
func NoInput[L, I, O, U, R any](u U, p Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] {
	switch s := p.(type) {
	case Done[L, I, O, U, R]:
		return s
	case HaveOutput[L, I, O, U, R]:
		return HaveOutput[L, I, O, U, R]{Next: NoInput(u, s.Next), OnEarlyClose: s.OnEarlyClose, Value: s.Value}
	case PipeM[L, I, O, U, R]:
		return PipeM[L, I, O, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[L, I, O, U, R]) Pipe[L, I, O, U, R] { return NoInput(u, next) }),
		}
	case NeedInput[L, I, O, U, R]:
		return NoInput(u, s.OnUpstreamDone(u))
	case Leftover[L, I, O, U, R]:
		return NoInput(u, s.Next)
	default:
		panic("pipe: NoInput: unknown step variant")
	}
}
