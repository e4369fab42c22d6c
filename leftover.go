// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// InjectLeftovers converts a pipe whose leftover type coincides with its
// input type into an equivalent pipe usable with any leftover type L, by
// feeding every Leftover step back into its continuation as though
// upstream had delivered it. This is how a Conduit built with LeftoverP
// gets fused next to something whose leftover type it knows nothing
// about: the leftovers are resolved internally before the boundary is
// crossed.
func InjectLeftovers[L, I, O, U, R any](p Pipe[I, I, O, U, R]) Pipe[L, I, O, U, R] {
	switch s := p.(type) {
	case Done[I, I, O, U, R]:
		return Done[L, I, O, U, R]{Result: s.Result}
	case HaveOutput[I, I, O, U, R]:
		return HaveOutput[L, I, O, U, R]{
			Next:         InjectLeftovers[L](s.Next),
			OnEarlyClose: s.OnEarlyClose,
			Value:        s.Value,
		}
	case NeedInput[I, I, O, U, R]:
		return NeedInput[L, I, O, U, R]{
			OnInput:        func(i I) Pipe[L, I, O, U, R] { return InjectLeftovers[L](s.OnInput(i)) },
			OnUpstreamDone: func(u U) Pipe[L, I, O, U, R] { return InjectLeftovers[L](s.OnUpstreamDone(u)) },
		}
	case PipeM[I, I, O, U, R]:
		return PipeM[L, I, O, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[I, I, O, U, R]) Pipe[L, I, O, U, R] {
				return InjectLeftovers[L](next)
			}),
		}
	case Leftover[I, I, O, U, R]:
		return InjectLeftovers[L](inject(s.Pushed, s.Next))
	default:
		panic("pipe: InjectLeftovers: unknown step variant")
	}
}

// inject feeds l into p as though it had arrived from upstream, resolving
// one Leftover application. It stays within p's own leftover-equals-input
// universe; InjectLeftovers converts to the caller's leftover type
// afterward.
func inject[I, O, U, R any](l I, p Pipe[I, I, O, U, R]) Pipe[I, I, O, U, R] {
	switch s := p.(type) {
	case Done[I, I, O, U, R]:
		return s
	case NeedInput[I, I, O, U, R]:
		// The upstream-done continuation is discarded: we do have input.
		return s.OnInput(l)
	case PipeM[I, I, O, U, R]:
		return PipeM[I, I, O, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[I, I, O, U, R]) Pipe[I, I, O, U, R] {
				return inject(l, next)
			}),
		}
	case HaveOutput[I, I, O, U, R]:
		return HaveOutput[I, I, O, U, R]{
			Next:         inject(l, s.Next),
			OnEarlyClose: s.OnEarlyClose,
			Value:        s.Value,
		}
	case Leftover[I, I, O, U, R]:
		reinjected := inject(s.Pushed, s.Next)
		if already, ok := reinjected.(Leftover[I, I, O, U, R]); ok {
			// The existing leftover already absorbed one unit of virtual
			// input; keep it rather than stacking another.
			return already
		}
		return Leftover[I, I, O, U, R]{Next: reinjected, Pushed: l}
	default:
		panic("pipe: inject: unknown step variant")
	}
}

// AnyLeftovers re-tags a pipe whose leftover type is the uninhabited Void
// to any leftover type L. Its Leftover case can never actually run: a
// Void-leftover pipe has no way to construct one.
func AnyLeftovers[L, I, O, U, R any](p Pipe[Void, I, O, U, R]) Pipe[L, I, O, U, R] {
	switch s := p.(type) {
	case Done[Void, I, O, U, R]:
		return Done[L, I, O, U, R]{Result: s.Result}
	case HaveOutput[Void, I, O, U, R]:
		return HaveOutput[L, I, O, U, R]{
			Next:         AnyLeftovers[L](s.Next),
			OnEarlyClose: s.OnEarlyClose,
			Value:        s.Value,
		}
	case NeedInput[Void, I, O, U, R]:
		return NeedInput[L, I, O, U, R]{
			OnInput:        func(i I) Pipe[L, I, O, U, R] { return AnyLeftovers[L](s.OnInput(i)) },
			OnUpstreamDone: func(u U) Pipe[L, I, O, U, R] { return AnyLeftovers[L](s.OnUpstreamDone(u)) },
		}
	case PipeM[Void, I, O, U, R]:
		return PipeM[L, I, O, U, R]{
			Effect: effect.Map(s.Effect, func(next Pipe[Void, I, O, U, R]) Pipe[L, I, O, U, R] {
				return AnyLeftovers[L](next)
			}),
		}
	case Leftover[Void, I, O, U, R]:
		return absurd[Pipe[L, I, O, U, R]](s.Pushed)
	default:
		panic("pipe: AnyLeftovers: unknown step variant")
	}
}
