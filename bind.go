// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// Return lifts a pure value into a pipe that terminates immediately,
// without touching L, I, O, or U.
func Return[L, I, O, U, R any](r R) Pipe[L, I, O, U, R] {
	return Done[L, I, O, U, R]{Result: r}
}

// Bind sequences p with k, which receives p's eventual result and
// produces the pipe to run next. This is the monadic bind of the step
// machine, threading k through every constructor while leaving HaveOutput's
// OnEarlyClose and Leftover's ordering untouched.
//
// Because Bind dispatches on Done before any other variant, sequencing a
// primitive whose continuation is already Done (Yield, LeftoverP, the
// resolved branch of Await) collapses that Done directly to k's result
// with no intervening indirection.
func Bind[L, I, O, U, R1, R2 any](p Pipe[L, I, O, U, R1], k func(R1) Pipe[L, I, O, U, R2]) Pipe[L, I, O, U, R2] {
	switch s := p.(type) {
	case Done[L, I, O, U, R1]:
		return k(s.Result)
	case HaveOutput[L, I, O, U, R1]:
		return HaveOutput[L, I, O, U, R2]{
			Next:         Bind(s.Next, k),
			OnEarlyClose: s.OnEarlyClose,
			Value:        s.Value,
		}
	case NeedInput[L, I, O, U, R1]:
		return NeedInput[L, I, O, U, R2]{
			OnInput:        func(i I) Pipe[L, I, O, U, R2] { return Bind(s.OnInput(i), k) },
			OnUpstreamDone: func(u U) Pipe[L, I, O, U, R2] { return Bind(s.OnUpstreamDone(u), k) },
		}
	case PipeM[L, I, O, U, R1]:
		return PipeM[L, I, O, U, R2]{
			Effect: effect.Map(s.Effect, func(next Pipe[L, I, O, U, R1]) Pipe[L, I, O, U, R2] {
				return Bind(next, k)
			}),
		}
	case Leftover[L, I, O, U, R1]:
		return Leftover[L, I, O, U, R2]{Next: Bind(s.Next, k), Pushed: s.Pushed}
	default:
		panic("pipe: Bind: unknown step variant")
	}
}

// Then sequences p and q, discarding p's result. Useful for pipes run
// purely for their output or side effects.
func Then[L, I, O, U, R1, R2 any](p Pipe[L, I, O, U, R1], q Pipe[L, I, O, U, R2]) Pipe[L, I, O, U, R2] {
	return Bind(p, func(R1) Pipe[L, I, O, U, R2] { return q })
}

// MapResult transforms a pipe's eventual result without touching any
// step in between.
func MapResult[L, I, O, U, R1, R2 any](p Pipe[L, I, O, U, R1], f func(R1) R2) Pipe[L, I, O, U, R2] {
	return Bind(p, func(r R1) Pipe[L, I, O, U, R2] { return Return[L, I, O, U, R2](f(r)) })
}
