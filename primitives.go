// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// noopClose is the finalizer attached to output that needs no cleanup.
func noopClose() Eff[struct{}] {
	return effect.Return[effect.Resumed](struct{}{})
}

// Yield emits value downstream with no early-close obligation.
func Yield[L, I, O, U any](value O) Pipe[L, I, O, U, struct{}] {
	return HaveOutput[L, I, O, U, struct{}]{
		Next:         Done[L, I, O, U, struct{}]{},
		OnEarlyClose: noopClose(),
		Value:        value,
	}
}

// YieldOr emits value downstream, running onEarlyClose exactly once if
// the emitted value is abandoned rather than resumed past.
func YieldOr[L, I, O, U any](value O, onEarlyClose Eff[struct{}]) Pipe[L, I, O, U, struct{}] {
	return HaveOutput[L, I, O, U, struct{}]{
		Next:         Done[L, I, O, U, struct{}]{},
		OnEarlyClose: onEarlyClose,
		Value:        value,
	}
}

// Await requests one input element, returning Some(element) or None once
// upstream has terminated.
func Await[L, I, O, U any]() Pipe[L, I, O, U, Maybe[I]] {
	return NeedInput[L, I, O, U, Maybe[I]]{
		OnInput: func(i I) Pipe[L, I, O, U, Maybe[I]] {
			return Done[L, I, O, U, Maybe[I]]{Result: Some(i)}
		},
		OnUpstreamDone: func(U) Pipe[L, I, O, U, Maybe[I]] {
			return Done[L, I, O, U, Maybe[I]]{Result: None[I]()}
		},
	}
}

// AwaitE is Await without discarding upstream's result: it distinguishes
// "upstream exhausted with u" from "another input arrived" by returning
// an Either rather than collapsing the former to None.
func AwaitE[L, I, O, U any]() Pipe[L, I, O, U, effect.Either[U, I]] {
	return NeedInput[L, I, O, U, effect.Either[U, I]]{
		OnInput: func(i I) Pipe[L, I, O, U, effect.Either[U, I]] {
			return Done[L, I, O, U, effect.Either[U, I]]{Result: effect.Right[U, I](i)}
		},
		OnUpstreamDone: func(u U) Pipe[L, I, O, U, effect.Either[U, I]] {
			return Done[L, I, O, U, effect.Either[U, I]]{Result: effect.Left[U, I](u)}
		},
	}
}

// LeftoverP returns l to the input stream for the next consumer to see.
func LeftoverP[L, I, O, U any](l L) Pipe[L, I, O, U, struct{}] {
	return Leftover[L, I, O, U, struct{}]{Next: Done[L, I, O, U, struct{}]{}, Pushed: l}
}

// IdP repeatedly passes every input element through unchanged, yielding
// upstream's final result once input is exhausted.
func IdP[A, U any]() Pipe[A, A, A, U, U] {
	return NeedInput[A, A, A, U, U]{
		OnInput: func(a A) Pipe[A, A, A, U, U] {
			return HaveOutput[A, A, A, U, U]{Next: IdP[A, U](), OnEarlyClose: noopClose(), Value: a}
		},
		OnUpstreamDone: func(u U) Pipe[A, A, A, U, U] { return Done[A, A, A, U, U]{Result: u} },
	}
}

// HasInput peeks at the input stream without consuming it: true if
// another element is available, false if upstream is exhausted. Any
// peeked element is pushed back as a leftover so it is still delivered to
// whoever awaits next.
func HasInput[I, O, U any]() Pipe[I, I, O, U, bool] {
	return NeedInput[I, I, O, U, bool]{
		OnInput: func(i I) Pipe[I, I, O, U, bool] {
			return Leftover[I, I, O, U, bool]{Next: Done[I, I, O, U, bool]{Result: true}, Pushed: i}
		},
		OnUpstreamDone: func(U) Pipe[I, I, O, U, bool] { return Done[I, I, O, U, bool]{Result: false} },
	}
}

// SourceList folds xs into successive HaveOutput steps terminated by
// Done, in order.
func SourceList[L, I, O, U any](xs []O) Pipe[L, I, O, U, struct{}] {
	if len(xs) == 0 {
		return Done[L, I, O, U, struct{}]{}
	}
	return HaveOutput[L, I, O, U, struct{}]{
		Next:         SourceList[L, I, O, U](xs[1:]),
		OnEarlyClose: noopClose(),
		Value:        xs[0],
	}
}

// Build constructs a pipe from a Church-encoded producer: g receives a
// cons constructor and a terminator, and folds its own data into
// HaveOutput steps without first materializing a slice. This lets a
// caller generate elements (e.g. from a scanner or a counter) while
// reusing SourceList's step shape; cons receives an already built next
// step, so the whole chain is built before Build returns.
func Build[L, I, O, U any](g func(cons func(O, Pipe[L, I, O, U, struct{}]) Pipe[L, I, O, U, struct{}], nilp Pipe[L, I, O, U, struct{}]) Pipe[L, I, O, U, struct{}]) Pipe[L, I, O, U, struct{}] {
	cons := func(o O, next Pipe[L, I, O, U, struct{}]) Pipe[L, I, O, U, struct{}] {
		return HaveOutput[L, I, O, U, struct{}]{Next: next, OnEarlyClose: noopClose(), Value: o}
	}
	return g(cons, Done[L, I, O, U, struct{}]{})
}
