// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// Eff is the host effect context a Pipe performs its effects in: a
// continuation-passing computation from the effect package, fixed as the
// module's answer to the "host effect context M" that pipe.md leaves
// abstract. Any computation sequenced with effect.Bind/effect.Map, and
// any resource acquired with effect.Bracket, can appear inside a PipeM
// step or a HaveOutput/addCleanup finalizer.
type Eff[A any] = effect.Eff[A]

// Void is the uninhabited leftover/input/output type parameter used by
// Source, Sink, and the terminal Fuse operator to make certain step
// variants statically impossible. Go has no zero-variant enum, so Void is
// an ordinary empty struct; absurd documents and enforces, at the one
// place a Void value would need to produce something, that this code path
// is unreachable in a well-formed pipe.
type Void struct{}

// absurd eliminates an uninhabited Void value. Reaching it indicates a
// bug in this package, not in caller code: every constructor that could
// produce a Void-typed Leftover, input, or output is unreachable by
// construction.
func absurd[A any](Void) A {
	panic("pipe: absurd: observed a value of the uninhabited Void type")
}

// Pipe is the five-variant step machine at the center of this package:
// HaveOutput, NeedInput, Done, PipeM, and Leftover. Values are built by
// the primitives in this package, combined with Bind, fused with Fuse or
// FuseResume, and finally interpreted by RunPipe once both ends have been
// eliminated (I = O = Void).
//
// Type parameters:
//   - L: the leftover element type, pushed back by Leftover for the next
//     consumer of input to see first.
//   - I: the input element type received from upstream.
//   - O: the output element type emitted downstream.
//   - U: the upstream result type, delivered to NeedInput's OnUpstreamDone
//     when upstream terminates before this pipe is done.
//   - R: the result type produced on successful termination (Done).
type Pipe[L, I, O, U, R any] interface {
	pipe(stepOf[L, I, O, U, R])
}

// stepOf carries Pipe's type parameters into its marker method, so each
// instantiation of Pipe is a distinct type and a call can infer type
// arguments from a Pipe-typed value.
type stepOf[L, I, O, U, R any] struct{}

// HaveOutput emits Value downstream. OnEarlyClose is owned exclusively by
// this step: if the pipe holding it is abandoned instead of resuming
// Next, OnEarlyClose must run exactly once; if Next is reached, it must
// never run.
type HaveOutput[L, I, O, U, R any] struct {
	Next         Pipe[L, I, O, U, R]
	OnEarlyClose Eff[struct{}]
	Value        O
}

func (HaveOutput[L, I, O, U, R]) pipe(stepOf[L, I, O, U, R]) {}

// NeedInput requests one element of input. OnInput is invoked once an
// element is delivered; OnUpstreamDone is invoked with upstream's result
// once the input stream has ended, letting this pipe emit a final tail.
type NeedInput[L, I, O, U, R any] struct {
	OnInput        func(I) Pipe[L, I, O, U, R]
	OnUpstreamDone func(U) Pipe[L, I, O, U, R]
}

func (NeedInput[L, I, O, U, R]) pipe(stepOf[L, I, O, U, R]) {}

// Done is a pipe that has already terminated successfully with Result.
type Done[L, I, O, U, R any] struct {
	Result R
}

func (Done[L, I, O, U, R]) pipe(stepOf[L, I, O, U, R]) {}

// PipeM runs Effect in the host context to obtain the next step.
type PipeM[L, I, O, U, R any] struct {
	Effect Eff[Pipe[L, I, O, U, R]]
}

func (PipeM[L, I, O, U, R]) pipe(stepOf[L, I, O, U, R]) {}

// Leftover returns Pushed to the input stream: the next consumer of input
// sees Pushed before any element genuinely supplied by upstream.
type Leftover[L, I, O, U, R any] struct {
	Next   Pipe[L, I, O, U, R]
	Pushed L
}

func (Leftover[L, I, O, U, R]) pipe(stepOf[L, I, O, U, R]) {}

// Source is a pipe with no real input and no leftovers: I = L = Void,
// U = struct{}, and R is the source's own result type.
type Source[O, R any] = Pipe[Void, Void, O, struct{}, R]

// Sink is a pipe whose leftover type matches its input (it can push back
// unconsumed input) and which produces no output.
type Sink[I, R any] = Pipe[I, I, Void, struct{}, R]

// Conduit is a pipe whose leftover type matches its input, transforming
// I into O, with no result of its own beyond running until upstream ends.
type Conduit[I, O any] = Pipe[I, I, O, struct{}, struct{}]
