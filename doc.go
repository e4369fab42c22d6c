// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipe implements a streaming composition library built on a
// five-variant step machine: HaveOutput, NeedInput, Done, PipeM, and
// Leftover. A Pipe[L, I, O, U, R] is either finished (Done), waiting to
// emit (HaveOutput), waiting to receive (NeedInput), pending a host
// effect (PipeM), or returning an element to the input stream
// (Leftover). Source, Sink, and Conduit pin down the common shapes of
// that five-parameter family: a source has no real input, a sink has no
// output, and a conduit relates the two.
//
// Pipes compose two ways. Bind sequences one pipe after another's
// result, the way two functions compose through their return values.
// Fuse composes two pipes end to end, right-biased: the consumer (right)
// drives the producer (left) by asking for input only when it needs it,
// and a HaveOutput step's early-close finalizer runs exactly once if its
// value is never picked up by the next pull. FuseResume is the resumable
// variant used to connect the same producer to more than one consumer in
// turn, handing back whatever state (and leftover) the producer still
// holds once the consumer finishes.
//
// PipeM embeds an Eff[Pipe[...]] from the sibling package effect, which
// supplies the host effect context this package leaves abstract
// elsewhere: sequencing two computations, handling errors, or acquiring
// a resource all happen through that package's Cont/Bind/Bracket, not
// through anything defined here. RunPipe interprets a pipe whose input
// and output have both been eliminated (L = I = O = Void) down to its
// result, running every embedded effect along the way.
package pipe
