// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combinator

import "github.com/conduit-go/conduit"

// Fold consumes every input element, threading it through step starting
// from initial, and returns the final accumulator once upstream is
// exhausted.
func Fold[I, Acc any](initial Acc, step func(Acc, I) Acc) pipe.Sink[I, Acc] {
	return pipe.Bind(pipe.Await[I, I, pipe.Void, struct{}](), func(m pipe.Maybe[I]) pipe.Sink[I, Acc] {
		v, ok := m.Get()
		if !ok {
			return pipe.Return[I, I, pipe.Void, struct{}, Acc](initial)
		}
		return Fold[I, Acc](step(initial, v), step)
	})
}

// ConsumeAll collects every input element into a slice, in order.
func ConsumeAll[I any]() pipe.Sink[I, []I] {
	return Fold[I, []I](nil, func(acc []I, v I) []I { return append(acc, v) })
}
