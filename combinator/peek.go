// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combinator

import "github.com/conduit-go/conduit"

// Peek returns the next input element without consuming it: it awaits
// one, pushes it straight back as a leftover, and reports what it saw.
// Its leftover type is fixed to its own input type so InjectLeftovers can
// later fold it back into whatever consumes the resulting pipe.
func Peek[I, O, U any]() pipe.Pipe[I, I, O, U, pipe.Maybe[I]] {
	return pipe.Bind(pipe.Await[I, I, O, U](), func(m pipe.Maybe[I]) pipe.Pipe[I, I, O, U, pipe.Maybe[I]] {
		v, ok := m.Get()
		if !ok {
			return pipe.Return[I, I, O, U, pipe.Maybe[I]](pipe.None[I]())
		}
		return pipe.Bind(pipe.LeftoverP[I, I, O, U](v), func(struct{}) pipe.Pipe[I, I, O, U, pipe.Maybe[I]] {
			return pipe.Return[I, I, O, U, pipe.Maybe[I]](pipe.Some(v))
		})
	})
}
