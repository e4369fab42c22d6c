// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combinator

import "github.com/conduit-go/conduit"

// Map applies f to every input element and yields the result, until
// upstream is exhausted.
func Map[I, O any](f func(I) O) pipe.Conduit[I, O] {
	return pipe.Bind(pipe.Await[I, I, O, struct{}](), func(m pipe.Maybe[I]) pipe.Conduit[I, O] {
		v, ok := m.Get()
		if !ok {
			return pipe.Return[I, I, O, struct{}, struct{}](struct{}{})
		}
		return pipe.Bind(pipe.Yield[I, I, O, struct{}](f(v)), func(struct{}) pipe.Conduit[I, O] {
			return Map[I, O](f)
		})
	})
}

// Filter yields only the input elements for which pred returns true.
func Filter[I any](pred func(I) bool) pipe.Conduit[I, I] {
	return pipe.Bind(pipe.Await[I, I, I, struct{}](), func(m pipe.Maybe[I]) pipe.Conduit[I, I] {
		v, ok := m.Get()
		if !ok {
			return pipe.Return[I, I, I, struct{}, struct{}](struct{}{})
		}
		rest := Filter[I](pred)
		if !pred(v) {
			return rest
		}
		return pipe.Bind(pipe.Yield[I, I, I, struct{}](v), func(struct{}) pipe.Conduit[I, I] { return rest })
	})
}

// Take passes through at most n input elements, then terminates without
// consuming any further input (leaving it for whatever is fused next).
func Take[I any](n int) pipe.Conduit[I, I] {
	if n <= 0 {
		return pipe.Return[I, I, I, struct{}, struct{}](struct{}{})
	}
	return pipe.Bind(pipe.Await[I, I, I, struct{}](), func(m pipe.Maybe[I]) pipe.Conduit[I, I] {
		v, ok := m.Get()
		if !ok {
			return pipe.Return[I, I, I, struct{}, struct{}](struct{}{})
		}
		return pipe.Bind(pipe.Yield[I, I, I, struct{}](v), func(struct{}) pipe.Conduit[I, I] {
			return Take[I](n - 1)
		})
	})
}

// Drop discards the first n input elements, then passes the rest through
// unchanged.
func Drop[I any](n int) pipe.Conduit[I, I] {
	if n <= 0 {
		return pipe.IdP[I, struct{}]()
	}
	return pipe.Bind(pipe.Await[I, I, I, struct{}](), func(m pipe.Maybe[I]) pipe.Conduit[I, I] {
		if _, ok := m.Get(); !ok {
			return pipe.Return[I, I, I, struct{}, struct{}](struct{}{})
		}
		return Drop[I](n - 1)
	})
}
