// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// BracketP acquires a resource, builds a pipe from it with use, and
// guarantees release runs exactly once: either after the pipe reaches
// Done, or the moment its current output is abandoned instead of
// resumed. It is AddCleanup specialized to the acquire/use/release shape,
// the same way effect.Bracket packages acquire/use/release at the
// single-effect level — and the two compose: if use
// itself needs exception safety around an embedded host effect (rather
// than pipe-level early-close safety), wrap that effect with
// effect.Bracket or effect.OnError before returning it from use.
func BracketP[L, I, O, U, R, Resource any](
	acquire Eff[Resource],
	release func(Resource) Eff[struct{}],
	use func(Resource) Pipe[L, I, O, U, R],
) Pipe[L, I, O, U, R] {
	return PipeM[L, I, O, U, R]{
		Effect: effect.Map(acquire, func(resource Resource) Pipe[L, I, O, U, R] {
			return AddCleanup(func(bool) Eff[struct{}] { return release(resource) }, use(resource))
		}),
	}
}
