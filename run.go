// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "github.com/conduit-go/conduit/effect"

// RunPipe interprets a fully closed pipe — no leftovers, no real input,
// no output (L = I = O = Void) — down to its result, executing every
// PipeM effect in the host context along the way. Fuse two pipes
// together until both ends collapse to Void before calling RunPipe; a
// pipe that still needs input or still has output to give is not
// something RunPipe can make sense of, and the type system rejects it
// before this function ever sees it.
func RunPipe[R any](p Pipe[Void, Void, Void, struct{}, R]) Eff[R] {
	switch s := p.(type) {
	case Done[Void, Void, Void, struct{}, R]:
		return effect.Return[effect.Resumed](s.Result)
	case PipeM[Void, Void, Void, struct{}, R]:
		return effect.Bind(s.Effect, func(next Pipe[Void, Void, Void, struct{}, R]) Eff[R] {
			return RunPipe(next)
		})
	case NeedInput[Void, Void, Void, struct{}, R]:
		// I = Void, so OnInput can never be invoked meaningfully; the
		// only legal continuation is the one for upstream done.
		return RunPipe(s.OnUpstreamDone(struct{}{}))
	case HaveOutput[Void, Void, Void, struct{}, R]:
		return absurd[Eff[R]](s.Value)
	case Leftover[Void, Void, Void, struct{}, R]:
		return absurd[Eff[R]](s.Pushed)
	default:
		panic("pipe: RunPipe: unknown step variant")
	}
}
