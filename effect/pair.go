// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Pair holds two values. pipe.FuseResume returns an Eff[Pair[ResumablePipe[E], R2]]
// pairing the resumable left half of a fusion with the right side's result.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
