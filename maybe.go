// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// Maybe holds an optional value. Await returns one so that callers can
// distinguish "upstream delivered a genuine value" from "upstream is
// exhausted" without reserving a sentinel value of I for the latter.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] { return Maybe[T]{value: v, present: true} }

// None represents absence.
func None[T any]() Maybe[T] { return Maybe[T]{} }

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool { return m.present }

// IsNone reports the absence of a value.
func (m Maybe[T]) IsNone() bool { return !m.present }

// Get returns the contained value and whether it was present.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.present }

// GetOr returns the contained value, or def if none is present.
func (m Maybe[T]) GetOr(def T) T {
	if m.present {
		return m.value
	}
	return def
}
