// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

// Checked wraps src with runtime auditing of the Endless contract.
// The type system proves every derivation in this package, but an
// axiomatic implementation's promise is only a promise; Checked
// turns a broken one into an immediate panic instead of unspecified
// behavior downstream. Intended for test suites; the wrapper adds a
// branch per advance.
//
// Construction panics if src claims an exact remaining count (Exact)
// or a known upper bound (Sized). Every advance routes through src's
// fallible arm and panics the moment it reports exhaustion.
func Checked[T any](src Endless[T]) Endless[T] {
	if _, ok := src.(Exact); ok {
		panic("ever: endless sequence claims an exact length")
	}
	if s, ok := src.(Sized); ok {
		if _, _, upperKnown := s.SizeHint(); upperKnown {
			panic("ever: endless sequence claims a bounded size")
		}
	}
	return &checkedSeq[T]{src: src}
}

// checkedSeq observes src through its fallible arm only.
type checkedSeq[T any] struct {
	src Endless[T]
}

func (c *checkedSeq[T]) Next() (T, bool) { return c.MustNext(), true }

func (c *checkedSeq[T]) MustNext() T {
	v, ok := c.src.Next()
	if !ok {
		panic("ever: endless sequence reported exhaustion")
	}
	return v
}
