// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import "iter"

// Seq is the single-step sequence contract: Next returns the next
// element, or reports exhaustion with false.
//
// Seq is the pull counterpart of the standard library's push-style
// [iter.Seq]; Values bridges the two. Unless documented otherwise a
// Seq value belongs to a single goroutine.
type Seq[T any] interface {
	Next() (T, bool)
}

// Endless is a Seq that is statically known to never end.
//
// For the capability to be correctly implemented, the following
// invariants must be upheld:
//  1. MustNext paired with true must always equal what Next would
//     have returned.
//  2. No operation of the type may visibly disagree with its own Next.
//  3. The type must not implement Exact.
//  4. If the type implements Sized, upperKnown must always be false.
//
// Violating any of the above makes the behavior of code consuming
// the sequence unspecified (wrong results or panics) but never
// memory-unsafe. Checked audits these invariants at runtime for test
// suites.
//
// The capability travels with the static type: storing, passing, or
// embedding an Endless value preserves it without any wrapping.
type Endless[T any] interface {
	Seq[T]

	// MustNext returns the next element. It has no exhaustion arm:
	// by contract the sequence always has one more element.
	MustNext() T
}

// Sized is an optional Seq contract reporting bounds on the number
// of elements remaining. When the upper bound is unknown, upperKnown
// is false and upper carries no meaning.
type Sized interface {
	SizeHint() (lower, upper int, upperKnown bool)
}

// Exact is an optional Seq contract for sequences whose exact
// remaining element count is known. An Endless implementation must
// not provide it: a finite count contradicts non-termination.
type Exact interface {
	Len() int
}

// FromSlice returns a sequence over vs. It exhausts after the last
// element. The slice is not copied.
func FromSlice[T any](vs []T) Seq[T] {
	return &sliceSeq[T]{vs: vs}
}

// Of returns a sequence over the given elements in order.
func Of[T any](vs ...T) Seq[T] {
	return FromSlice(vs)
}

// sliceSeq cursors over a shared backing slice.
type sliceSeq[T any] struct {
	vs []T
	i  int
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.i >= len(s.vs) {
		var zero T
		return zero, false
	}
	v := s.vs[s.i]
	s.i++
	return v, true
}

func (s *sliceSeq[T]) Len() int {
	return len(s.vs) - s.i
}

func (s *sliceSeq[T]) SizeHint() (lower, upper int, upperKnown bool) {
	n := len(s.vs) - s.i
	return n, n, true
}

// FromFunc returns a sequence that delegates every advance to f.
func FromFunc[T any](f func() (T, bool)) Seq[T] {
	return funcSeq[T](f)
}

// funcSeq is the advance function itself.
type funcSeq[T any] func() (T, bool)

func (f funcSeq[T]) Next() (T, bool) { return f() }

// FromChan returns a sequence that receives from ch. Each advance
// blocks until a value arrives; the sequence exhausts once ch is
// closed and drained. Channels carry a close protocol, so a channel
// sequence is finite by contract and never Endless.
func FromChan[T any](ch <-chan T) Seq[T] {
	return &chanSeq[T]{ch: ch}
}

// chanSeq receives from a channel until it is closed and drained.
type chanSeq[T any] struct {
	ch <-chan T
}

func (c *chanSeq[T]) Next() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

// Values bridges src to a range-over-func iterator:
//
//	for v := range ever.Values(src) { ... }
//
// Ranging over an Endless sequence this way can only exit through
// break (or an enclosing return); that divergence is the contract,
// not a defect.
func Values[T any](src Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := src.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
