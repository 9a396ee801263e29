// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

// Derived adapters. Each constructor demands exactly the operand
// capability that makes the composition endless, so an unsound
// derivation fails to type-check. MustNext is total by the adapter's
// own advance logic; Next is MustNext wrapped with true, keeping the
// two arms of the contract on one cursor.

// Map returns the endless sequence f(src[0]), f(src[1]), etc.
func Map[A, B any](src Endless[A], f func(A) B) Endless[B] {
	return &mapSeq[A, B]{src: src, f: f}
}

// mapSeq applies f to each pulled element.
type mapSeq[A, B any] struct {
	src Endless[A]
	f   func(A) B
}

func (m *mapSeq[A, B]) Next() (B, bool) { return m.MustNext(), true }

func (m *mapSeq[A, B]) MustNext() B { return m.f(m.src.MustNext()) }

// Filter returns the endless sequence of src elements for which pred
// holds. Discarding never stops the pull: an advance over a stretch
// with no matching element keeps pulling, and diverges if no further
// element ever matches.
func Filter[T any](src Endless[T], pred func(T) bool) Endless[T] {
	return &filterSeq[T]{src: src, pred: pred}
}

// filterSeq pulls src until pred accepts an element.
type filterSeq[T any] struct {
	src  Endless[T]
	pred func(T) bool
}

func (f *filterSeq[T]) Next() (T, bool) { return f.MustNext(), true }

func (f *filterSeq[T]) MustNext() T {
	for {
		if v := f.src.MustNext(); f.pred(v) {
			return v
		}
	}
}

// FilterMap applies f to each element and yields the accepted
// results. Same divergence caveat as Filter when f declines forever.
func FilterMap[A, B any](src Endless[A], f func(A) (B, bool)) Endless[B] {
	return &filterMapSeq[A, B]{src: src, f: f}
}

// filterMapSeq pulls src until f accepts an element.
type filterMapSeq[A, B any] struct {
	src Endless[A]
	f   func(A) (B, bool)
}

func (f *filterMapSeq[A, B]) Next() (B, bool) { return f.MustNext(), true }

func (f *filterMapSeq[A, B]) MustNext() B {
	for {
		if v, ok := f.f(f.src.MustNext()); ok {
			return v
		}
	}
}

// Inspect passes elements through unchanged, calling f on each one
// as it is pulled.
func Inspect[T any](src Endless[T], f func(T)) Endless[T] {
	return &inspectSeq[T]{src: src, f: f}
}

// inspectSeq calls f on each element as it passes through.
type inspectSeq[T any] struct {
	src Endless[T]
	f   func(T)
}

func (i *inspectSeq[T]) Next() (T, bool) { return i.MustNext(), true }

func (i *inspectSeq[T]) MustNext() T {
	v := i.src.MustNext()
	i.f(v)
	return v
}

// Indexed pairs a zero-based ordinal with an element.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate returns the endless sequence {0, src[0]}, {1, src[1]},
// etc.
// The index wraps on int overflow.
func Enumerate[T any](src Endless[T]) Endless[Indexed[T]] {
	return &enumerateSeq[T]{src: src}
}

// enumerateSeq counts pulls in i.
type enumerateSeq[T any] struct {
	src Endless[T]
	i   int
}

func (e *enumerateSeq[T]) Next() (Indexed[T], bool) { return e.MustNext(), true }

func (e *enumerateSeq[T]) MustNext() Indexed[T] {
	v := e.src.MustNext()
	idx := e.i
	e.i++
	return Indexed[T]{Index: idx, Value: v}
}

// Fuse passes src through unchanged. Fusing exists to cap a fallible
// sequence after its first exhaustion; an endless operand has none,
// so the wrapper is inert and keeps the capability.
func Fuse[T any](src Endless[T]) Endless[T] {
	return &fuseSeq[T]{src: src}
}

// fuseSeq forwards to src unchanged.
type fuseSeq[T any] struct {
	src Endless[T]
}

func (f *fuseSeq[T]) Next() (T, bool) { return f.MustNext(), true }

func (f *fuseSeq[T]) MustNext() T { return f.src.MustNext() }
