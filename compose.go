// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

// Chain returns first followed by rest. Only rest must be endless:
// once the finite prefix exhausts, control shifts permanently to the
// endless remainder, so the composition never ends. A nil first is
// treated as already exhausted.
func Chain[T any](first Seq[T], rest Endless[T]) Endless[T] {
	return &chainSeq[T]{first: first, rest: rest}
}

// chainSeq drains first, then forwards to rest; a drained first is
// dropped so later advances skip the check for good.
type chainSeq[T any] struct {
	first Seq[T]
	rest  Endless[T]
}

func (c *chainSeq[T]) Next() (T, bool) { return c.MustNext(), true }

func (c *chainSeq[T]) MustNext() T {
	if c.first != nil {
		if v, ok := c.first.Next(); ok {
			return v
		}
		c.first = nil
	}
	return c.rest.MustNext()
}

// Pair carries one element from each side of a Zip.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Zip returns the endless sequence of pairs {a[0], b[0]}, {a[1],
// b[1]}, etc. Zipping stops as soon as either side would stop, so
// both operands must be endless; a fallible operand is rejected by
// the type checker.
func Zip[A, B any](a Endless[A], b Endless[B]) Endless[Pair[A, B]] {
	return &zipSeq[A, B]{a: a, b: b}
}

// zipSeq pulls one element from each side per advance.
type zipSeq[A, B any] struct {
	a Endless[A]
	b Endless[B]
}

func (z *zipSeq[A, B]) Next() (Pair[A, B], bool) { return z.MustNext(), true }

func (z *zipSeq[A, B]) MustNext() Pair[A, B] {
	return Pair[A, B]{Left: z.a.MustNext(), Right: z.b.MustNext()}
}

// Cycle returns src repeated forever. Repeating an endless sequence
// never reaches the restart, so the wrapper is inert; repeating a
// fallible sequence would be unsound for the empty case, so cycling
// alone never grants the capability. CycleOf covers fixed element
// lists.
func Cycle[T any](src Endless[T]) Endless[T] {
	return &cycleSeq[T]{src: src}
}

// cycleSeq forwards to src; the restart point is unreachable.
type cycleSeq[T any] struct {
	src Endless[T]
}

func (c *cycleSeq[T]) Next() (T, bool) { return c.MustNext(), true }

func (c *cycleSeq[T]) MustNext() T { return c.src.MustNext() }

// FlatMap applies f to each element of outer and yields the elements
// of each produced sequence in order. The inner sequences may be
// finite or empty; the endless outer guarantees another inner is
// always available. Diverges if every remaining inner is empty.
func FlatMap[A, B any](outer Endless[A], f func(A) Seq[B]) Endless[B] {
	return &flatMapSeq[A, B]{outer: outer, f: f}
}

// flatMapSeq drains the current inner sequence, pulling a fresh one
// from outer whenever cur exhausts.
type flatMapSeq[A, B any] struct {
	outer Endless[A]
	f     func(A) Seq[B]
	cur   Seq[B]
}

func (f *flatMapSeq[A, B]) Next() (B, bool) { return f.MustNext(), true }

func (f *flatMapSeq[A, B]) MustNext() B {
	for {
		if f.cur != nil {
			if v, ok := f.cur.Next(); ok {
				return v
			}
			f.cur = nil
		}
		f.cur = f.f(f.outer.MustNext())
	}
}

// Flatten concatenates the elements of an endless sequence of
// sequences.
func Flatten[B any](outer Endless[Seq[B]]) Endless[B] {
	return FlatMap(outer, func(s Seq[B]) Seq[B] { return s })
}
