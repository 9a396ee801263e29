// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

// Skip returns src without its first n elements. The prefix is
// discarded lazily on the first advance.
func Skip[T any](src Endless[T], n int) Endless[T] {
	return &skipSeq[T]{src: src, remaining: n}
}

// skipSeq counts down the prefix still to discard.
type skipSeq[T any] struct {
	src       Endless[T]
	remaining int
}

func (s *skipSeq[T]) Next() (T, bool) { return s.MustNext(), true }

func (s *skipSeq[T]) MustNext() T {
	for s.remaining > 0 {
		s.src.MustNext()
		s.remaining--
	}
	return s.src.MustNext()
}

// SkipWhile returns src without its longest prefix of elements
// satisfying pred. The first element failing pred, and everything
// after it, is yielded unconditionally. Diverges if pred holds for
// every element.
func SkipWhile[T any](src Endless[T], pred func(T) bool) Endless[T] {
	return &skipWhileSeq[T]{src: src, pred: pred}
}

// skipWhileSeq records whether the rejected prefix is behind it.
type skipWhileSeq[T any] struct {
	src     Endless[T]
	pred    func(T) bool
	dropped bool
}

func (s *skipWhileSeq[T]) Next() (T, bool) { return s.MustNext(), true }

func (s *skipWhileSeq[T]) MustNext() T {
	if !s.dropped {
		s.dropped = true
		for {
			if v := s.src.MustNext(); !s.pred(v) {
				return v
			}
		}
	}
	return s.src.MustNext()
}

// StepBy returns every step-th element of src, starting with the
// first. Panics if step is not positive.
func StepBy[T any](src Endless[T], step int) Endless[T] {
	if step <= 0 {
		panic("ever: StepBy step must be positive")
	}
	return &stepBySeq[T]{src: src, step: step}
}

// stepBySeq discards step-1 elements between yields; started marks
// the first element, which is always yielded.
type stepBySeq[T any] struct {
	src     Endless[T]
	step    int
	started bool
}

func (s *stepBySeq[T]) Next() (T, bool) { return s.MustNext(), true }

func (s *stepBySeq[T]) MustNext() T {
	if !s.started {
		s.started = true
		return s.src.MustNext()
	}
	for i := 1; i < s.step; i++ {
		s.src.MustNext()
	}
	return s.src.MustNext()
}
