// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

// Endless consumers. Each one terminates by finding, never by
// exhaustion: when the predicate or transform is never satisfied the
// call diverges. Consuming a sequence with no end carries no timeout
// or cancellation hook, and no operation here reports failure
// through its results.

// Each calls f on every element, forever. It never returns; the call
// itself is the program's remaining work.
func Each[T any](src Endless[T], f func(T)) {
	for {
		f(src.MustNext())
	}
}

// Find returns the first element satisfying pred. Diverges if no
// element ever does.
func Find[T any](src Endless[T], pred func(T) bool) T {
	for {
		if v := src.MustNext(); pred(v) {
			return v
		}
	}
}

// FindMap applies f to each element until it accepts one, returning
// the accepted value. Diverges if f declines forever.
func FindMap[A, B any](src Endless[A], f func(A) (B, bool)) B {
	for {
		if v, ok := f(src.MustNext()); ok {
			return v
		}
	}
}

// Position returns the zero-based count of elements consumed before
// the first element satisfying pred. Diverges if no element ever
// does.
func Position[T any](src Endless[T], pred func(T) bool) int {
	n := 0
	for {
		if pred(src.MustNext()) {
			return n
		}
		n++
	}
}

// Head consumes and returns the next n elements. The result always
// has exactly n elements; an endless sequence cannot come up short.
// Returns nil for n <= 0.
func Head[T any](src Endless[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = src.MustNext()
	}
	return out
}
