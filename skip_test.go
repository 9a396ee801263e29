// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/ever"
)

func TestSkip(t *testing.T) {
	got := ever.Head(ever.Skip(ever.RangeFrom(0), 3), 3)
	if !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("got %v, want [3 4 5]", got)
	}
}

func TestSkipZero(t *testing.T) {
	got := ever.Head(ever.Skip(ever.RangeFrom(0), 0), 2)
	if !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("got %v, want [0 1]", got)
	}
}

func TestSkipIsLazy(t *testing.T) {
	// Construction must not pull; the prefix is discarded on the
	// first advance only.
	var pulled int
	src := ever.Skip(ever.Inspect(ever.RangeFrom(0), func(int) { pulled++ }), 3)
	if pulled != 0 {
		t.Fatalf("construction pulled %d elements", pulled)
	}
	if v := src.MustNext(); v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
	if pulled != 4 {
		t.Fatalf("first advance pulled %d elements, want 4", pulled)
	}
}

func TestSkipWhile(t *testing.T) {
	got := ever.Head(ever.SkipWhile(ever.RangeFrom(0), func(n int) bool { return n < 5 }), 3)
	if !slices.Equal(got, []int{5, 6, 7}) {
		t.Fatalf("got %v, want [5 6 7]", got)
	}
}

func TestSkipWhileStopsDroppingForever(t *testing.T) {
	// The predicate only ever drops the leading prefix. Elements
	// matching it after the first failure come through.
	src := ever.SkipWhile(ever.CycleOf(1, 2, 9, 1), func(n int) bool { return n < 5 })
	got := ever.Head(src, 5)
	if !slices.Equal(got, []int{9, 1, 1, 2, 9}) {
		t.Fatalf("got %v, want [9 1 1 2 9]", got)
	}
}

func TestStepBy(t *testing.T) {
	got := ever.Head(ever.StepBy(ever.RangeFrom(0), 3), 4)
	if !slices.Equal(got, []int{0, 3, 6, 9}) {
		t.Fatalf("got %v, want [0 3 6 9]", got)
	}
}

func TestStepByOne(t *testing.T) {
	got := ever.Head(ever.StepBy(ever.RangeFrom(0), 1), 3)
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Fatalf("got %v, want [0 1 2]", got)
	}
}

func TestStepByNonPositivePanics(t *testing.T) {
	for _, step := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("StepBy(%d) did not panic", step)
				}
			}()
			ever.StepBy(ever.Repeat(1), step)
		}()
	}
}
