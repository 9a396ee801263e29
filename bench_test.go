// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever_test

import (
	"testing"

	"code.hybscloud.com/ever"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// BenchmarkRangeFromAdvance measures a bare infallible advance.
func BenchmarkRangeFromAdvance(b *testing.B) {
	src := ever.RangeFrom(0)
	b.ReportAllocs()
	for b.Loop() {
		src.MustNext()
	}
}

// BenchmarkAdapterStackAdvance measures an advance through a
// filter-map-step stack.
func BenchmarkAdapterStackAdvance(b *testing.B) {
	evens := ever.Filter(ever.RangeFrom(0), func(n int) bool { return n%2 == 0 })
	src := ever.StepBy(ever.Map(evens, func(n int) int { return n * 3 }), 2)
	b.ReportAllocs()
	for b.Loop() {
		src.MustNext()
	}
}

// BenchmarkLoopBreak measures driving 64 elements and breaking.
func BenchmarkLoopBreak(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		ever.Loop(ever.RangeFrom(0), func(n int) ever.Control[int] {
			if n >= 64 {
				return ever.Break(n)
			}
			return ever.Continue[int]()
		})
	}
}

// BenchmarkForSlice measures the fallible driver over a 64-element
// payload.
func BenchmarkForSlice(b *testing.B) {
	payload := make([]int, 64)
	b.ReportAllocs()
	for b.Loop() {
		ever.For(ever.FromSlice(payload), func(int) ever.Control[struct{}] {
			return ever.Continue[struct{}]()
		})
	}
}

// BenchmarkPeekAdvance measures a peek followed by the advance that
// drains the lookahead slot.
func BenchmarkPeekAdvance(b *testing.B) {
	p := ever.NewPeekable(ever.RangeFrom(0))
	b.ReportAllocs()
	for b.Loop() {
		p.Peek()
		p.MustNext()
	}
}

// BenchmarkValuesRange measures the range-over-func bridge, 64
// elements per iteration.
func BenchmarkValuesRange(b *testing.B) {
	src := ever.RangeFrom(0)
	b.ReportAllocs()
	for b.Loop() {
		n := 0
		for range ever.Values(src) {
			n++
			if n == 64 {
				break
			}
		}
	}
}

// BenchmarkDrainAdvance measures one element through the SPSC feed,
// producer pinned to a second goroutine.
func BenchmarkDrainAdvance(b *testing.B) {
	skipRace(b)
	var q lfq.SPSC[int]
	q.Init(4)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		var bo iox.Backoff
		v := 0
		for {
			p := v
			for q.Enqueue(&p) != nil {
				select {
				case <-stop:
					return
				default:
				}
				bo.Wait()
			}
			v++
			bo.Reset()
		}
	}()

	src := ever.Drain(&q)
	b.ReportAllocs()
	for b.Loop() {
		src.MustNext()
	}
	close(stop)
	<-done
}
