// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ever

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Drain returns the endless sequence of elements dequeued from q.
// Dequeue is non-blocking and reports iox.ErrWouldBlock on an empty
// queue; each advance waits past that boundary with adaptive backoff
// (iox.Backoff) until a producer enqueues. The queue protocol has no
// close, so the sequence is endless by contract: it can block, but
// it can never exhaust.
//
// q is single-producer single-consumer; the draining sequence must
// be its only consumer.
func Drain[T any](q *lfq.SPSC[T]) Endless[T] {
	return &drainSeq[T]{q: q}
}

// drainSeq owns the consumer side of its queue.
type drainSeq[T any] struct {
	q *lfq.SPSC[T]
}

func (d *drainSeq[T]) Next() (T, bool) { return d.MustNext(), true }

func (d *drainSeq[T]) MustNext() T {
	var bo iox.Backoff
	for {
		v, err := d.q.Dequeue()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}
