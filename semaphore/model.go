/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package semaphore

import (
	"context"
	"sync"
)

// slots is a counting gate: buffered channel when bounded, nil when unlimited.
type slots struct {
	ch chan struct{}
	wg sync.WaitGroup
}

func newSlots(weighted int64) *slots {
	if weighted < 0 {
		return &slots{}
	}
	return &slots{ch: make(chan struct{}, weighted)}
}

func (s *slots) acquire(ctx context.Context) error {
	if s.ch == nil {
		s.wg.Add(1)
		return nil
	}

	select {
	case s.ch <- struct{}{}:
		s.wg.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *slots) tryAcquire() bool {
	if s.ch == nil {
		s.wg.Add(1)
		return true
	}

	select {
	case s.ch <- struct{}{}:
		s.wg.Add(1)
		return true
	default:
		return false
	}
}

func (s *slots) release() {
	if s.ch != nil {
		select {
		case <-s.ch:
		default:
		}
	}
	s.wg.Done()
}

func (s *slots) wait() {
	s.wg.Wait()
}

type sem struct {
	context.Context
	cancel context.CancelFunc
	weight int64
	slots  *slots
}

func (o *sem) NewWorker() error {
	return o.slots.acquire(o.Context)
}

func (o *sem) NewWorkerTry() bool {
	return o.slots.tryAcquire()
}

func (o *sem) DeferWorker() {
	o.slots.release()
}

func (o *sem) WaitAll() error {
	o.slots.wait()
	return o.Context.Err()
}

func (o *sem) DeferMain() {
	if o.cancel != nil {
		o.cancel()
	}
}

func (o *sem) Weighted() int64 {
	return o.weight
}

func (o *sem) BarBytes(_, _ string, total int64, drop bool, _ Bar) Bar {
	return o.newBar(total, drop)
}

func (o *sem) BarTime(_, _ string, total int64, drop bool, _ Bar) Bar {
	return o.newBar(total, drop)
}

func (o *sem) BarNumber(_, _ string, total int64, drop bool, _ Bar) Bar {
	return o.newBar(total, drop)
}

func (o *sem) BarOpts(total int64, drop bool) Bar {
	return o.newBar(total, drop)
}

func (o *sem) newBar(total int64, drop bool) Bar {
	return &bar{sem: o, total: total, drop: drop}
}

// bar is a counting Bar with no rendering backend: it tracks progress
// through the same slot gate as its parent semaphore.
type bar struct {
	sem   *sem
	total int64
	drop  bool
	count int64
	mu    sync.Mutex
}

func (b *bar) NewWorker() error {
	return b.sem.NewWorker()
}

func (b *bar) NewWorkerTry() bool {
	return b.sem.NewWorkerTry()
}

func (b *bar) DeferWorker() {
	b.Inc(1)
	b.sem.DeferWorker()
}

func (b *bar) Inc(n int) {
	b.mu.Lock()
	b.count += int64(n)
	b.mu.Unlock()
}
