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

// Package semaphore bounds the number of concurrent goroutines a worker pool
// may run at once. It is embedded in a context.Context so callers can select
// on cancellation and worker-slot acquisition with the same idiom.
package semaphore

import (
	"context"
)

// Bar tracks progress of a bounded batch of workers. DeferWorker both
// releases the worker slot and advances the counter by one.
type Bar interface {
	NewWorker() error
	NewWorkerTry() bool
	DeferWorker()
	Inc(n int)
}

// Semaphore bounds concurrent workers. A negative weight means unlimited.
type Semaphore interface {
	context.Context

	// NewWorker blocks until a worker slot is available or the context is done.
	NewWorker() error
	// NewWorkerTry acquires a worker slot without blocking.
	NewWorkerTry() bool
	// DeferWorker releases one worker slot.
	DeferWorker()
	// WaitAll blocks until every acquired worker slot has been released.
	WaitAll() error
	// DeferMain releases resources held by the semaphore itself.
	DeferMain()
	// Weighted returns the weighted value given to New; a negative value means unlimited.
	Weighted() int64

	// BarBytes returns a counting Bar with the given total. title, label,
	// drop and prev are not used; nothing is rendered.
	BarBytes(title, label string, total int64, drop bool, prev Bar) Bar
	// BarTime returns a counting Bar with the given total. title, label,
	// drop and prev are not used; nothing is rendered.
	BarTime(title, label string, total int64, drop bool, prev Bar) Bar
	// BarNumber returns a counting Bar with the given total. title, label,
	// drop and prev are not used; nothing is rendered.
	BarNumber(title, label string, total int64, drop bool, prev Bar) Bar
	// BarOpts returns a counting Bar with the given total. drop is not used;
	// nothing is rendered.
	BarOpts(total int64, drop bool) Bar
}

// New returns a Semaphore allowing at most weighted concurrent workers.
// A negative weighted value disables the limit. withProgress is accepted
// for compatibility with progress-aware callers and has no effect: bars
// track counts and render nothing whatever its value.
func New(ctx context.Context, weighted int64, withProgress bool) Semaphore {
	if ctx == nil {
		ctx = context.Background()
	}

	c, cancel := context.WithCancel(ctx)

	return &sem{
		Context: c,
		cancel:  cancel,
		weight:  weighted,
		slots:   newSlots(weighted),
	}
}
