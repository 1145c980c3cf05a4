/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package startStop wraps a pair of start/stop functions into a single
// restartable background task, tracking whether it is running, how long it
// has been running, and the errors its functions returned.
package startStop

import (
	"context"
	"time"
)

// FuncStart runs until ctx is done, or returns early with an error.
type FuncStart func(ctx context.Context) error

// FuncStop performs graceful shutdown for a running FuncStart.
type FuncStop func(ctx context.Context) error

// StartStop is a restartable background task built from a start/stop pair.
type StartStop interface {
	// Start launches the start function in a goroutine, stopping any
	// previous instance first. It returns immediately; asynchronous
	// errors are available through ErrorsLast/ErrorsList.
	Start(ctx context.Context) error
	// Stop shuts down the running instance, if any. Safe to call when
	// not running, and safe to call more than once concurrently.
	Stop(ctx context.Context) error
	// Restart stops the current instance, if any, then starts a new one.
	Restart(ctx context.Context) error
	// IsRunning reports whether the start function is currently executing.
	IsRunning() bool
	// Uptime returns how long the current instance has been running, or
	// zero if not running.
	Uptime() time.Duration
	// ErrorsLast returns the most recently recorded error, or nil.
	ErrorsLast() error
	// ErrorsList returns every error recorded since the last Start call.
	ErrorsList() []error
}

// New returns a StartStop wrapping the given start/stop functions. Either
// may be nil; calling Start/Stop without a function records an error
// instead of panicking.
func New(start FuncStart, stop FuncStop) StartStop {
	return &runner{
		start: start,
		stop:  stop,
	}
}
