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

package startStop

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

type runner struct {
	mu sync.Mutex

	start FuncStart
	stop  FuncStop

	cancel context.CancelFunc
	done   chan struct{}

	running atomic.Bool
	begin   atomic.Value

	errMu sync.Mutex
	errs  []error
}

func (o *runner) Start(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopLocked(ctx)
	return o.startLocked(ctx)
}

func (o *runner) startLocked(ctx context.Context) error {
	c, cancel := context.WithCancel(ctx)

	o.cancel = cancel
	o.clearErrors()

	done := make(chan struct{})
	o.done = done

	o.running.Store(true)
	o.begin.Store(time.Now())

	go func() {
		defer close(done)
		defer o.running.Store(false)
		defer o.begin.Store(time.Time{})

		if o.start == nil {
			o.addError(fmt.Errorf("invalid start function"))
			return
		}

		if err := o.start(c); err != nil {
			o.addError(err)
		}
	}()

	return nil
}

func (o *runner) Stop(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopLocked(ctx)
	return nil
}

func (o *runner) stopLocked(ctx context.Context) {
	if o.cancel == nil {
		return
	}

	cancel := o.cancel
	done := o.done

	o.cancel = nil
	o.done = nil

	cancel()

	if o.stop == nil {
		o.addError(fmt.Errorf("invalid stop function"))
	} else if err := o.stop(ctx); err != nil {
		o.addError(err)
	}

	if done != nil {
		<-done
	}
}

func (o *runner) Restart(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopLocked(ctx)
	return o.startLocked(ctx)
}

func (o *runner) IsRunning() bool {
	return o.running.Load()
}

func (o *runner) Uptime() time.Duration {
	if !o.running.Load() {
		return 0
	}

	v := o.begin.Load()
	if v == nil {
		return 0
	}

	t, k := v.(time.Time)
	if !k || t.IsZero() {
		return 0
	}

	return time.Since(t)
}

func (o *runner) clearErrors() {
	o.errMu.Lock()
	o.errs = nil
	o.errMu.Unlock()
}

func (o *runner) addError(err error) {
	o.errMu.Lock()
	o.errs = append(o.errs, err)
	o.errMu.Unlock()
}

func (o *runner) ErrorsLast() error {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	if len(o.errs) == 0 {
		return nil
	}

	return o.errs[len(o.errs)-1]
}

func (o *runner) ErrorsList() []error {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	if len(o.errs) == 0 {
		return nil
	}

	out := make([]error, len(o.errs))
	copy(out, o.errs)
	return out
}
