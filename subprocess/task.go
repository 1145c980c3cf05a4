/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

package subprocess

import (
	"bytes"
	"os"
	"os/exec"
	"sync"

	"github.com/google/uuid"

	liblog "github.com/nabbar/autotrail/logger"
	libsck "github.com/nabbar/autotrail/socket"
)

// Task is a handle over one child-process invocation of a registered Func.
// It owns the child process and its single-slot result channel: idle before
// Start, running after Start until the child exits, terminal (one way or
// the other) from then on - GetResult never blocks and never re-reads the
// channel once it has produced a non-empty Result.
type Task struct {
	id   string
	name string
	log  liblog.FuncLog

	mu     sync.Mutex
	cmd    *exec.Cmd
	stdout *bytes.Buffer
	done   chan struct{}
	cached *Result
}

// NewTask builds an idle Task bound to the Func registered as name. Start
// fails immediately if no such registration exists.
func NewTask(name string, log liblog.FuncLog) *Task {
	return &Task{
		id:   uuid.NewString(),
		name: name,
		log:  log,
	}
}

// ID returns the Task's identifier, stable for its whole lifetime.
func (t *Task) ID() string { return t.id }

// Start spawns the child process re-executing the current binary with the
// subprocess re-exec marker set to t.name, writes positional/named to its
// stdin as one msgpack value, and returns once the child has been launched
// - it does not wait for completion. A Func unknown to the registry fails
// fast here rather than after paying the fork/exec cost.
func (t *Task) Start(positional []interface{}, named map[string]interface{}) error {
	if _, err := lookup(t.name); err != nil {
		return err
	}

	payload, err := libsck.Marshal(callPayload{Positional: positional, Named: named})
	if err != nil {
		return err
	}

	self, err := os.Executable()
	if err != nil {
		return err
	}

	cmd := exec.Command(self)
	cmd.Env = append(os.Environ(), envMarker+"="+t.name)
	cmd.Stdin = bytes.NewReader(payload)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	t.mu.Lock()
	t.cmd = cmd
	t.stdout = &out
	t.done = make(chan struct{})
	t.mu.Unlock()

	if err = cmd.Start(); err != nil {
		return err
	}

	go func() {
		werr := cmd.Wait()
		if werr != nil && t.log != nil {
			t.log().Warning("subprocess %q (task %s) exited with error: %v", nil, t.name, t.id, werr)
		}
		close(t.done)
	}()

	return nil
}

// IsAlive reports whether the child process is still running. It is not a
// completion signal: a child that has written its result but not yet been
// reaped by Wait is still alive.
func (t *Task) IsAlive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cmd == nil || t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Join blocks until the child exits.
func (t *Task) Join() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done == nil {
		return
	}
	<-done
}

// GetResult is non-blocking. The first call that observes the child has
// exited decodes its stdout frame and caches the outcome; every later call
// returns the cached value without touching the process again. A crashed
// child that wrote nothing decodes to (Result{}, false) forever.
func (t *Task) GetResult() (Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cached != nil {
		return *t.cached, true
	}

	if t.done == nil {
		return Result{}, false
	}

	select {
	case <-t.done:
	default:
		return Result{}, false
	}

	raw := t.stdout.Bytes()
	if len(raw) == 0 {
		return Result{}, false
	}

	var p resultPayload
	if err := libsck.Unmarshal(raw, &p); err != nil {
		if t.log != nil {
			t.log().Error("subprocess %q (task %s) wrote an unreadable result: %v", nil, t.name, t.id, err)
		}
		return Result{}, false
	}

	r := fromResultPayload(p)
	t.cached = &r
	return r, true
}

// Terminate forwards to the child process's kill signal. It does not drain
// the result buffer or populate the cache; GetResult on a terminated child
// may return "no result" indefinitely, exactly as a natural crash would.
func (t *Task) Terminate() error {
	t.mu.Lock()
	cmd := t.cmd
	t.mu.Unlock()
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
