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
	"fmt"
	"sync"
)

// Func is a unit of work a Task can run, either in-process (via SafeCall) or
// in a re-executed child (via Main). Positional/named mirror the api
// package's call shape so the same argument plumbing serves both the
// socket transport and the subprocess transport.
type Func func(positional []interface{}, named map[string]interface{}) (interface{}, error)

var (
	regMu  sync.RWMutex
	regFns = make(map[string]Func)
)

// Register binds name to fn. Call it from an init() in every package that
// defines a Func meant to run as a subprocess; both the parent (to validate
// the name exists before spawning) and the re-exec child (to look the name
// up after Main parses the environment marker) need the same registry
// populated, so Register must run before either Start or Main.
func Register(name string, fn Func) {
	regMu.Lock()
	defer regMu.Unlock()
	regFns[name] = fn
}

// lookup returns the Func registered under name, or an error naming it.
func lookup(name string) (Func, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	fn, ok := regFns[name]
	if !ok {
		return nil, fmt.Errorf("subprocess: no function registered as %q", name)
	}
	return fn, nil
}
