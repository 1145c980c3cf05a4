/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2021 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

// Package runner holds small helpers shared by background workers (hooks,
// aggregators, socket listeners) that recover from panics in goroutines they
// cannot let crash the process.
package runner

import (
	"fmt"
	"os"
	"strings"
)

// RecoveryCaller reports a panic recovered by the caller's deferred recover().
// It is a no-op when r is nil, so callers can write:
//
//	defer func() {
//	    runner.RecoveryCaller("pkg/func", recover())
//	}()
//
// without guarding the call themselves. Extra args are appended as free-form
// context (file path, connection id, ...) to help locate the failure.
func RecoveryCaller(caller string, r interface{}, args ...string) {
	if r == nil {
		return
	}

	msg := fmt.Sprintf("recovering panic on %s", caller)

	if len(args) > 0 {
		msg += " (" + strings.Join(args, ", ") + ")"
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", msg, r)
}
