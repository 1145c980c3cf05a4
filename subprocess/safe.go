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

	liberr "github.com/nabbar/autotrail/errors"
)

// Result is the single-slot outcome of one Func invocation: exactly one of
// Value/Err is meaningful, distinguished by Err == nil. A recovered panic is
// folded into Err via errors.NewErrorRecovered so the caller never has to
// tell "the function returned an error" from "the function panicked" apart
// by any means other than reading the error text.
type Result struct {
	Value interface{}
	Err   error
}

// SafeCall invokes fn with recover in place: a panic inside fn becomes a
// Result carrying the recovered value as an Err, never a crash of the
// caller's goroutine. This is the tier-1 capture every in-process call and
// every re-executed child both go through, so "ran in the parent" and "ran
// in a child" behave identically from the caller's point of view.
func SafeCall(name string, fn Func, positional []interface{}, named map[string]interface{}) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: liberr.NewErrorRecovered(fmt.Sprintf("subprocess function %q panicked", name), fmt.Sprint(r))}
		}
	}()

	value, err := fn(positional, named)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: value}
}
