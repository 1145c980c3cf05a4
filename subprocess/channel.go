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

// callPayload is what the parent writes to the child's stdin: the name is
// carried separately (the env marker), only the arguments travel here.
type callPayload struct {
	Positional []interface{}          `codec:"positional"`
	Named      map[string]interface{} `codec:"named"`
}

// resultPayload is what the child writes to its stdout once, and only once,
// before exiting: the single-slot channel the spec describes is realized as
// "one msgpack frame on a pipe, then the pipe closes".
type resultPayload struct {
	Value  interface{} `codec:"value"`
	Err    string      `codec:"err"`
	HasErr bool        `codec:"has_err"`
}

func toResultPayload(r Result) resultPayload {
	if r.Err != nil {
		return resultPayload{Err: r.Err.Error(), HasErr: true}
	}
	return resultPayload{Value: r.Value}
}

func fromResultPayload(p resultPayload) Result {
	if p.HasErr {
		return Result{Err: errString(p.Err)}
	}
	return Result{Value: p.Value}
}

// errString is a trivial error wrapper: the child/parent boundary only
// needs the message back, not a reconstructed kind - a subprocess Func
// isn't expected to hand structured ErrorKind values across an OS process
// boundary the way a socket handler does across the wire transport.
type errString string

func (e errString) Error() string { return string(e) }
