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

package api

import (
	"fmt"
	"sync"
)

// ErrorFactory rebuilds a client-side error of a given kind from the message
// the handler's error carried on the wire.
type ErrorFactory func(message string) error

var (
	errKindMu  sync.RWMutex
	errKindReg = make(map[string]ErrorFactory)
)

// RegisterErrorKind associates a sentinel kind with a factory so
// MethodApiClientWrapper can reconstruct an error with Error() matching the
// handler's original message instead of a bare opaque string. Kind is
// whatever the embedder chooses to stamp on errors it wants preserved
// across the wire (commonly a type name or an errors.CodeError formatted as
// a string); unregistered kinds fall back to a generic error.
func RegisterErrorKind(kind string, factory ErrorFactory) {
	if kind == "" || factory == nil {
		return
	}
	errKindMu.Lock()
	defer errKindMu.Unlock()
	errKindReg[kind] = factory
}

// ErrorKind is implemented by errors that want their kind preserved across
// the transport instead of collapsing to a generic error. Embedders
// register a matching ErrorFactory under the same string via
// RegisterErrorKind.
type ErrorKind interface {
	error
	ErrorKind() string
}

// describeError extracts the (message, kind) pair stored on an ApiResponse
// for a handler error. Errors not implementing ErrorKind carry an empty
// kind and are reconstructed as a generic error on the client.
func describeError(err error) (message string, kind string) {
	if err == nil {
		return "", ""
	}
	if k, ok := err.(ErrorKind); ok {
		return err.Error(), k.ErrorKind()
	}
	return err.Error(), ""
}

// reconstructError rebuilds a client-side error from the (message, kind)
// pair an ApiResponse carried. A kind with no registered factory, or an
// empty kind, yields a plain error wrapping message.
func reconstructError(message string, kind string) error {
	if message == "" {
		return nil
	}
	if kind != "" {
		errKindMu.RLock()
		f, ok := errKindReg[kind]
		errKindMu.RUnlock()
		if ok {
			return f(message)
		}
	}
	return fmt.Errorf("%s", message)
}
