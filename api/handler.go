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
	"runtime/debug"
	"sync"

	liberr "github.com/nabbar/autotrail/errors"
	liblog "github.com/nabbar/autotrail/logger"
)

// Operation is one named server-side operation: the callable surface a
// MethodApiHandlerWrapper dispatches ApiRequest.Method against. Go has no
// runtime parameter names, so unlike a dynamically typed handler object
// the operation receives its positional and named arguments already
// merged by Handle rather than being invoked through reflection on a
// method of arbitrary arity.
//
// An operation emits SHUTDOWN_SENTINEL by returning a HandlerResponse
// (not a pointer) as its value with a nil error; Handle detects this and
// relays it verbatim instead of wrapping it again.
type Operation func(positional []interface{}, named map[string]interface{}) (interface{}, error)

// Handler is the request-consuming callable every ConnectionServer invokes.
// MethodApiHandlerWrapper is the only Handler this package ships, but tests
// and embedders that need bespoke dispatch may implement Handler directly.
type Handler func(req *ApiRequest, extraPositional []interface{}, extraNamed map[string]interface{}) *HandlerResponse

// MethodApiHandlerWrapper adapts a name-to-Operation table into a Handler,
// the statically typed equivalent of turning an arbitrary object's public
// methods into a request-consuming callable.
type MethodApiHandlerWrapper struct {
	mu  sync.RWMutex
	ops map[string]Operation
	log liblog.FuncLog
}

// NewMethodApiHandlerWrapper returns an empty wrapper. Register operations
// with Register before handing the result to a SocketServer. log may be nil,
// in which case handler exceptions and unknown-method lookups are not
// logged (still returned as errors to the client).
func NewMethodApiHandlerWrapper(log liblog.FuncLog) *MethodApiHandlerWrapper {
	return &MethodApiHandlerWrapper{
		ops: make(map[string]Operation),
		log: log,
	}
}

// Register binds name to op. A later Register call with the same name
// replaces the previous binding.
func (w *MethodApiHandlerWrapper) Register(name string, op Operation) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops[name] = op
}

// Handle is the Handler this wrapper exposes to ConnectionServer.
func (w *MethodApiHandlerWrapper) Handle(req *ApiRequest, extraPositional []interface{}, extraNamed map[string]interface{}) (resp *HandlerResponse) {
	defer func() {
		if r := recover(); r != nil {
			err := liberr.NewErrorRecovered(fmt.Sprintf("handler panic on method %q", req.Method), fmt.Sprint(r))
			if w.log != nil {
				w.log().Error("handler panic on method %q", string(debug.Stack()), req.Method)
			}
			resp = &HandlerResponse{Error: err}
		}
	}()

	w.mu.RLock()
	op, ok := w.ops[req.Method]
	w.mu.RUnlock()

	if !ok {
		err := liberr.Newf(0, "unknown method %q", req.Method)
		if w.log != nil {
			w.log().Error("unknown method requested: %q", nil, req.Method)
		}
		return &HandlerResponse{Error: err}
	}

	pos := make([]interface{}, 0, len(extraPositional)+len(req.Positional))
	pos = append(pos, extraPositional...)
	pos = append(pos, req.Positional...)

	named := make(map[string]interface{}, len(extraNamed)+len(req.Named))
	for k, v := range extraNamed {
		named[k] = v
	}
	for k, v := range req.Named {
		named[k] = v
	}

	value, err := op(pos, named)
	if err != nil {
		if w.log != nil {
			w.log().Error("handler operation %q failed", err, req.Method)
		}
		return &HandlerResponse{Error: err}
	}

	if hr, ok := value.(HandlerResponse); ok {
		return &hr
	}

	return &HandlerResponse{Value: value}
}
