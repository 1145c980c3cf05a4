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

// Package api defines the request/response value types and the four
// connection/socket/method-adapter layers that turn a socket.Connection
// into a method-call-shaped remote API.
package api

import (
	"github.com/google/uuid"
)

// Relay is server-internal, out-of-band information a handler returns to
// the SocketServer loop. It never crosses the wire to a client.
type Relay string

// ShutdownSentinel is the sole relay value with defined meaning: it tells
// the SocketServer to exit its accept loop after the current response has
// been sent.
const ShutdownSentinel Relay = "Shutdown Server"

// ApiRequest is one method-call request travelling from a client to the
// server. Method must resolve to an operation registered on the server's
// MethodApiHandlerWrapper.
type ApiRequest struct {
	// Id correlates a request with server-side log entries; it never
	// influences dispatch.
	Id         string                 `codec:"id"`
	Method     string                 `codec:"method"`
	Positional []interface{}          `codec:"positional"`
	Named      map[string]interface{} `codec:"named"`
}

// NewApiRequest builds a request with a fresh correlation id.
func NewApiRequest(method string, positional []interface{}, named map[string]interface{}) *ApiRequest {
	if positional == nil {
		positional = make([]interface{}, 0)
	}
	if named == nil {
		named = make(map[string]interface{})
	}
	return &ApiRequest{
		Id:         uuid.NewString(),
		Method:     method,
		Positional: positional,
		Named:      named,
	}
}

// ApiResponse is what crosses the wire back to the client. Exactly one of
// Value/Error carries meaning; ErrorKind lets MethodApiClientWrapper
// reconstruct an error of the right sentinel kind instead of a bare string.
type ApiResponse struct {
	Id        string      `codec:"id"`
	Value     interface{} `codec:"value"`
	Error     string      `codec:"error"`
	ErrorKind string      `codec:"error_kind"`
}

// HasError reports whether the response carries a non-empty error message.
func (r *ApiResponse) HasError() bool {
	return r != nil && r.Error != ""
}

// HandlerResponse is the server-internal result of invoking a handler
// operation. It never crosses the wire: ConnectionServer translates it into
// an ApiResponse, and Relay is consumed directly by SocketServer.
type HandlerResponse struct {
	Value interface{}
	Error error
	Relay Relay
}

// Shutdown builds the HandlerResponse a handler operation returns to tell
// the server loop to stop after replying.
func Shutdown() HandlerResponse {
	return HandlerResponse{Relay: ShutdownSentinel}
}
