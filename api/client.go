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
	libsck "github.com/nabbar/autotrail/socket"
	libcfg "github.com/nabbar/autotrail/socket/config"
)

// TransportCall is the shape ConnectionClient.Call and MethodApiClientWrapper
// both speak: send one ApiRequest, get back (response, received, transport
// error). A nil response with received=true never happens; received=false
// means "no reply within the deadline" and is not an error.
type TransportCall func(req *ApiRequest) (*ApiResponse, bool, error)

// SocketClient opens a fresh Unix-domain connection per call. Transient
// errors (connection refused, address missing) surface unchanged; no retry
// policy is imposed at this level.
type SocketClient struct {
	cfg libcfg.Client
}

// NewSocketClient builds a client dialing cfg.Address on every call.
func NewSocketClient(cfg libcfg.Client) *SocketClient {
	return &SocketClient{cfg: cfg}
}

// Call implements TransportCall: dial, exchange one request/response pair,
// close.
func (c *SocketClient) Call(req *ApiRequest) (*ApiResponse, bool, error) {
	conn, err := libsck.Dial(c.cfg.Address, c.cfg.DialTimeout.Time())
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = conn.Close() }()

	cc := NewConnectionClient(conn, c.cfg.ReceiveTimeout.Time())
	return cc.Call(req)
}

// MethodApiClientWrapper turns a TransportCall into the client-visible
// surface spec.md describes as dynamic attribute access: since Go has no
// runtime attribute dispatch, Call plays the role a dynamically typed
// client's `obj.method(...)` would - any method name is a candidate, and
// the server's MethodApiHandlerWrapper registry is the sole authority on
// which names actually exist.
type MethodApiClientWrapper struct {
	transport TransportCall
}

// NewMethodApiClientWrapper adapts transport (typically a SocketClient.Call)
// into the method-call-shaped wrapper.
func NewMethodApiClientWrapper(transport TransportCall) *MethodApiClientWrapper {
	return &MethodApiClientWrapper{transport: transport}
}

// Call builds an ApiRequest for method, dispatches it through the
// underlying transport, and interprets the ApiResponse:
//   - (nil, false, nil): no reply within the deadline.
//   - (nil, true, err): the handler raised; err is reconstructed with the
//     kind preserved by ApiResponse.ErrorKind when the embedder registered
//     a matching ErrorFactory.
//   - (value, true, nil): the handler returned value normally.
func (w *MethodApiClientWrapper) Call(method string, positional []interface{}, named map[string]interface{}) (interface{}, bool, error) {
	req := NewApiRequest(method, positional, named)

	resp, ok, err := w.transport(req)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	if resp.HasError() {
		return nil, true, reconstructError(resp.Error, resp.ErrorKind)
	}

	return resp.Value, true, nil
}
