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
	"time"

	liblog "github.com/nabbar/autotrail/logger"
	libsck "github.com/nabbar/autotrail/socket"
)

// ConnectionServer serves exactly one request on a single connection and
// then is done; SocketServer builds a fresh one per accepted connection.
type ConnectionServer struct {
	handler Handler
	conn    libsck.Connection
	timeout time.Duration
	log     liblog.FuncLog
}

// NewConnectionServer wraps conn with the plumbing to serve one request
// through handler. log may be nil.
func NewConnectionServer(handler Handler, conn libsck.Connection, timeout time.Duration, log liblog.FuncLog) *ConnectionServer {
	return &ConnectionServer{
		handler: handler,
		conn:    conn,
		timeout: timeout,
		log:     log,
	}
}

// Serve performs the whole single-request lifecycle described in the
// ConnectionServer contract:
//
//  1. ReceiveOne; on timeout, return ("", false) without touching handler.
//  2. Invoke handler; a panicking handler is logged and yields ("", true)
//     with no response sent - the caller will observe this as a client-side
//     timeout, never a corrupted wire.
//  3. Marshal and send the ApiResponse; a failed send (peer gone) is
//     swallowed, logged only.
//  4. Return the handler's relay value.
func (s *ConnectionServer) Serve(extraPositional []interface{}, extraNamed map[string]interface{}) (relay Relay, served bool) {
	raw, ok := libsck.ReceiveOne(s.conn, s.timeout)
	if !ok {
		return "", false
	}

	var req ApiRequest
	if err := libsck.Unmarshal(raw, &req); err != nil {
		if s.log != nil {
			s.log().Error("malformed request frame: %v", nil, err)
		}
		return "", false
	}

	hr, escaped := s.invoke(&req, extraPositional, extraNamed)
	if escaped {
		// The handler itself raised past its own contract (it is expected to
		// capture its failures into HandlerResponse.Error, as
		// MethodApiHandlerWrapper does). No response is sent: the request
		// has not been answered, and the caller will observe this as a
		// timeout rather than a corrupted wire.
		return "", true
	}

	msg, kind := describeError(hr.Error)
	resp := &ApiResponse{
		Id:        req.Id,
		Value:     hr.Value,
		Error:     msg,
		ErrorKind: kind,
	}

	payload, err := libsck.Marshal(resp)
	if err != nil {
		if s.log != nil {
			s.log().Error("failed to marshal response for method %q: %v", nil, req.Method, err)
		}
		return hr.Relay, true
	}

	if err = s.conn.Send(payload); err != nil && s.log != nil {
		s.log().Error("send failed, peer likely gone: %v", nil, err)
	}

	return hr.Relay, true
}

// invoke calls the handler. escaped is true when the handler panicked
// outright instead of returning a captured HandlerResponse.Error, which
// Serve treats as "do not reply" rather than trying to describe the panic
// to the client.
func (s *ConnectionServer) invoke(req *ApiRequest, extraPositional []interface{}, extraNamed map[string]interface{}) (hr HandlerResponse, escaped bool) {
	defer func() {
		if r := recover(); r != nil {
			if s.log != nil {
				s.log().Error("handler panicked for method %q: %v", nil, req.Method, r)
			}
			escaped = true
		}
	}()

	resp := s.handler(req, extraPositional, extraNamed)
	if resp == nil {
		return HandlerResponse{}, false
	}
	return *resp, false
}

// Close releases the underlying connection. All close errors are
// suppressed, matching the ownership contract: a ConnectionServer must not
// fail its caller just because the peer already tore down the socket.
func (s *ConnectionServer) Close() error {
	_ = s.conn.Close()
	return nil
}

// ConnectionClient sends exactly one request and waits for exactly one
// response. The caller owns conn and is responsible for closing it.
type ConnectionClient struct {
	conn    libsck.Connection
	timeout time.Duration
}

// NewConnectionClient wraps conn for a single request/response exchange.
func NewConnectionClient(conn libsck.Connection, timeout time.Duration) *ConnectionClient {
	return &ConnectionClient{conn: conn, timeout: timeout}
}

// Call sends req and waits up to the configured timeout for a response. A
// false return means "no reply within the deadline" - not an error, the
// caller's dial succeeded and the request left cleanly.
func (c *ConnectionClient) Call(req *ApiRequest) (*ApiResponse, bool, error) {
	payload, err := libsck.Marshal(req)
	if err != nil {
		return nil, false, err
	}

	if err = c.conn.Send(payload); err != nil {
		return nil, false, err
	}

	raw, ok := libsck.ReceiveOne(c.conn, c.timeout)
	if !ok {
		return nil, false, nil
	}

	var resp ApiResponse
	if err = libsck.Unmarshal(raw, &resp); err != nil {
		return nil, false, err
	}

	return &resp, true, nil
}
