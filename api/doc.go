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

// Package api wires the socket message primitives into a method-call-shaped
// remote API:
//
//   - ApiRequest / ApiResponse / HandlerResponse - the three value types
//     that travel between client and server (HandlerResponse never
//     crosses the wire).
//   - ConnectionServer / ConnectionClient - the single-request,
//     single-response unit of work on one connection.
//   - SocketServer / SocketClient - the Unix-domain listener/dialer layer;
//     SocketServer accepts sequentially and stops once a handler relays
//     ShutdownSentinel.
//   - MethodApiHandlerWrapper / MethodApiClientWrapper - the pair of
//     adapters that make a name-to-Operation table look, from the client
//     side, like a set of remote methods.
//
// # Wire format
//
// Requests and responses are msgpack-encoded (socket.Marshal/Unmarshal) and
// framed with a four-byte length prefix (see socket/codec.go), giving the
// atomic per-message framing the transport requires.
//
// # Shutdown
//
// An Operation emits ShutdownSentinel by returning a HandlerResponse value
// (not a pointer) with Relay set, typically via the Shutdown() helper. The
// SocketServer loop exits after the current response is sent.
package api
