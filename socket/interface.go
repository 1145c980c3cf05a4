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

// Package socket provides the message I/O primitives that every higher layer
// of the AutoTrail transport is built on: a non-blocking receive with a
// timeout, a blocking send, and a bounded generator that drains a connection
// until it runs dry.
//
// A Connection is an abstract duplex message channel. Only Unix-domain
// stream sockets are produced by this package (see NewConn and Dial),
// but the primitives in message.go operate against the Connection interface
// so they can be exercised against any duplex channel in tests.
package socket

import "time"

// Message is the raw, already-framed payload of one value travelling across
// a Connection. The transport only ever moves bytes; structured encoding
// (ApiRequest, ApiResponse, subprocess results, ...) is a concern of the
// callers in package api and package subprocess, each of which knows what
// concrete type a given Message decodes into.
type Message = []byte

// Connection is a duplex message channel between one client and the server
// for one request/response exchange. Close must be idempotent; a peer that
// disappears must surface as Poll returning (false, nil), never as an error.
type Connection interface {
	// Poll waits up to timeout for a message to become readable. It returns
	// false, nil on timeout and on a clean peer close - neither is an error.
	Poll(timeout time.Duration) (bool, error)

	// Receive reads the next framed message. Only valid after Poll reports
	// true; the underlying transport frames messages atomically so Receive
	// never returns a partial message.
	Receive() (Message, error)

	// Send writes one framed message synchronously.
	Send(msg Message) error

	// Close releases the connection. Idempotent.
	Close() error
}
