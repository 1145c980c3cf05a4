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

package socket

import "time"

// ReceiveOne waits up to timeout for the next message on conn. It returns
// the message and true when one arrived, or (nil, false) on timeout or a
// clean peer close - both are normal "nothing to do" outcomes, never an
// error the caller must handle.
func ReceiveOne(conn Connection, timeout time.Duration) (Message, bool) {
	ok, err := conn.Poll(timeout)
	if err != nil || !ok {
		return nil, false
	}

	msg, err := conn.Receive()
	if err != nil {
		return nil, false
	}
	return msg, true
}

// Drain returns a one-shot generator that repeatedly calls ReceiveOne and
// yields each message until the first empty outcome, at which point every
// later call also returns (nil, false). It is not restartable; callers that
// need to drain a connection again must build a new generator.
func Drain(conn Connection, timeout time.Duration) func() (Message, bool) {
	done := false
	return func() (Message, bool) {
		if done {
			return nil, false
		}
		msg, ok := ReceiveOne(conn, timeout)
		if !ok {
			done = true
			return nil, false
		}
		return msg, true
	}
}

// SendAll sends each message on conn in order. It stops and returns the
// first error encountered; no buffering beyond what the transport provides
// is attempted.
func SendAll(conn Connection, messages []Message) error {
	for _, msg := range messages {
		if err := conn.Send(msg); err != nil {
			return err
		}
	}
	return nil
}
