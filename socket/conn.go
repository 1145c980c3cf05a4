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

import (
	"bufio"
	"errors"
	"io"
	"net"
	"sync"
	"time"
)

// unixConn adapts a net.Conn (always a Unix-domain stream socket in this
// module) to the Connection interface. Poll is implemented with a
// read-deadline-bounded Peek so it never consumes the bytes it observes.
type unixConn struct {
	mu     sync.Mutex
	nc     net.Conn
	reader *bufio.Reader
	closed bool
}

// NewConn wraps an already-established net.Conn as a Connection. Both the
// server (post-Accept) and the client (post-Dial) use this constructor.
func NewConn(nc net.Conn) Connection {
	return &unixConn{nc: nc, reader: bufio.NewReader(nc)}
}

func (u *unixConn) Poll(timeout time.Duration) (bool, error) {
	if err := u.nc.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return false, err
	}
	defer func() { _ = u.nc.SetReadDeadline(time.Time{}) }()

	_, err := u.reader.Peek(1)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, io.EOF):
		return false, nil
	default:
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return false, nil
		}
		return false, nil
	}
}

func (u *unixConn) Receive() (Message, error) {
	return readFrame(u.reader)
}

func (u *unixConn) Send(msg Message) error {
	return writeFrame(u.nc, msg)
}

func (u *unixConn) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return nil
	}
	u.closed = true
	return u.nc.Close()
}

// Dial opens a fresh Unix-domain connection to address, bounded by timeout.
func Dial(address string, timeout time.Duration) (Connection, error) {
	nc, err := net.DialTimeout("unix", address, timeout)
	if err != nil {
		return nil, err
	}
	return NewConn(nc), nil
}
