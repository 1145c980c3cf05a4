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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ugorji/go/codec"
)

// maxFrameSize bounds a single message so a corrupt or hostile peer cannot
// make the decoder allocate without limit.
const maxFrameSize = 64 << 20 // 64 MiB

var mpHandle = &codec.MsgpackHandle{}

// Marshal encodes v with msgpack. Callers that know the concrete type on
// both ends (ApiRequest, ApiResponse, subprocess.Result) use this directly
// instead of round-tripping through interface{}.
func Marshal(v interface{}) ([]byte, error) {
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, mpHandle)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("socket: marshal: %w", err)
	}
	return buf, nil
}

// Unmarshal decodes msgpack bytes produced by Marshal into v.
func Unmarshal(data []byte, v interface{}) error {
	dec := codec.NewDecoderBytes(data, mpHandle)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("socket: unmarshal: %w", err)
	}
	return nil
}

// writeFrame writes a length-prefixed byte frame. The four-byte big-endian
// length header is what gives the transport its atomic per-message framing:
// a reader either gets the whole frame or none of it.
func writeFrame(w io.Writer, payload []byte) error {
	if len(payload) > maxFrameSize {
		return fmt.Errorf("socket: frame too large: %d bytes", len(payload))
	}

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("socket: write frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("socket: write frame body: %w", err)
	}
	return nil
}

// readFrame reads one complete length-prefixed frame from r. io.ReadFull
// fails atomically if the peer vanishes mid-frame, so no partial message is
// ever returned to the caller.
func readFrame(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	size := binary.BigEndian.Uint32(hdr[:])
	if size > maxFrameSize {
		return nil, fmt.Errorf("socket: frame too large: %d bytes", size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
