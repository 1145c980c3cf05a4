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

// Package subprocess runs a registered callable in a separate OS process
// and captures either its return value or its panic/error into a
// single-slot result channel, with lifecycle control (start / is-alive /
// join / terminate / get-result).
//
// Go has no way to serialize an arbitrary closure across a process
// boundary, so the callable is named rather than captured directly:
// embedders call Register at init time to bind a name to a Func, then
// build a Task against that name. The child process is the same binary
// re-executed (os.Executable, the same pattern the cobra command-name
// resolution in this module's cmd packages already uses) with an
// environment variable telling it which registered Func to run; Main must
// be called first thing in the program's real main() so the re-exec can be
// intercepted before any server or CLI logic starts.
//
// # Wire format
//
// Arguments and results cross the child/parent boundary the same way
// requests and responses cross the socket transport: msgpack via
// socket.Marshal/Unmarshal, one unframed msgpack value on the child's stdin
// and one on its stdout, each read whole until the pipe closes.
package subprocess
