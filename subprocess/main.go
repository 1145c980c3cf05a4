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

package subprocess

import (
	"io"
	"os"

	libsck "github.com/nabbar/autotrail/socket"
)

// envMarker is the environment variable Start sets on the child and Main
// looks for on every process's startup path. Its value is the registered
// Func name to run.
const envMarker = "AUTOTRAIL_SUBPROCESS_FUNC"

// Main intercepts the re-exec child path. An embedder's real main() must
// call this before anything else:
//
//	func main() {
//	    if subprocess.Main() {
//	        return
//	    }
//	    // ordinary program startup
//	}
//
// When envMarker is unset, Main does nothing and returns false so ordinary
// startup proceeds. When it is set, Main reads one msgpack-encoded
// callPayload from stdin, runs the named Func under SafeCall, writes one
// msgpack-encoded resultPayload to stdout, and returns true after calling
// os.Exit - the caller's return after Main never actually runs in the
// child, it exists so the same source line works whether or not Main took
// over.
func Main() bool {
	name, ok := os.LookupEnv(envMarker)
	if !ok || name == "" {
		return false
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		os.Exit(1)
	}

	var in callPayload
	if err = libsck.Unmarshal(raw, &in); err != nil {
		os.Exit(1)
	}

	fn, err := lookup(name)
	if err != nil {
		os.Exit(1)
	}

	res := SafeCall(name, fn, in.Positional, in.Named)

	out, err := libsck.Marshal(toResultPayload(res))
	if err != nil {
		os.Exit(1)
	}

	if _, err = os.Stdout.Write(out); err != nil {
		os.Exit(1)
	}

	os.Exit(0)
	return true
}
