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

// Package config holds the viper/cobra-friendly configuration structs for
// both ends of the Unix-domain socket transport, mirroring the shape of the
// teacher's socket/config package (address, file permission, timeouts) but
// trimmed to what a single Unix-domain listener needs.
package config

import (
	"time"

	libdur "github.com/nabbar/autotrail/duration"
	libprm "github.com/nabbar/autotrail/file/perm"
)

// Server describes a SocketServer's listening socket.
type Server struct {
	// Address is the filesystem path of the Unix-domain socket.
	Address string `mapstructure:"address" json:"address" yaml:"address" toml:"address"`

	// PermFile is applied to the socket inode once Listen succeeds.
	PermFile libprm.Perm `mapstructure:"perm_file" json:"perm_file" yaml:"perm_file" toml:"perm_file"`

	// GroupPerm chowns the socket inode to this gid; -1 leaves it untouched.
	GroupPerm int32 `mapstructure:"group_perm" json:"group_perm" yaml:"group_perm" toml:"group_perm"`

	// RemoveStaleSocket resolves the spec's open question on stale socket
	// files explicitly: when true, Listen unlinks a pre-existing socket
	// path at Address, but only after dialing it first to confirm nothing
	// is actually listening. Default false: an existing path is a fatal
	// "address unavailable" condition.
	RemoveStaleSocket bool `mapstructure:"remove_stale_socket" json:"remove_stale_socket" yaml:"remove_stale_socket" toml:"remove_stale_socket"`

	// ReceiveTimeout bounds every ConnectionServer.Serve receive.
	ReceiveTimeout libdur.Duration `mapstructure:"receive_timeout" json:"receive_timeout" yaml:"receive_timeout" toml:"receive_timeout"`

	// PollDelay is the pause between successive Accept calls once a
	// request has been served.
	PollDelay libdur.Duration `mapstructure:"poll_delay" json:"poll_delay" yaml:"poll_delay" toml:"poll_delay"`
}

// Client describes a SocketClient's dial target.
type Client struct {
	// Address is the filesystem path of the Unix-domain socket to dial.
	Address string `mapstructure:"address" json:"address" yaml:"address" toml:"address"`

	// DialTimeout bounds the connect step of every call.
	DialTimeout libdur.Duration `mapstructure:"dial_timeout" json:"dial_timeout" yaml:"dial_timeout" toml:"dial_timeout"`

	// ReceiveTimeout bounds the single response wait of every call.
	ReceiveTimeout libdur.Duration `mapstructure:"receive_timeout" json:"receive_timeout" yaml:"receive_timeout" toml:"receive_timeout"`
}

// DefaultServer returns a Server configuration matching the teacher's
// convention of shipping a safe, non-zero default (owner-only socket file,
// no group override, conservative timeouts).
func DefaultServer(address string) Server {
	return Server{
		Address:           address,
		PermFile:          libprm.Perm(0600),
		GroupPerm:         -1,
		RemoveStaleSocket: false,
		ReceiveTimeout:    libdur.Seconds(5),
		PollDelay:         libdur.ParseDuration(10 * time.Millisecond),
	}
}

// DefaultClient returns a Client configuration with the same timeout
// defaults as DefaultServer.
func DefaultClient(address string) Client {
	return Client{
		Address:        address,
		DialTimeout:    libdur.Seconds(5),
		ReceiveTimeout: libdur.Seconds(5),
	}
}
