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
	"context"
	"net"
	"os"
	"sync"
	"time"

	liblog "github.com/nabbar/autotrail/logger"
	libsrv "github.com/nabbar/autotrail/runner/startStop"
	libsck "github.com/nabbar/autotrail/socket"
	libcfg "github.com/nabbar/autotrail/socket/config"
)

// SocketServer owns a Unix-domain listener and drives one ConnectionServer
// per accepted connection, strictly sequentially: at most one in-flight
// request at any time. It embeds a startStop.StartStop so embedders manage
// it with the same Start/Stop/Restart vocabulary as any other long-running
// component.
type SocketServer struct {
	libsrv.StartStop

	cfg        libcfg.Server
	handler    Handler
	log        liblog.FuncLog
	extraPos   []interface{}
	extraNamed map[string]interface{}

	mu sync.Mutex
	ln net.Listener
}

// New builds a SocketServer bound to cfg.Address once Start is called.
// extraPositional/extraNamed are forwarded to every ConnectionServer.Serve
// call, ahead of each request's own arguments.
func New(cfg libcfg.Server, handler Handler, log liblog.FuncLog, extraPositional []interface{}, extraNamed map[string]interface{}) *SocketServer {
	s := &SocketServer{
		cfg:        cfg,
		handler:    handler,
		log:        log,
		extraPos:   extraPositional,
		extraNamed: extraNamed,
	}
	s.StartStop = libsrv.New(s.run, s.shutdown)
	return s
}

// listen binds the Unix-domain address, optionally reclaiming a stale
// socket path first (see EXPANSION 4: this is an explicit RemoveStaleSocket
// decision, never a blind unlink of a possibly-live socket).
func (s *SocketServer) listen() (net.Listener, error) {
	addr := s.cfg.Address

	if s.cfg.RemoveStaleSocket {
		if c, err := net.DialTimeout("unix", addr, 200*time.Millisecond); err == nil {
			_ = c.Close()
		} else {
			_ = os.Remove(addr)
		}
	}

	ln, err := net.Listen("unix", addr)
	if err != nil {
		return nil, err
	}

	if err = os.Chmod(addr, s.cfg.PermFile.FileMode()); err != nil {
		if s.log != nil {
			s.log().Warning("failed to chmod socket %q: %v", nil, addr, err)
		}
	}

	if err = s.cfg.ApplyOwnership(addr); err != nil && s.log != nil {
		s.log().Warning("failed to chown socket %q: %v", nil, addr, err)
	}

	return ln, nil
}

// run is the SocketServer's FuncStart: it binds the listener - a bind
// failure is fatal, there is no sensible retry - then accepts, serves, and
// sleeps in a loop until ctx is cancelled or a handler relays shutdown.
func (s *SocketServer) run(ctx context.Context) error {
	ln, err := s.listen()
	if err != nil {
		if s.log != nil {
			s.log().Error("failed to listen on %q: %v", nil, s.cfg.Address, err)
		}
		return err
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.ln != nil {
			_ = s.ln.Close()
			s.ln = nil
		}
		s.mu.Unlock()
	}()

	for {
		if ctxDone(ctx) {
			return nil
		}

		nc, err := ln.Accept()
		if err != nil {
			if ctxDone(ctx) {
				return nil
			}
			if s.log != nil {
				s.log().Warning("accept failed: %v", nil, err)
			}
			continue
		}

		conn := libsck.NewConn(nc)
		cs := NewConnectionServer(s.handler, conn, s.cfg.ReceiveTimeout.Time(), s.log)
		relay, _ := cs.Serve(s.extraPos, s.extraNamed)
		_ = cs.Close()

		if relay == ShutdownSentinel {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.cfg.PollDelay.Time()):
		}
	}
}

// shutdown is the SocketServer's FuncStop: closing the listener unblocks
// the Accept call in run, which then observes ctx.Done and exits the loop.
func (s *SocketServer) shutdown(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	err := s.ln.Close()
	s.ln = nil
	return err
}

func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
