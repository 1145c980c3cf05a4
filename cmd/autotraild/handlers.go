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

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	libapi "github.com/nabbar/autotrail/api"
	liblog "github.com/nabbar/autotrail/logger"
	libsnp "github.com/nabbar/autotrail/snapshot"
	libsub "github.com/nabbar/autotrail/subprocess"
)

var daemonStart = time.Now()

// echoFuncName is the subprocess.Func registered below and re-exec'd by
// subprocess.Main when a child is spawned under that name.
const echoFuncName = "echo"

func init() {
	libsub.Register(echoFuncName, func(positional []interface{}, _ map[string]interface{}) (interface{}, error) {
		if len(positional) == 0 {
			return "", nil
		}
		return fmt.Sprint(positional[0]), nil
	})
}

// newDaemonServer registers the handful of operations autotraild ships out
// of the box (ping, status, a subprocess-backed echo, and shutdown) and
// returns the SocketServer bound to cfg.Server.
func newDaemonServer(cfg daemonConfig, logFn liblog.FuncLog) *libapi.SocketServer {
	wrap := libapi.NewMethodApiHandlerWrapper(logFn)

	agg := libsnp.New()
	agg.Register(func() (map[string]interface{}, error) {
		host, _ := os.Hostname()
		return map[string]interface{}{
			"host":       host,
			"pid":        os.Getpid(),
			"goroutines": runtime.NumGoroutine(),
			"uptime":     time.Since(daemonStart).String(),
		}, nil
	})

	wrap.Register("ping", func(_ []interface{}, _ map[string]interface{}) (interface{}, error) {
		return "pong", nil
	})

	wrap.Register("status", func(_ []interface{}, _ map[string]interface{}) (interface{}, error) {
		snap, pool := agg.Collect()
		if pool != nil && pool.Len() > 0 {
			return snap, pool.Error()
		}
		return snap, nil
	})

	wrap.Register("echo", func(positional []interface{}, named map[string]interface{}) (interface{}, error) {
		task := libsub.NewTask(echoFuncName, logFn)
		if err := task.Start(positional, named); err != nil {
			return nil, err
		}
		task.Join()

		res, ok := task.GetResult()
		if !ok {
			return nil, fmt.Errorf("echo: subprocess %s produced no result", task.ID())
		}
		return res.Value, res.Err
	})

	wrap.Register("shutdown", func(_ []interface{}, _ map[string]interface{}) (interface{}, error) {
		return libapi.Shutdown(), nil
	})

	return libapi.New(cfg.Server, wrap.Handle, logFn, nil, nil)
}
