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

package socket_test

import (
	"net"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libsck "github.com/nabbar/autotrail/socket"
)

var _ = Describe("Dial", func() {
	It("connects to a listening Unix-domain address", func() {
		addr := filepath.Join(GinkgoT().TempDir(), "conn.sock")

		ln, err := net.Listen("unix", addr)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = ln.Close() }()

		accepted := make(chan net.Conn, 1)
		go func() {
			c, _ := ln.Accept()
			accepted <- c
		}()

		conn, err := libsck.Dial(addr, time.Second)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = conn.Close() }()

		var srv net.Conn
		Eventually(accepted).Should(Receive(&srv))
		defer func() { _ = srv.Close() }()

		Expect(conn.Send([]byte("ping"))).To(Succeed())

		server := libsck.NewConn(srv)
		msg, ok := libsck.ReceiveOne(server, time.Second)
		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal(libsck.Message("ping")))
	})

	It("surfaces a dial error unchanged when nothing is listening", func() {
		addr := filepath.Join(GinkgoT().TempDir(), "nobody-home.sock")

		_, err := libsck.Dial(addr, 200*time.Millisecond)
		Expect(err).To(HaveOccurred())
	})

	It("Close is idempotent", func() {
		addr := filepath.Join(GinkgoT().TempDir(), "close.sock")

		ln, err := net.Listen("unix", addr)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = ln.Close() }()

		go func() { c, _ := ln.Accept(); _ = c }()

		conn, err := libsck.Dial(addr, time.Second)
		Expect(err).NotTo(HaveOccurred())

		Expect(conn.Close()).To(Succeed())
		Expect(conn.Close()).To(Succeed())
	})
})
