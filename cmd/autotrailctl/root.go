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
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	libapi "github.com/nabbar/autotrail/api"
	libdur "github.com/nabbar/autotrail/duration"
	libcfg "github.com/nabbar/autotrail/socket/config"
)

func newRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "autotrailctl",
		Short: "autotrailctl calls a method on a running autotraild instance",
	}

	root.PersistentFlags().String("address", "/run/autotrail/autotrail.sock", "socket address to dial")
	root.PersistentFlags().Duration("timeout", 5*time.Second, "call timeout")
	_ = v.BindPFlag("address", root.PersistentFlags().Lookup("address"))
	_ = v.BindPFlag("timeout", root.PersistentFlags().Lookup("timeout"))

	root.AddCommand(newCallCommand(v))

	return root
}

func newCallCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [args...]",
		Short: "invoke method on the daemon and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := libcfg.DefaultClient(v.GetString("address"))
			cfg.DialTimeout = libdur.ParseDuration(v.GetDuration("timeout"))
			cfg.ReceiveTimeout = libdur.ParseDuration(v.GetDuration("timeout"))

			sc := libapi.NewSocketClient(cfg)
			client := libapi.NewMethodApiClientWrapper(sc.Call)

			positional := make([]interface{}, 0, len(args)-1)
			for _, a := range args[1:] {
				positional = append(positional, a)
			}

			value, ok, err := client.Call(args[0], positional, nil)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no reply from %q within %s", v.GetString("address"), v.GetDuration("timeout"))
			}

			fmt.Println(value)
			return nil
		},
	}
}
