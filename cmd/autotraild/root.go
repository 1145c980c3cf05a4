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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCommand wires the thin cobra/viper surface the CLI needs: a
// --config flag read by serve and an --address override, nothing deeper.
// Argument-parsing depth is
// explicitly out of scope.
func newRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "autotraild",
		Short: "autotraild hosts a method-call API behind a Unix-domain socket",
	}

	root.PersistentFlags().String("config", "", "path to a config file (json/yaml/toml)")
	root.PersistentFlags().String("address", "", "override the socket address")
	_ = v.BindPFlag("config.file", root.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("server.address", root.PersistentFlags().Lookup("address"))

	root.AddCommand(newServeCommand(v))

	return root
}

func bindConfigFile(v *viper.Viper, cmd *cobra.Command) {
	if f, _ := cmd.Flags().GetString("config"); f != "" {
		v.SetConfigFile(f)
	} else {
		v.SetConfigName("autotraild")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/autotrail")
	}
}
