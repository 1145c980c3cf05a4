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
	"strings"

	libmap "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	libdur "github.com/nabbar/autotrail/duration"
	libprm "github.com/nabbar/autotrail/file/perm"
	libcfg "github.com/nabbar/autotrail/socket/config"
)

// daemonConfig is the viper-bound shape of autotraild's config file/env,
// flattening socket/config.Server under the "server" key.
type daemonConfig struct {
	Server libcfg.Server `mapstructure:"server"`
}

func defaultDaemonConfig() daemonConfig {
	return daemonConfig{
		Server: libcfg.DefaultServer("/run/autotrail/autotrail.sock"),
	}
}

// loadConfig binds flags, env, and an optional config file into v, then
// decodes it into a daemonConfig using the Perm/Duration viper decoder
// hooks so "0640"-style and "5s"-style strings parse the way the teacher's
// own config components do.
func loadConfig(v *viper.Viper) (daemonConfig, error) {
	cfg := defaultDaemonConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, err
		}
	}

	hook := libmap.ComposeDecodeHookFunc(
		libprm.ViperDecoderHook(),
		libdur.ViperDecoderHook(),
	)

	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return cfg, err
	}

	return cfg, nil
}
