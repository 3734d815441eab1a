/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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
 */

// Package config loads the engine's TOML configuration file and exposes
// the decoded settings as a package-level global, in the style the rest
// of this module's ambient packages (logging, assert) use.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 4

	// Settings is the global configuration read in from file
	Settings conf

	// ConfFile is the path to the TOML file Setup reads; callers may
	// override it before calling Setup.
	ConfFile = "./config.toml"

	initialized = false
)

type conf struct {
	Log   logConfiguration
	Rules ruleConfiguration
}

// Setup reads ConfFile and applies its settings on top of the defaults
// set by each section's init(). A missing or unreadable file is not
// fatal - defaults are kept and the decode error is returned so the
// caller (typically cmd/chessrules) can decide whether to continue or
// abort.
func Setup() error {
	if initialized {
		return nil
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		initialized = true
		setupLogLvl()
		setupRules()
		return fmt.Errorf("reading config file %q: %w", ConfFile, err)
	}

	// setup log level - first check cmd line, then config file, finally leave defaults
	setupLogLvl()

	// setup rule toggles after reading from configuration file if necessary
	setupRules()

	initialized = true
	return nil
}


