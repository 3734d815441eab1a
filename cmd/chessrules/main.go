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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessrulesgo/board"
	"github.com/frankkopp/chessrulesgo/config"
	"github.com/frankkopp/chessrulesgo/logging"
	"github.com/frankkopp/chessrulesgo/perft"
)

var out = message.NewPrinter(language.German)

func main() {
	// defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	// go tool pprof -http=localhost:8080 chessrules cpu.pprof

	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "./logs", "log path setting (stored in the configuration; log output goes to stdout, not to files)")
	strictCastling := flag.Bool("strictcastling", false, "require empty in-between squares, an unmoved king/rook, and a safe king path for castling")
	perftDepth := flag.Int("perft", 0, "run perft from the standard starting position up to the given depth, then exit")
	parallel := flag.Bool("parallel", false, "fan the first perft ply out across goroutines")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run into the current directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	// set config file - this needs to happen before config.Setup() is
	// called, otherwise the default path is used.
	config.ConfFile = *configFile

	// read config file
	if err := config.Setup(); err != nil {
		fmt.Println(err)
	}

	// after reading the configuration file and the defaults we can now
	// overwrite settings with command line options.
	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *strictCastling {
		config.Settings.Rules.StrictCastling = true
	}

	// resetting log level - required as most packages grab their
	// logger via a package level var and therefore even before main()
	// runs. These loggers start at the default level and must be reset
	// to the actual level once config/flags are known.
	log := logging.GetLog("main")
	for _, name := range []string{"board", "perft"} {
		logging.GetLog(name)
	}

	// perft
	if *perftDepth != 0 {
		for i := 1; i <= *perftDepth; i++ {
			runPerft(i, *parallel)
		}
		return
	}

	log.Infof("chessrulesgo ready - standard position, %s to move", board.Standard().ActiveTurn().Str())
	out.Print(board.Standard().String())
}

func runPerft(depth int, parallel bool) {
	b := board.Standard()
	start := time.Now()

	var nodes uint64
	if parallel {
		var err error
		nodes, err = perft.ParallelPerft(context.Background(), b, depth, int64(runtime.NumCPU()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft aborted: %v\n", err)
			os.Exit(1)
		}
	} else {
		nodes = perft.Perft(b, depth)
	}

	out.Printf("perft(%d) = %d nodes in %s\n", depth, nodes, time.Since(start))
}
