// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// calcdemo runs a fixed tour of the calculator and prints the results
// and the tail of the calculation history.
//
// Configuration comes from an optional TOML file given with -config,
// then from CALC_* environment variables (also read from a .env file
// in the current directory):
//
//	CALC_LOG_LEVEL        debug, info, warn or error (default warn)
//	CALC_LOG_FORMAT       json or console (default console)
//	CALC_HISTORY_TAIL     records shown at the end (default 5)
//	CALC_TRIG_PRECISION   decimals for trigonometric results (default 4)
//	CALC_MONEY_PRECISION  decimals for amounts of money (default 2)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/calckit/calckit/calc"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "read configuration from TOML `file`")
	flag.Parse()

	if err := loadDotEnv(".env"); err != nil {
		fatal(err)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		fatal(err)
	}
	defer logger.Sync()

	s := calc.New(calc.WithLogger(logger))
	if err := runDemo(os.Stdout, s, cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "calcdemo:", err)
	os.Exit(1)
}
