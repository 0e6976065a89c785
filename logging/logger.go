// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package logging wraps zap for icapdump. The icapsp core package
// never imports this, or any logging library: spec.md is explicit that
// the parser has no side channels, so structured logging only exists
// in the CLI wrapped around it.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the CLI logger. Unlike packetd's logger.Options,
// there is no file-rotation target: icapdump is a one-shot batch tool,
// not a long-running agent, so it only ever logs to stderr.
type Options struct {
	Level string `config:"level"`
}

func toZapLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// New builds a console-encoded zap.Logger writing to stderr. icapdump
// writes nothing to stdout; its per-message summaries are these log
// lines.
func New(opt Options) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encCfg)
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), toZapLevel(opt.Level))
	return zap.New(core, zap.AddCaller())
}
