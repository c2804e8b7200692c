// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger constructs a development logger writing to w at info level. The
// returned level may be lowered to enable debug logging.
func newLogger(w io.Writer) (*zap.Logger, zap.AtomicLevel) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeCaller = nil
	cfg.EncoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(w),
		cfg.Level,
	)
	return zap.New(core), cfg.Level
}
