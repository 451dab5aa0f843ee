// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a structured logger constructor shared by the
// command entrypoint.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON structured logger writing to w, filtered at the given
// level. The level string is one of debug, info, warn and error.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return &slog.Logger{}, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// ExitWithError terminates the process with the given code. Meant to be
// deferred from main so that the other deferred cleanups run first.
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
