// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absmach/opcua-cli/opcua"
)

var _ opcua.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    opcua.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc opcua.Service, logger *slog.Logger) opcua.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm loggingMiddleware) Read(ctx context.Context, cfg opcua.Config, nodeID string) (value opcua.Value, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("server_uri", cfg.ServerURI),
			slog.String("node_id", nodeID),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Read node value failed to complete successfully", args...)
			return
		}
		args = append(args, slog.Any("value", value.Data))
		lm.logger.Info(fmt.Sprintf("Value of node %s: %v", nodeID, value.Data), args...)
	}(time.Now())

	return lm.svc.Read(ctx, cfg, nodeID)
}

func (lm loggingMiddleware) Write(ctx context.Context, cfg opcua.Config, nodeID, raw string) (res opcua.WriteResult, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("server_uri", cfg.ServerURI),
			slog.String("node_id", nodeID),
			slog.String("raw_value", raw),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Write node value failed to complete successfully", args...)
			return
		}
		args = append(args, slog.Any("written", res.Written), slog.Any("read_back", res.ReadBack))
		if !res.Verified {
			lm.logger.Warn(fmt.Sprintf("Verification failed: expected %v, but got %v", res.Written, res.ReadBack), args...)
			return
		}
		lm.logger.Info(fmt.Sprintf("Verified: value of node %s is now %v", nodeID, res.ReadBack), args...)
	}(time.Now())

	return lm.svc.Write(ctx, cfg, nodeID, raw)
}

func (lm loggingMiddleware) Browse(ctx context.Context, cfg opcua.Config, nodeID string) (nodes []opcua.BrowsedNode, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("server_uri", cfg.ServerURI),
			slog.String("node_id", nodeID),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Browse nodes failed to complete successfully", args...)
			return
		}
		args = append(args, slog.Int("count", len(nodes)))
		lm.logger.Info("Browse nodes completed successfully", args...)
	}(time.Now())

	return lm.svc.Browse(ctx, cfg, nodeID)
}
