// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	context "context"

	"github.com/stretchr/testify/mock"

	"github.com/absmach/opcua-cli/opcua"
)

var _ opcua.Service = (*Service)(nil)

// Service is a mock of the node value operator for CLI tests.
type Service struct {
	mock.Mock
}

func (m *Service) Read(ctx context.Context, cfg opcua.Config, nodeID string) (opcua.Value, error) {
	ret := m.Called(ctx, cfg, nodeID)

	return ret.Get(0).(opcua.Value), ret.Error(1)
}

func (m *Service) Write(ctx context.Context, cfg opcua.Config, nodeID, raw string) (opcua.WriteResult, error) {
	ret := m.Called(ctx, cfg, nodeID, raw)

	return ret.Get(0).(opcua.WriteResult), ret.Error(1)
}

func (m *Service) Browse(ctx context.Context, cfg opcua.Config, nodeID string) ([]opcua.BrowsedNode, error) {
	ret := m.Called(ctx, cfg, nodeID)

	return ret.Get(0).([]opcua.BrowsedNode), ret.Error(1)
}
