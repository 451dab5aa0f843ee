// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package gopcua implements the node value operator on top of the gopcua
// client library. Each operation opens its own session and tears it down
// before returning.
package gopcua

import (
	"context"
	"log/slog"

	opcuaGopcua "github.com/gopcua/opcua"
	"github.com/gopcua/opcua/id"
	uaGopcua "github.com/gopcua/opcua/ua"

	"github.com/absmach/opcua-cli/opcua"
	"github.com/absmach/opcua-cli/pkg/errors"
)

var (
	errFailedConn          = errors.New("failed to connect")
	errFailedRead          = errors.New("failed to read")
	errFailedWrite         = errors.New("failed to write")
	errFailedFindEndpoint  = errors.New("failed to find suitable endpoint")
	errFailedFetchEndpoint = errors.New("failed to fetch OPC-UA server endpoints")
	errFailedParseNodeID   = errors.New("failed to parse NodeID")
	errResponseStatus      = errors.New("response status not OK")
)

var _ opcua.Service = (*service)(nil)

type service struct {
	logger *slog.Logger
}

// NewService returns a node value operator backed by the gopcua client.
func NewService(log *slog.Logger) opcua.Service {
	return service{
		logger: log,
	}
}

func (s service) Read(ctx context.Context, cfg opcua.Config, nodeID string) (opcua.Value, error) {
	nid, err := uaGopcua.ParseNodeID(nodeID)
	if err != nil {
		return opcua.Value{}, errors.Wrap(opcua.ErrConfiguration, errors.Wrap(errFailedParseNodeID, err))
	}

	c, err := s.connect(ctx, cfg)
	if err != nil {
		return opcua.Value{}, err
	}
	defer s.disconnect(c)

	data, err := s.readValue(c, nid)
	if err != nil {
		return opcua.Value{}, err
	}

	return opcua.Value{NodeID: nodeID, Data: data}, nil
}

func (s service) Write(ctx context.Context, cfg opcua.Config, nodeID, raw string) (opcua.WriteResult, error) {
	nid, err := uaGopcua.ParseNodeID(nodeID)
	if err != nil {
		return opcua.WriteResult{}, errors.Wrap(opcua.ErrConfiguration, errors.Wrap(errFailedParseNodeID, err))
	}

	c, err := s.connect(ctx, cfg)
	if err != nil {
		return opcua.WriteResult{}, err
	}
	defer s.disconnect(c)

	dataType, reported, err := s.dataType(c, nid)
	if err != nil {
		return opcua.WriteResult{}, err
	}
	if dataType == opcua.TypeUnknown {
		return opcua.WriteResult{}, errors.Wrap(opcua.ErrUnsupportedType, errors.New(reported))
	}

	converted, err := opcua.Convert(dataType, raw)
	if err != nil {
		return opcua.WriteResult{}, err
	}

	variant, err := uaGopcua.NewVariant(converted)
	if err != nil {
		return opcua.WriteResult{}, errors.Wrap(opcua.ErrConversion, err)
	}

	req := &uaGopcua.WriteRequest{
		NodesToWrite: []*uaGopcua.WriteValue{
			{
				NodeID:      nid,
				AttributeID: uaGopcua.AttributeIDValue,
				Value: &uaGopcua.DataValue{
					EncodingMask: uaGopcua.DataValueValue,
					Value:        variant,
				},
			},
		},
	}

	resp, err := c.Write(req)
	if err != nil {
		return opcua.WriteResult{}, errors.Wrap(errFailedWrite, err)
	}
	if resp.Results[0] != uaGopcua.StatusOK {
		return opcua.WriteResult{}, errors.Wrap(errFailedWrite, errResponseStatus)
	}

	s.logger.Info("Updated node value",
		slog.String("node_id", nodeID),
		slog.String("data_type", dataType.String()),
		slog.Any("value", converted),
	)

	readBack, err := s.readValue(c, nid)
	if err != nil {
		return opcua.WriteResult{}, err
	}

	return opcua.WriteResult{
		NodeID:   nodeID,
		Written:  converted,
		ReadBack: readBack,
		Verified: opcua.Match(converted, readBack),
	}, nil
}

func (s service) connect(ctx context.Context, cfg opcua.Config) (*opcuaGopcua.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	c := opcuaGopcua.NewClient(cfg.ServerURI, opts...)
	if err := c.Connect(ctx); err != nil {
		return nil, errors.Wrap(opcua.ErrConnection, errors.Wrap(errFailedConn, err))
	}

	s.logger.Info("Connected to OPC-UA server", slog.String("server_uri", cfg.ServerURI))

	return c, nil
}

func (s service) disconnect(c *opcuaGopcua.Client) {
	if err := c.Close(); err != nil {
		s.logger.Warn("Failed to close OPC-UA session", slog.Any("error", err))
		return
	}
	s.logger.Info("Disconnected from OPC-UA server")
}

// clientOptions builds the session options for the configured credential
// variant. Userpass and explicit security settings need the matching server
// endpoint, so those go through endpoint discovery first.
func clientOptions(cfg opcua.Config) ([]opcuaGopcua.Option, error) {
	if cfg.AuthType == opcua.AuthAnonymous && cfg.SecurityMode == "" && cfg.SecurityPolicy == "" {
		return []opcuaGopcua.Option{
			opcuaGopcua.SecurityMode(uaGopcua.MessageSecurityModeNone),
		}, nil
	}

	mode := cfg.SecurityMode
	if mode == "" {
		mode = "None"
	}
	policy := cfg.SecurityPolicy
	if policy == "" {
		policy = "None"
	}

	endpoints, err := opcuaGopcua.GetEndpoints(cfg.ServerURI)
	if err != nil {
		return nil, errors.Wrap(opcua.ErrConnection, errors.Wrap(errFailedFetchEndpoint, err))
	}

	ep := opcuaGopcua.SelectEndpoint(endpoints, policy, uaGopcua.MessageSecurityModeFromString(mode))
	if ep == nil {
		return nil, errors.Wrap(opcua.ErrConnection, errFailedFindEndpoint)
	}

	auth := opcuaGopcua.AuthAnonymous()
	tokenType := uaGopcua.UserTokenTypeAnonymous
	if cfg.AuthType == opcua.AuthUserPass {
		auth = opcuaGopcua.AuthUsername(cfg.Username, cfg.Password)
		tokenType = uaGopcua.UserTokenTypeUserName
	}

	return []opcuaGopcua.Option{
		opcuaGopcua.SecurityPolicy(policy),
		opcuaGopcua.SecurityModeString(mode),
		auth,
		opcuaGopcua.SecurityFromEndpoint(ep, tokenType),
	}, nil
}

func (s service) readValue(c *opcuaGopcua.Client, nid *uaGopcua.NodeID) (interface{}, error) {
	req := &uaGopcua.ReadRequest{
		MaxAge: 2000,
		NodesToRead: []*uaGopcua.ReadValueID{
			{NodeID: nid, AttributeID: uaGopcua.AttributeIDValue},
		},
		TimestampsToReturn: uaGopcua.TimestampsToReturnBoth,
	}

	resp, err := c.Read(req)
	if err != nil {
		return nil, errors.Wrap(errFailedRead, err)
	}
	if resp.Results[0].Status != uaGopcua.StatusOK {
		return nil, errors.Wrap(errFailedRead, errResponseStatus)
	}

	return resp.Results[0].Value.Value(), nil
}

// dataType reads the node's DataType attribute and maps it to a conversion
// rule. The reported node id string is returned for diagnostics when the
// type is not supported.
func (s service) dataType(c *opcuaGopcua.Client, nid *uaGopcua.NodeID) (opcua.DataType, string, error) {
	req := &uaGopcua.ReadRequest{
		NodesToRead: []*uaGopcua.ReadValueID{
			{NodeID: nid, AttributeID: uaGopcua.AttributeIDDataType},
		},
		TimestampsToReturn: uaGopcua.TimestampsToReturnNeither,
	}

	resp, err := c.Read(req)
	if err != nil {
		return opcua.TypeUnknown, "", errors.Wrap(errFailedRead, err)
	}
	if resp.Results[0].Status != uaGopcua.StatusOK {
		return opcua.TypeUnknown, "", errors.Wrap(errFailedRead, errResponseStatus)
	}

	reported := resp.Results[0].Value.NodeID()

	return mapDataType(reported.IntID()), reported.String(), nil
}

func mapDataType(v uint32) opcua.DataType {
	switch v {
	case id.Boolean:
		return opcua.TypeBoolean
	case id.SByte:
		return opcua.TypeSByte
	case id.Byte:
		return opcua.TypeByte
	case id.Int16:
		return opcua.TypeInt16
	case id.UInt16:
		return opcua.TypeUInt16
	case id.Int32:
		return opcua.TypeInt32
	case id.UInt32:
		return opcua.TypeUInt32
	case id.Int64:
		return opcua.TypeInt64
	case id.UInt64:
		return opcua.TypeUInt64
	case id.Float:
		return opcua.TypeFloat
	case id.Double:
		return opcua.TypeDouble
	case id.String:
		return opcua.TypeString
	default:
		return opcua.TypeUnknown
	}
}
