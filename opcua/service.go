// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package opcua contains the domain model of the node value operator: the
// server connection settings, the node value types this client understands
// and the service contract fulfilled by the protocol implementation.
package opcua

import (
	"context"

	"github.com/absmach/opcua-cli/pkg/errors"
)

// Supported authentication modes.
const (
	AuthAnonymous = "anonymous"
	AuthUserPass  = "userpass"
)

var (
	// ErrConfiguration indicates an invalid request that is rejected
	// before any network activity is attempted.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrConnection indicates a failure to establish the OPC-UA session.
	ErrConnection = errors.New("failed to connect to OPC-UA server")

	// ErrUnsupportedType indicates that the node's declared data type has
	// no conversion rule.
	ErrUnsupportedType = errors.New("unsupported node data type")

	// ErrConversion indicates that a raw value could not be parsed into
	// the node's declared data type.
	ErrConversion = errors.New("failed to convert value")

	errMissingCredentials = errors.New("username and password must be provided for userpass authentication")
	errInvalidAuthType    = errors.New("invalid authentication type")
)

// Config holds the OPC-UA server settings of a single invocation.
type Config struct {
	ServerURI      string
	AuthType       string
	Username       string
	Password       string
	SecurityMode   string
	SecurityPolicy string
}

// Validate checks the credential variant before any connection attempt.
func (c Config) Validate() error {
	switch c.AuthType {
	case AuthAnonymous:
	case AuthUserPass:
		if c.Username == "" || c.Password == "" {
			return errors.Wrap(ErrConfiguration, errMissingCredentials)
		}
	default:
		return errors.Wrap(ErrConfiguration, errInvalidAuthType)
	}

	return nil
}

// Value is the result of a node read, reported in the node's native form.
type Value struct {
	NodeID string
	Data   interface{}
}

// WriteResult is the outcome of a write with its verification read-back.
// Verified being false is not an error: the write was accepted by the
// server, but the read-back returned a different value.
type WriteResult struct {
	NodeID   string
	Written  interface{}
	ReadBack interface{}
	Verified bool
}

// BrowsedNode represents the details of a browsed OPC-UA variable node.
type BrowsedNode struct {
	NodeID      string
	BrowseName  string
	Description string
	Path        string
	DataType    string
	Writable    bool
}

// Service specifies an API that must be fulfilled by the node value
// operator implementation and all of its decorators (e.g. logging).
type Service interface {
	// Read returns the current value of the given node.
	Read(ctx context.Context, cfg Config, nodeID string) (Value, error)

	// Write converts the raw value to the node's declared data type,
	// writes it and verifies the result with an immediate read-back.
	Write(ctx context.Context, cfg Config, nodeID, raw string) (WriteResult, error)

	// Browse lists variable nodes reachable from the given node.
	Browse(ctx context.Context, cfg Config, nodeID string) ([]BrowsedNode, error)
}
