// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/absmach/opcua-cli/opcua"
	"github.com/absmach/opcua-cli/pkg/errors"
)

// Supported operations.
const (
	ReadOp  = "read"
	WriteOp = "write"
)

var (
	errInvalidOperation = errors.New("invalid operation, please enter 'read' or 'write'")
	errMissingNodeID    = errors.New("node id must be provided")
	errMissingValue     = errors.New("value must be provided for write operation")
)

// RunOperation performs a single read or write against the configured
// server. All request validation happens before the service is called, so
// a misconfigured invocation never touches the network.
func RunOperation(cmd *cobra.Command, _ []string) error {
	if err := validateRequest(cmd); err != nil {
		logErrorCmd(*cmd, err)
		return err
	}

	cfg := serverConfig()
	if err := cfg.Validate(); err != nil {
		logErrorCmd(*cmd, err)
		return err
	}

	switch Operation {
	case ReadOp:
		value, err := svc.Read(cmd.Context(), cfg, NodeID)
		if err != nil {
			logErrorCmd(*cmd, err)
			return err
		}
		logValueCmd(*cmd, value.NodeID, value.Data)
	case WriteOp:
		res, err := svc.Write(cmd.Context(), cfg, NodeID, Value)
		if err != nil {
			logErrorCmd(*cmd, err)
			return err
		}
		if !res.Verified {
			logWarnCmd(*cmd, fmt.Sprintf("Verification failed: expected %v, but got %v", res.Written, res.ReadBack))
			return nil
		}
		logOKCmd(*cmd, fmt.Sprintf("Verified: value of node %s is now %v", res.NodeID, res.ReadBack))
	}

	return nil
}

func validateRequest(cmd *cobra.Command) error {
	switch Operation {
	case ReadOp, WriteOp:
	default:
		return errors.Wrap(opcua.ErrConfiguration, errInvalidOperation)
	}

	if NodeID == "" {
		return errors.Wrap(opcua.ErrConfiguration, errMissingNodeID)
	}

	if Operation == WriteOp && !cmd.Flags().Changed("value") {
		return errors.Wrap(opcua.ErrConfiguration, errMissingValue)
	}

	return nil
}

func serverConfig() opcua.Config {
	return opcua.Config{
		ServerURI:      fmt.Sprintf("opc.tcp://%s:%d%s", Hostname, Port, Path),
		AuthType:       AuthType,
		Username:       Username,
		Password:       Password,
		SecurityMode:   SecurityMode,
		SecurityPolicy: SecurityPolicy,
	}
}
