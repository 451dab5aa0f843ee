// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the opcua-cli command definitions.
package cli

import "github.com/absmach/opcua-cli/opcua"

var svc opcua.Service

// SetService sets the node value operator used by the commands.
func SetService(s opcua.Service) {
	svc = s
}
