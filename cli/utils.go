// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

var (
	// Hostname of the OPC-UA server.
	Hostname = "localhost"
	// Port of the OPC-UA server.
	Port = 4840
	// Path of the OPC-UA server endpoint.
	Path = "/freeopcua/server/"
	// AuthType is the authentication mode, anonymous or userpass.
	AuthType string = ""
	// Username credential for userpass authentication.
	Username string = ""
	// Password credential for userpass authentication.
	Password string = ""
	// Operation to perform, read or write.
	Operation string = ""
	// NodeID of the node to operate on, e.g. ns=2;i=2003.
	NodeID string = ""
	// Value is the raw value to write.
	Value string = ""
	// SecurityMode of the secure channel, e.g. None, Sign, SignAndEncrypt.
	SecurityMode string = ""
	// SecurityPolicy of the secure channel, e.g. None, Basic256Sha256.
	SecurityPolicy string = ""
	// ConfigPath is the path of an optional TOML file with server defaults.
	ConfigPath string = ""
	// RawOutput disables colored output for easier parsing.
	RawOutput bool = false
)

func logJSONCmd(cmd cobra.Command, iList ...interface{}) {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

func logWarnCmd(cmd cobra.Command, w string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), w)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", color.YellowString(w))
}

func logOKCmd(cmd cobra.Command, m string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), m)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", color.BlueString(m))
}

func logValueCmd(cmd cobra.Command, nodeID string, v interface{}) {
	line := fmt.Sprintf("Value of node %s: %v", nodeID, v)
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", color.GreenString(line))
}
