// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/absmach/opcua-cli/cli"
)

// newRootCmd builds a root command the way main does, with the package
// level flag variables reset to their defaults.
func newRootCmd() *cobra.Command {
	cli.Hostname = "localhost"
	cli.Port = 4840
	cli.Path = "/freeopcua/server/"
	cli.AuthType = ""
	cli.Username = ""
	cli.Password = ""
	cli.Operation = ""
	cli.NodeID = ""
	cli.Value = ""
	cli.SecurityMode = ""
	cli.SecurityPolicy = ""
	cli.ConfigPath = ""
	cli.RawOutput = false

	rootCmd := &cobra.Command{
		Use:           "opcua-cli",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cli.ParseConfig(cmd)
		},
		RunE: cli.RunOperation,
	}

	rootCmd.AddCommand(cli.NewBrowseCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	return cli.SetFlags(rootCmd)
}

func executeCommand(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buffer := new(bytes.Buffer)
	root.SetOut(buffer)
	root.SetErr(buffer)
	root.SetArgs(args)
	err := root.Execute()

	return buffer.String(), err
}
