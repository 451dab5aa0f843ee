// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/spf13/cobra"

// SetFlags registers the shared connection and operation flags on the root
// command. Defaults are the current values of the package variables, so env
// overrides applied before registration become flag defaults.
func SetFlags(rootCmd *cobra.Command) *cobra.Command {
	rootCmd.PersistentFlags().StringVar(
		&Hostname,
		"hostname",
		Hostname,
		"Hostname of the OPC-UA server",
	)

	rootCmd.PersistentFlags().IntVar(
		&Port,
		"port",
		Port,
		"Port of the OPC-UA server",
	)

	rootCmd.PersistentFlags().StringVar(
		&Path,
		"path",
		Path,
		"Path of the OPC-UA server endpoint",
	)

	rootCmd.PersistentFlags().StringVar(
		&AuthType,
		"auth-type",
		AuthType,
		"Authentication type, anonymous or userpass",
	)

	rootCmd.PersistentFlags().StringVar(
		&Username,
		"username",
		Username,
		"Username for userpass authentication",
	)

	rootCmd.PersistentFlags().StringVar(
		&Password,
		"password",
		Password,
		"Password for userpass authentication",
	)

	rootCmd.PersistentFlags().StringVar(
		&NodeID,
		"node-id",
		NodeID,
		"Node ID to operate on, e.g. ns=2;i=2003",
	)

	rootCmd.PersistentFlags().StringVar(
		&SecurityMode,
		"security-mode",
		SecurityMode,
		"Message security mode, e.g. None, Sign, SignAndEncrypt",
	)

	rootCmd.PersistentFlags().StringVar(
		&SecurityPolicy,
		"security-policy",
		SecurityPolicy,
		"Security policy, e.g. None, Basic256Sha256",
	)

	rootCmd.PersistentFlags().StringVarP(
		&ConfigPath,
		"config",
		"c",
		ConfigPath,
		"Path of an optional TOML file with server defaults",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&RawOutput,
		"raw",
		"r",
		RawOutput,
		"Disables colored output for easier parsing",
	)

	rootCmd.Flags().StringVar(
		&Operation,
		"operation",
		Operation,
		"Operation to perform, read or write",
	)

	rootCmd.Flags().StringVar(
		&Value,
		"value",
		Value,
		"Raw value to write, required for the write operation",
	)

	return rootCmd
}
