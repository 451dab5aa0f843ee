// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/spf13/cobra"

// NewBrowseCmd returns the browse command.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse variable nodes",
		Long:  "List variable nodes reachable from the given node with their data types. Without --node-id browsing starts at the Objects folder.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := serverConfig()
			if err := cfg.Validate(); err != nil {
				logErrorCmd(*cmd, err)
				return err
			}

			nodes, err := svc.Browse(cmd.Context(), cfg, NodeID)
			if err != nil {
				logErrorCmd(*cmd, err)
				return err
			}

			logJSONCmd(*cmd, nodes)
			return nil
		},
	}
}
