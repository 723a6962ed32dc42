// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ObsidianMinor/protrust/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
