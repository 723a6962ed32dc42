// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/ObsidianMinor/protrust/internal/plugin"
)

// NewRootCmd creates and returns the root command for the CLI. Invoked
// with no subcommand it speaks the protoc plugin protocol on stdin and
// stdout, which is how protoc runs the binary.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "protoc-gen-rust",
		Short: "Generate Rust sources for the protrust runtime from protobuf schemas",
		Long: `protoc-gen-rust generates Rust sources targeting the protrust runtime crate.

Run under protoc it acts as a standard code generator plugin:

  protoc --rust_out=gen example.proto

Run directly it offers project commands for generating from a saved
descriptor set without involving protoc.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plugin.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
