// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ObsidianMinor/protrust/internal/config"
	"github.com/ObsidianMinor/protrust/internal/prompts"
	"github.com/ObsidianMinor/protrust/internal/session"
)

type initOptions struct {
	descriptorSet  string
	out            string
	extension      string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new protrust project",
		Long: `Initialize a new protrust project with a protrust.yaml configuration file.
The configuration records the descriptor set to generate from and where
generated sources are written, so later runs of "generate" need no flags.`,
		Example: `  # Interactive mode
  protoc-gen-rust init

  # Non-interactive
  protoc-gen-rust init --descriptor-set ./descriptors.pb --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.descriptorSet, "descriptor-set", "d", "", "Path to a serialized FileDescriptorSet")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "./gen", "Output directory for generated sources")
	cmd.Flags().StringVarP(&opts.extension, "extension", "e", "", "File extension for generated source units")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --descriptor-set)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("protrust.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.descriptorSet == "" {
			return errors.New("non-interactive mode requires --descriptor-set")
		}
	} else {
		if err := prompts.RunInitForm(
			&opts.descriptorSet,
			&opts.out,
			&opts.extension,
		); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:       config.CurrentConfigVersion,
		DescriptorSet: opts.descriptorSet,
		Out:           opts.out,
		Extension:     opts.extension,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Descriptor set", Value: cfg.DescriptorSet},
		{Label: "Output", Value: cfg.Out},
	}, "Initialization completed")

	return nil
}
