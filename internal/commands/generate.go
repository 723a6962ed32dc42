// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ObsidianMinor/protrust/internal/config"
	"github.com/ObsidianMinor/protrust/internal/prompts"
	"github.com/ObsidianMinor/protrust/internal/rustgen"
	"github.com/ObsidianMinor/protrust/internal/schema"
	"github.com/ObsidianMinor/protrust/internal/session"
)

type generateOptions struct {
	descriptorSet string
	out           string
	extension     string
	imports       []string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Rust sources from a descriptor set",
		Long: `Generate Rust sources from a serialized FileDescriptorSet without
involving protoc. Settings come from protrust.yaml in the current
directory; flags override the configuration.`,
		Example: `  # Generate using protrust.yaml
  protoc-gen-rust generate

  # Generate without a project
  protoc-gen-rust generate --descriptor-set ./descriptors.pb --out ./gen`,
		Args: cobra.NoArgs,
		// protrust.yaml is optional when the flags carry everything.
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := session.PreRunLoad(cmd, args); err != nil && !errors.Is(err, session.ErrNotInitialized) {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, session.FromCommand(cmd))
		},
	}

	cmd.Flags().StringVarP(&opts.descriptorSet, "descriptor-set", "d", "", "Path to a serialized FileDescriptorSet")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output directory for generated sources")
	cmd.Flags().StringVarP(&opts.extension, "extension", "e", "", "File extension for generated source units")
	cmd.Flags().StringArrayVarP(&opts.imports, "import", "i", nil, "Extra module to splice into every generated file module (repeatable)")

	return cmd
}

func runGenerate(opts *generateOptions, ctx *session.Context) error {
	if ctx != nil {
		applyConfig(opts, ctx.Config)
	}

	if opts.descriptorSet == "" {
		return errors.New("no descriptor set: run init or pass --descriptor-set")
	}
	if opts.out == "" {
		opts.out = "."
	}

	genOpts := rustgen.DefaultOptions()
	if opts.extension != "" {
		genOpts.FileExtension = opts.extension
	}
	genOpts.Imports = opts.imports

	data, err := os.ReadFile(opts.descriptorSet) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("failed to read descriptor set: %w", err)
	}

	set := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(data, set); err != nil {
		return fmt.Errorf("failed to unmarshal descriptor set: %w", err)
	}

	files, err := schema.Build(set.GetFile())
	if err != nil {
		return err
	}

	for _, f := range files {
		content, err := rustgen.GenerateFile(f, genOpts)
		if err != nil {
			return err
		}
		path := filepath.Join(opts.out, rustgen.OutputFilePath(f, genOpts))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	manifest := rustgen.GenerateManifest(files, genOpts)
	manifestPath := filepath.Join(opts.out, "mod.rs")
	if err := os.WriteFile(manifestPath, manifest, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Descriptor set", Value: opts.descriptorSet},
		{Label: "Files", Value: strconv.Itoa(len(files))},
		{Label: "Output", Value: opts.out},
	}, "Generation completed")

	return nil
}

// applyConfig fills options the flags left unset.
func applyConfig(opts *generateOptions, cfg *config.Config) {
	if opts.descriptorSet == "" {
		opts.descriptorSet = cfg.DescriptorSet
	}
	if opts.out == "" {
		opts.out = cfg.Out
	}
	if opts.extension == "" {
		opts.extension = cfg.Extension
	}
	if len(opts.imports) == 0 {
		opts.imports = cfg.Imports
	}
}
