// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(descriptorSet, out, extension *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Descriptor set").
				Description("Path to a serialized FileDescriptorSet (protoc --descriptor_set_out)").
				Placeholder("./descriptors.pb").
				Validate(requiredValidator("descriptor set path")).
				Value(descriptorSet),
			huh.NewInput().
				Title("Output directory").
				Placeholder("./gen").
				Validate(requiredValidator("output directory")).
				Value(out),
			huh.NewInput().
				Title("File extension").
				Description("Extension for generated source units").
				Placeholder(".rs").
				Validate(func(s string) error {
					if s != "" && !strings.HasPrefix(s, ".") {
						return errors.New("extension must start with '.'")
					}
					return nil
				}).
				Value(extension),
		),
	).WithTheme(Theme()).Run()
}
