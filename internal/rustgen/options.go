// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import (
	"fmt"
	"strings"
)

// DefaultFileExtension is the extension of generated source units when the
// invocation does not override it.
const DefaultFileExtension = ".rs"

// Options is the recognized generator configuration.
type Options struct {
	// FileExtension is appended to each generated unit's path.
	FileExtension string

	// Imports lists extra module names spliced into every generated
	// file's root module, in order.
	Imports []string
}

// DefaultOptions returns the options used when no parameter is supplied.
func DefaultOptions() Options {
	return Options{FileExtension: DefaultFileExtension}
}

// ParseOptions parses the protoc plugin parameter: comma-separated
// key=value pairs. Recognized keys are "file_extension" and "imports"
// (repeatable). An unrecognized key rejects the whole invocation before
// any generation starts.
func ParseOptions(parameter string) (Options, error) {
	opts := DefaultOptions()
	if parameter == "" {
		return opts, nil
	}

	for _, pair := range strings.Split(parameter, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		switch key {
		case "file_extension":
			if value == "" || !strings.HasPrefix(value, ".") {
				return Options{}, fmt.Errorf("file_extension must start with '.', got %q", value)
			}
			opts.FileExtension = value
		case "imports":
			if value == "" {
				return Options{}, fmt.Errorf("imports requires a module name")
			}
			opts.Imports = append(opts.Imports, value)
		default:
			return Options{}, fmt.Errorf("unrecognized option %q", key)
		}
	}
	return opts, nil
}
