// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

// Package main is the entry point for the protoc-gen-rust binary.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ObsidianMinor/protrust/cmd/protoc-gen-rust/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
