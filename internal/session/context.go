// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ObsidianMinor/protrust/internal/config"
)

var (
	// ErrNotInitialized indicates no protrust.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a protrust project (protrust.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the protrust configuration file.
const ConfigFileName = "protrust.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the validated project configuration.
	Config *config.Config
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the protrust Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	sessionCtx := &Context{
		Config: cfg,
	}

	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

// From extracts the protrust Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
