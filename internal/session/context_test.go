// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		config  string // empty means no config file is written
		wantErr error
	}{
		{
			name:    "not initialized",
			config:  "",
			wantErr: ErrNotInitialized,
		},
		{
			name:    "invalid yaml",
			config:  "version: [not an int\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown key",
			config:  "version: 1\nbogus: true\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unsupported version",
			config:  "version: 99\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:   "valid",
			config: "version: 1\ndescriptor_set: descriptors.pb\nout: gen\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(tt.config), 0o600))
			}
			chdir(t, dir)

			ctx, err := Load(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			sessionCtx := From(ctx)
			require.NotNil(t, sessionCtx)
			assert.Equal(t, "descriptors.pb", sessionCtx.Config.DescriptorSet)
			assert.Equal(t, "gen", sessionCtx.Config.Out)
		})
	}
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
