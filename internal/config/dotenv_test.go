// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_SetsUnsetVariables(t *testing.T) {
	clearEnvVars(t)
	path := writeTempConfig(t, ".env", "APP_TOKEN_SIGN_KEY=from-dotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv("APP_TOKEN_SIGN_KEY") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("APP_TOKEN_SIGN_KEY"))
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "from-env"})
	path := writeTempConfig(t, ".env", "APP_TOKEN_SIGN_KEY=from-dotenv\n")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("APP_TOKEN_SIGN_KEY"))
}

func TestLoadDotEnv_MalformedFile(t *testing.T) {
	path := writeTempConfig(t, ".env", "BAD-KEY=value\n")

	err := loadDotEnv(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading dotenv file")
}
