// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Variable names used by the original deployment scripts. They are read only
// when the namespaced variables are not set.
const (
	legacyTokenSignKeyEnv = "JWT_SECRET"
	legacyDatabaseURLEnv  = "DATABASE_URL"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = os.Getenv(legacyTokenSignKeyEnv)
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = os.Getenv(legacyDatabaseURLEnv)
	}

	return nil
}
