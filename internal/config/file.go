// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// parseFile reads the config file at path with viper and decodes it into a
// [StructuredConfig]. The format is derived from the file extension (json,
// yaml, toml, ...). Durations may be written as strings such as "30s".
func parseFile(path string) (*StructuredConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := new(StructuredConfig)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return cfg, nil
}
