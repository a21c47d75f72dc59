// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seed fills the review market with fake users, the console items,
// reviews and comments.
//
// By default it connects to the configured database (the same configuration
// sources as the server) and wipes it first. When SEED_API_ADDRESS is set it
// seeds a running server through the REST API instead. The seeded
// credentials are printed to stdout only when SEED_PRINT_CREDENTIALS is true.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-review-market/internal/adapter"
	"github.com/MKhiriev/go-review-market/internal/config"
	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/service"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/MKhiriev/go-review-market/models"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/caarlos0/env/v11"
)

type seedConfig struct {
	APIAddress string        `env:"SEED_API_ADDRESS"`
	Users      int           `env:"SEED_USERS" envDefault:"5"`
	Timeout    time.Duration `env:"SEED_TIMEOUT" envDefault:"15s"`

	PrintCredentials bool `env:"SEED_PRINT_CREDENTIALS" envDefault:"false"`
}

func main() {
	log := logger.NewLogger("review-market-seed")
	ctx := log.WithContext(context.Background())

	var seedCfg seedConfig
	if err := env.Parse(&seedCfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing seed configs")
	}

	var m market
	if seedCfg.APIAddress != "" {
		client, err := adapter.NewHTTPServerAdapter(seedCfg.APIAddress, seedCfg.Timeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating API client")
		}
		m = newAPIMarket(client, log)
	} else {
		cfg, err := config.GetStructuredConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("error getting configs")
		}

		db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
		defer db.Close()

		if !cfg.Storage.DB.SkipMigrations {
			if err = db.Migrate(); err != nil {
				log.Fatal().Err(err).Msg("error applying migrations")
			}
		}

		services, err := service.NewServices(store.NewStorages(db, log), cfg, models.NewAppBuildInfo("seed", "N/A", "N/A"), log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating services")
		}
		m = newServiceMarket(db, services)
	}

	var creds io.Writer = io.Discard
	if seedCfg.PrintCredentials {
		creds = os.Stdout
	}

	log.Info().Msg("seeding DB")
	s, err := seed(ctx, m, gofakeit.New(0), seedCfg.Users, creds)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding")
	}

	log.Info().
		Int("users", s.Users).
		Int("items", s.Items).
		Int("reviews", s.Reviews).
		Int("comments", s.Comments).
		Msg("DB seeded")
}
