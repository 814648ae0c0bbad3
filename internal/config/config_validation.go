// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.DB.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.App.SessionSignKey == "" || cfg.App.SessionIssuer == "" {
		return fmt.Errorf("%w: session sign key and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: session TTL must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Session.RedisURL == "" && cfg.Workers.SessionSweepInterval <= 0 {
		return fmt.Errorf("%w: in-memory sessions need a positive sweep interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (db DB) validate() error {
	switch db.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if db.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	return nil
}
