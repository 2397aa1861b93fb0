// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every failing group contributes its own sentinel; the result is joined so
// a caller sees all problems at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.TokenDuration <= 0 || cfg.App.HandshakeTTL <= 0 ||
		cfg.App.PasswordMinLength < 1 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Workers.HandshakeSweepInterval <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}
