// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
)

// HandshakeSweeper periodically purges expired handshakes from stores that
// keep them until deleted. Lookups already ignore expired rows, so a missed
// sweep only delays reclaiming space.
type HandshakeSweeper struct {
	repository store.HandshakeRepository
	interval   time.Duration

	logger *logger.Logger
}

func NewHandshakeSweeper(repository store.HandshakeRepository, interval time.Duration, logger *logger.Logger) *HandshakeSweeper {
	return &HandshakeSweeper{
		repository: repository,
		interval:   interval,
		logger:     logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. Sweep failures are
// logged and retried on the next tick.
func (s *HandshakeSweeper) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("handshake sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("handshake sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *HandshakeSweeper) sweep(ctx context.Context) {
	removed, err := s.repository.DeleteExpiredHandshakes(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "HandshakeSweeper.sweep").Msg("failed to purge expired handshakes")
		return
	}

	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("expired handshakes purged")
	}
}
