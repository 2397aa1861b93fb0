package workers

import (
	"context"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers needed by the given storages. The handshake
// sweeper is only started when the handshake store cannot expire records by
// itself.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if !storages.HandshakesExpireNatively {
		w.workers = append(w.workers, NewHandshakeSweeper(storages.HandshakeRepository, cfg.HandshakeSweepInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker and waits for all of them to return.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
