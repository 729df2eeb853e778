package srv

import (
	"context"
	"time"

	"github.com/sandevgo/docbot/pkg/log"
)

// ShutdownTimeout bounds the whole shutdown sequence.
const ShutdownTimeout = 15 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices launches every service in its own goroutine. A start
// failure is fatal.
func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Fatal().Err(err).Msgf("%T failed to start", service)
			}
		}(service)
	}
}

// ShutdownServices blocks until ctx is done, then stops services in
// registration order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()

	logger := log.FromCtx(ctx)
	for _, service := range services {
		if err := service.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}
