package impl

import (
	"context"
	"log/slog"

	"indieneer/config"
	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/domain/repository"
	"indieneer/internal/usecase"
)

const healthOK = "ok"

type healthService struct {
	pinger      repository.Pinger
	environment string
	version     string
	logger      *slog.Logger
}

// NewHealthService is the constructor for healthService.
func NewHealthService(pinger repository.Pinger, cfg *config.Config, logger *slog.Logger) usecase.HealthUsecase {
	return &healthService{
		pinger:      pinger,
		environment: cfg.Env.Env,
		version:     cfg.Env.Version,
		logger:      logger,
	}
}

// Check never fails; a database error is reported in the DB field.
func (srv *healthService) Check(ctx context.Context) *usecase.HealthOutput {
	out := &usecase.HealthOutput{
		DB:          healthOK,
		Environment: srv.environment,
		Version:     srv.version,
	}

	if err := srv.pinger.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Database ping failed", slog.Any("error", err))
		out.DB = err.Error()
	}

	return out
}
