package http

import (
	"context"

	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/service"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	auth     config.Auth
	server   config.Server
	storage  Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, storage Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		auth:     cfg.Auth,
		server:   cfg.Server,
		storage:  storage,
		logger:   logger,
	}
}
