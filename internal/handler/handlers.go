package handler

import (
	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/handler/http"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, storage http.Pinger, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, storage, logger),
	}, nil
}
