package http

import (
	"time"

	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/security"
	"github.com/MKhiriev/go-social/internal/service"
)

type Handler struct {
	services *service.Services
	rules    *security.RuleSet

	cors           config.CORS
	prefixes       config.Security
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, rules *security.RuleSet, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		rules:          rules,
		cors:           cfg.CORS,
		prefixes:       cfg.Security,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
