package handler

import (
	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/handler/http"
	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/security"
	"github.com/MKhiriev/go-social/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, rules *security.RuleSet, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if rules == nil {
		return nil, errNoAccessRules
	}

	return &Handlers{HTTP: http.NewHandler(services, rules, cfg, logger)}, nil
}
