package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/handler"
	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/security"
	"github.com/MKhiriev/go-social/internal/server"
	"github.com/MKhiriev/go-social/internal/service"
	"github.com/MKhiriev/go-social/internal/store"
	"github.com/MKhiriev/go-social/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-social-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the application and blocks until the server shuts down. Deferred
// cleanup runs before the error reaches main.
func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Strs("cors_origins", cfg.CORS.AllowedOrigins).
		Str("fallback_access", cfg.Security.FallbackAccess).
		Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	encoder, err := security.NewBCryptEncoder(cfg.App.BcryptCost)
	if err != nil {
		return fmt.Errorf("error creating password encoder: %w", err)
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(store.NewRepositories(db, log), encoder, cfg.App, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	rules, err := security.NewRuleSetFromConfig(cfg.Security)
	if err != nil {
		return fmt.Errorf("error building access rules: %w", err)
	}
	for _, rule := range rules.Rules() {
		log.Debug().Str("rule", rule.String()).Msg("access rule")
	}
	if cfg.Security.FallbackAccess == config.AccessPermit {
		log.Warn().Msg("paths outside the auth and api namespaces are open to anonymous requests")
	}

	handlers, err := handler.NewHandlers(services, rules, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
