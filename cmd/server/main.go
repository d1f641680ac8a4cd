package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/adapter"
	"github.com/MarkAnthonyM/BlockPlot/internal/auth"
	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/crypto"
	"github.com/MarkAnthonyM/BlockPlot/internal/handler"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/server"
	"github.com/MarkAnthonyM/BlockPlot/internal/service"
	"github.com/MarkAnthonyM/BlockPlot/internal/session"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
)

// providerTimeout bounds token exchange and JWKS requests.
const providerTimeout = 15 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("blockplot-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.New(os.Stdout, "blockplot-server", logger.ParseLevel(cfg.App.LogLevel))
	log.Info().Str("version", cfg.App.Version).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	sealer, err := crypto.NewKeySealer(cfg.App.KeySealSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api key sealer")
	}

	providerClient := utils.NewHTTPClient(cfg.Auth.ProviderURL(), providerTimeout)
	sessions := session.NewMemoryStore()

	services := service.NewServices(service.Dependencies{
		Storages:  storages,
		Sessions:  sessions,
		Verifier:  auth.NewVerifier(keyProvider(cfg.Auth, providerClient), cfg.Auth.ClientID, cfg.Auth.Issuer()),
		Identity:  adapter.NewIdentityProvider(providerClient, cfg.Auth, log),
		Analytics: adapter.NewAnalyticsSource(cfg.Analytics, log),
		Sealer:    sealer,
		IDs:       utils.NewUUIDGenerator(),
	}, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped")
		_ = storages.Close()
		os.Exit(1)
	}
}

// keyProvider selects how identity token signatures are checked.
func keyProvider(cfg config.Auth, client *utils.HTTPClient) auth.KeyProvider {
	if cfg.SigningMode == config.SigningModeHS256 {
		return auth.NewSharedSecret(cfg.SharedSecret)
	}
	return auth.NewJWKSKeySet(client, cfg.JWKSCacheTTL)
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
