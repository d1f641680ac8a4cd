package service

import (
	"github.com/MarkAnthonyM/BlockPlot/internal/adapter"
	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/crypto"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/internal/validators"
)

type Services struct {
	AuthService       AuthService
	UserDirectory     UserDirectory
	SkillblockService SkillblockService
	SyncService       SyncService
}

// Dependencies are the collaborators the services are built from.
type Dependencies struct {
	Storages  *store.Storages
	Sessions  SessionStore
	Verifier  TokenVerifier
	Identity  adapter.IdentityProvider
	Analytics adapter.AnalyticsSource
	Sealer    crypto.KeySealer
	IDs       IDGenerator
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	users := deps.Storages.UserRepository
	blocks := deps.Storages.SkillblockRepository

	directory := NewUserDirectory(users, logger)

	return &Services{
		AuthService:       NewAuthService(cfg.Auth, deps.Identity, deps.Verifier, directory, users, deps.Sessions, deps.IDs, logger),
		UserDirectory:     directory,
		SkillblockService: NewSkillblockService(users, blocks, deps.Sealer, validators.NewSkillblockValidator(), cfg.App.MaxSkillblocks, logger),
		SyncService:       NewSyncService(users, blocks, deps.Analytics, deps.Sealer, logger),
	}
}
