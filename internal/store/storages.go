package store

import (
	"context"

	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
)

// Storages groups the repositories built on one database connection.
type Storages struct {
	UserRepository       UserRepository
	SkillblockRepository SkillblockRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations when configured to
// and builds every repository.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err := db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("func", "NewStorages").Msg("migrations applied")
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		SkillblockRepository: NewSkillblockRepository(db, log),
		db:                   db,
	}, nil
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
