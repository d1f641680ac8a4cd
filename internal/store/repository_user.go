package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository]
// over the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user   models.User
		apiKey sql.NullString
	)

	err := row.Scan(
		&user.UserID,
		&user.AuthSubject,
		&apiKey,
		&user.KeyPresent,
		&user.BlockCount,
		&user.CreatedAt,
		&user.LastLoginAt,
		&user.BlocksLastSyncedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if apiKey.Valid {
		user.APIKey = &apiKey.String
	}
	user.BlocksLastSyncedAt = models.TruncateToDay(user.BlocksLastSyncedAt)

	return user, nil
}

// CreateUser inserts a fresh account for user.AuthSubject with no API key,
// zero blocks and all timestamps taken from user.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.AuthSubject,
		user.CreatedAt,
		user.LastLoginAt,
		models.TruncateToDay(user.BlocksLastSyncedAt),
	)

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("user with this subject already exists")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "*userRepository.CreateUser").Int64("user_id", created.UserID).Msg("user created")
	return created, nil
}

// FindUserBySubject returns the user whose auth_subject equals subject, or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserBySubject(ctx context.Context, subject string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserBySubject", findUserBySubject, subject)
}

// FindUserByID returns the user with the given id, or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, arg))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateLastLogin sets last_login_at of the user.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return r.execOnUser(ctx, "*userRepository.UpdateLastLogin", updateLastLogin, at, userID)
}

// UpdateBlocksLastSynced sets blocks_last_synced_at of the user to day.
func (r *userRepository) UpdateBlocksLastSynced(ctx context.Context, userID int64, day time.Time) error {
	return r.execOnUser(ctx, "*userRepository.UpdateBlocksLastSynced", updateBlocksLastSynced, models.TruncateToDay(day), userID)
}

// SetAPIKey stores sealedKey and sets key_present.
func (r *userRepository) SetAPIKey(ctx context.Context, userID int64, sealedKey string) error {
	return r.execOnUser(ctx, "*userRepository.SetAPIKey", setAPIKey, sealedKey, userID)
}

// execOnUser runs an idempotent single-user UPDATE and fails with
// [ErrNoUserWasFound] when no row matched.
func (r *userRepository) execOnUser(ctx context.Context, funcName, stmt string, value any, userID int64) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, stmt, value, userID)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().Str("func", funcName).Int64("user_id", userID).Msg("no user was updated")
		return ErrNoUserWasFound
	}

	return nil
}
