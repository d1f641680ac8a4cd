package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

type userDirectory struct {
	users  store.UserRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewUserDirectory(users store.UserRepository, logger *logger.Logger) UserDirectory {
	return &userDirectory{users: users, now: time.Now, logger: logger}
}

// GetOrCreate implements [UserDirectory]. Two first logins of the same
// subject may race; the loser of the insert re-reads the winner's row.
func (d *userDirectory) GetOrCreate(ctx context.Context, claims models.VerifiedClaims) (models.User, error) {
	log := logger.FromContext(ctx)

	if claims.Subject == "" {
		return models.User{}, fmt.Errorf("%w: empty subject", ErrInvalidDataProvided)
	}

	user, err := d.users.FindUserBySubject(ctx, claims.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "userDirectory.GetOrCreate").Msg("error looking up user by subject")
		return models.User{}, err
	}

	now := d.now().UTC()
	user, err = d.users.CreateUser(ctx, models.User{
		AuthSubject:        claims.Subject,
		KeyPresent:         false,
		BlockCount:         0,
		CreatedAt:          now,
		LastLoginAt:        now,
		BlocksLastSyncedAt: models.TruncateToDay(now),
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		log.Debug().Str("func", "userDirectory.GetOrCreate").Msg("concurrent first login, re-reading user")
		return d.users.FindUserBySubject(ctx, claims.Subject)
	}
	if err != nil {
		log.Err(err).Str("func", "userDirectory.GetOrCreate").Msg("error creating user")
		return models.User{}, err
	}

	log.Info().Str("func", "userDirectory.GetOrCreate").Int64("user_id", user.UserID).Msg("new user created")
	return user, nil
}
