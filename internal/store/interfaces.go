package store

import (
	"context"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists local user accounts keyed by the identity
// provider subject.
type UserRepository interface {
	FindUserBySubject(ctx context.Context, subject string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	UpdateBlocksLastSynced(ctx context.Context, userID int64, day time.Time) error
	// SetAPIKey stores the (sealed) analytics API key and marks it present.
	SetAPIKey(ctx context.Context, userID int64, sealedKey string) error
}

// SkillblockRepository persists skillblocks and their per-day time series.
type SkillblockRepository interface {
	// CreateSkillblock inserts block and increments the owner's block count
	// in one transaction, failing with ErrSkillblockLimitReached when the
	// owner already has maxBlocks blocks. Returns the stored block and the
	// owner's new block count.
	CreateSkillblock(ctx context.Context, block models.Skillblock, maxBlocks int) (models.Skillblock, int, error)
	ListForOwner(ctx context.Context, userID int64) ([]models.Skillblock, error)

	// DailyRecordsDesc returns the stored series of a block, newest day first.
	DailyRecordsDesc(ctx context.Context, blockID int64) ([]models.DayTotal, error)
	// UpsertDailyRecord updates the record of (blockID, day) and returns the
	// number of updated rows. Zero means the caller should insert instead.
	UpsertDailyRecord(ctx context.Context, blockID int64, day time.Time, seconds int) (int64, error)
	InsertDailyRecord(ctx context.Context, blockID int64, day time.Time, seconds int) error
	BatchInsertDailyRecords(ctx context.Context, blockID int64, records []models.DayTotal) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
