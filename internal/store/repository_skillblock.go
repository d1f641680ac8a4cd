package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

// skillblockRepository is the PostgreSQL-backed implementation of
// [SkillblockRepository] over the "skillblocks" and "date_times" tables.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions carry the request trace id.
type skillblockRepository struct {
	*DB
	logger *logger.Logger
}

// NewSkillblockRepository constructs a [SkillblockRepository] backed by db.
func NewSkillblockRepository(db *DB, logger *logger.Logger) SkillblockRepository {
	return &skillblockRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSkillblock reserves a slot on the owner's block_count and inserts
// the block in one transaction. When the owner already holds maxBlocks
// blocks nothing is written and [ErrSkillblockLimitReached] is returned.
func (s *skillblockRepository) CreateSkillblock(ctx context.Context, block models.Skillblock, maxBlocks int) (models.Skillblock, int, error) {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "skillblockRepository.CreateSkillblock").
			Int64("user_id", block.UserID).
			Msg("failed to begin transaction")
		return models.Skillblock{}, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var blockCount int
	err = tx.QueryRowContext(ctx, reserveSkillblockSlot, block.UserID, maxBlocks).Scan(&blockCount)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Info().
			Str("func", "skillblockRepository.CreateSkillblock").
			Int64("user_id", block.UserID).
			Int("max_blocks", maxBlocks).
			Msg("skillblock limit reached")
		return models.Skillblock{}, 0, ErrSkillblockLimitReached
	case err != nil:
		log.Err(err).
			Str("func", "skillblockRepository.CreateSkillblock").
			Int64("user_id", block.UserID).
			Msg("failed to reserve skillblock slot")
		return models.Skillblock{}, 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	err = tx.QueryRowContext(ctx, insertSkillblock,
		block.UserID,
		block.Category,
		block.IsOfflineCategory,
		block.Name,
		block.Description,
	).Scan(&block.BlockID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Skillblock{}, 0, ErrSkillblockNotSaved
	case err != nil:
		log.Err(err).
			Str("func", "skillblockRepository.CreateSkillblock").
			Int64("user_id", block.UserID).
			Msg("failed to insert skillblock")
		return models.Skillblock{}, 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "skillblockRepository.CreateSkillblock").
			Int64("user_id", block.UserID).
			Msg("failed to commit transaction")
		return models.Skillblock{}, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "skillblockRepository.CreateSkillblock").
		Int64("user_id", block.UserID).
		Int64("block_id", block.BlockID).
		Int("block_count", blockCount).
		Msg("skillblock created")

	return block, blockCount, nil
}

// ListForOwner returns every skillblock owned by userID. Empty when none.
func (s *skillblockRepository) ListForOwner(ctx context.Context, userID int64) ([]models.Skillblock, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSkillblocksQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "skillblockRepository.ListForOwner").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blocks []models.Skillblock
	err = s.DB.withRetry(ctx, func() error {
		rows, queryErr := s.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		blocks = make([]models.Skillblock, 0, 4)
		for rows.Next() {
			var b models.Skillblock
			if scanErr := rows.Scan(&b.BlockID, &b.UserID, &b.Category, &b.IsOfflineCategory, &b.Name, &b.Description); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			blocks = append(blocks, b)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "skillblockRepository.ListForOwner").
			Int64("user_id", userID).
			Msg("failed to list skillblocks")
		return nil, err
	}

	return blocks, nil
}

// DailyRecordsDesc returns the stored (day, seconds) pairs of blockID sorted
// by day descending.
func (s *skillblockRepository) DailyRecordsDesc(ctx context.Context, blockID int64) ([]models.DayTotal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDailyRecordsDescQuery(blockID)
	if err != nil {
		log.Err(err).Str("func", "skillblockRepository.DailyRecordsDesc").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []models.DayTotal
	err = s.DB.withRetry(ctx, func() error {
		rows, queryErr := s.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		records = make([]models.DayTotal, 0, 365)
		for rows.Next() {
			var r models.DayTotal
			if scanErr := rows.Scan(&r.Day, &r.Seconds); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			r.Day = models.TruncateToDay(r.Day)
			records = append(records, r)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "skillblockRepository.DailyRecordsDesc").
			Int64("block_id", blockID).
			Msg("failed to load daily records")
		return nil, err
	}

	return records, nil
}

// UpsertDailyRecord overwrites seconds_spent of the (blockID, day) record
// and reports how many rows matched.
func (s *skillblockRepository) UpsertDailyRecord(ctx context.Context, blockID int64, day time.Time, seconds int) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDailyRecordQuery(blockID, models.TruncateToDay(day), seconds)
	if err != nil {
		log.Err(err).Str("func", "skillblockRepository.UpsertDailyRecord").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "skillblockRepository.UpsertDailyRecord", blockID, query, args)
}

// InsertDailyRecord stores a single (blockID, day) record.
func (s *skillblockRepository) InsertDailyRecord(ctx context.Context, blockID int64, day time.Time, seconds int) error {
	_, err := s.BatchInsertDailyRecords(ctx, blockID, []models.DayTotal{{Day: day, Seconds: seconds}})
	return err
}

// BatchInsertDailyRecords stores records in one statement and returns the
// number of rows written. An empty batch is a no-op.
func (s *skillblockRepository) BatchInsertDailyRecords(ctx context.Context, blockID int64, records []models.DayTotal) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildInsertDailyRecordsQuery(blockID, records)
	if err != nil {
		log.Err(err).Str("func", "skillblockRepository.BatchInsertDailyRecords").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	inserted, err := s.exec(ctx, "skillblockRepository.BatchInsertDailyRecords", blockID, query, args)
	if err != nil {
		return 0, err
	}

	log.Debug().
		Str("func", "skillblockRepository.BatchInsertDailyRecords").
		Int64("block_id", blockID).
		Int64("rows", inserted).
		Msg("daily records stored")

	return inserted, nil
}

func (s *skillblockRepository) exec(ctx context.Context, funcName string, blockID int64, query string, args []any) (int64, error) {
	var affected int64
	err := s.DB.withRetry(ctx, func() error {
		res, execErr := s.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Int64("block_id", blockID).
			Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
