// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/adapter"
	"github.com/MarkAnthonyM/BlockPlot/internal/crypto"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/metrics"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

// lookbackDays is the length of the window fetched on a skillblock's first
// sync, today included.
const lookbackDays = 365

// syncService is the concrete implementation of SyncService.
//
// Per skillblock it either backfills a full year (no stored records yet) or
// corrects the last synced day and appends the days since. The user's
// blocks_last_synced_at only moves after every skillblock succeeded.
type syncService struct {
	users  store.UserRepository
	blocks store.SkillblockRepository
	source adapter.AnalyticsSource
	sealer crypto.KeySealer

	now    func() time.Time
	logger *logger.Logger
}

func NewSyncService(
	users store.UserRepository,
	blocks store.SkillblockRepository,
	source adapter.AnalyticsSource,
	sealer crypto.KeySealer,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		users:  users,
		blocks: blocks,
		source: source,
		sealer: sealer,
		now:    time.Now,
		logger: logger,
	}
}

// SyncUser implements SyncService.
func (s *syncService) SyncUser(ctx context.Context, user models.User) ([]models.TimeData, error) {
	start := time.Now()
	data, err := s.syncUser(ctx, user)

	metrics.SyncRuns.WithLabelValues(metrics.Outcome(err)).Inc()
	metrics.SyncDuration.Observe(time.Since(start).Seconds())

	return data, err
}

func (s *syncService) syncUser(ctx context.Context, user models.User) ([]models.TimeData, error) {
	log := logger.FromContext(ctx)

	if !user.KeyPresent || user.APIKey == nil || *user.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	blocks, err := s.blocks.ListForOwner(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "syncService.syncUser").Msg("error listing skillblocks")
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrNoSkillblocks
	}

	apiKey, err := s.sealer.Open(*user.APIKey)
	if err != nil {
		log.Err(err).Str("func", "syncService.syncUser").Msg("error opening stored api key")
		return nil, fmt.Errorf("open api key: %w", err)
	}

	today := models.TruncateToDay(s.now())
	lastSynced := models.TruncateToDay(user.BlocksLastSyncedAt)
	if lastSynced.After(today) {
		lastSynced = today
	}

	result := make([]models.TimeData, 0, len(blocks))
	for _, block := range blocks {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		series, err := s.syncBlock(ctx, block, apiKey, lastSynced, today)
		if err != nil {
			log.Err(err).Str("func", "syncService.syncUser").
				Int64("block_id", block.BlockID).
				Msg("sync aborted")
			return nil, fmt.Errorf("sync skillblock %d: %w", block.BlockID, err)
		}

		result = append(result, models.NewTimeData(block, series))
	}

	if err = s.users.UpdateBlocksLastSynced(ctx, user.UserID, today); err != nil {
		log.Err(err).Str("func", "syncService.syncUser").Msg("error advancing blocks_last_synced_at")
		return nil, err
	}

	log.Info().Str("func", "syncService.syncUser").
		Int64("user_id", user.UserID).
		Int("skillblocks", len(blocks)).
		Msg("skillblocks synced")

	return result, nil
}

func (s *syncService) syncBlock(ctx context.Context, block models.Skillblock, apiKey string, lastSynced, today time.Time) (models.DaySeries, error) {
	records, err := s.blocks.DailyRecordsDesc(ctx, block.BlockID)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return s.backfill(ctx, block, apiKey, today)
	}

	series := make(models.DaySeries, len(records))
	for _, r := range records {
		series[models.TruncateToDay(r.Day)] = r.Seconds
	}

	// The last synced day may have grown since it was stored.
	fresh, err := s.fetch(ctx, block, apiKey, lastSynced, lastSynced)
	if err != nil {
		return nil, err
	}
	if seconds, ok := fresh[lastSynced]; ok {
		if err = s.correctDay(ctx, block.BlockID, lastSynced, seconds); err != nil {
			return nil, err
		}
		series[lastSynced] = seconds
	}

	if lastSynced.Before(today) {
		gap, err := s.fetch(ctx, block, apiKey, lastSynced.AddDate(0, 0, 1), today)
		if err != nil {
			return nil, err
		}
		if err = s.insertSeries(ctx, block.BlockID, gap); err != nil {
			return nil, err
		}
		for day, seconds := range gap {
			series[day] = seconds
		}
	}

	return series, nil
}

// backfill fetches and stores [today-364, today] for a skillblock with no
// stored records.
func (s *syncService) backfill(ctx context.Context, block models.Skillblock, apiKey string, today time.Time) (models.DaySeries, error) {
	begin := today.AddDate(0, 0, -(lookbackDays - 1))

	series, err := s.fetch(ctx, block, apiKey, begin, today)
	if err != nil {
		return nil, err
	}
	if err = s.insertSeries(ctx, block.BlockID, series); err != nil {
		return nil, err
	}

	return series, nil
}

func (s *syncService) correctDay(ctx context.Context, blockID int64, day time.Time, seconds int) error {
	updated, err := s.blocks.UpsertDailyRecord(ctx, blockID, day, seconds)
	if err != nil {
		return err
	}
	if updated > 0 {
		metrics.DailyRecordsWritten.WithLabelValues("update").Add(float64(updated))
		return nil
	}

	// Nothing stored for that day yet.
	if err = s.blocks.InsertDailyRecord(ctx, blockID, day, seconds); err != nil {
		return err
	}
	metrics.DailyRecordsWritten.WithLabelValues("insert").Inc()

	return nil
}

func (s *syncService) insertSeries(ctx context.Context, blockID int64, series models.DaySeries) error {
	if len(series) == 0 {
		return nil
	}

	inserted, err := s.blocks.BatchInsertDailyRecords(ctx, blockID, toDayTotals(series))
	if err != nil {
		return err
	}
	metrics.DailyRecordsWritten.WithLabelValues("insert").Add(float64(inserted))

	return nil
}

func (s *syncService) fetch(ctx context.Context, block models.Skillblock, apiKey string, begin, end time.Time) (models.DaySeries, error) {
	rows, err := s.source.FetchDaily(ctx, models.AnalyticsQuery{
		APIKey: apiKey,
		Begin:  begin,
		End:    end,
		Mode:   models.ModeFor(block),
		Target: block.Category,
	})
	if err != nil {
		return nil, err
	}

	return aggregate(rows, begin, end), nil
}

// aggregate sums rows per day. Rows outside [begin, end] are dropped.
func aggregate(rows []models.AnalyticsRow, begin, end time.Time) models.DaySeries {
	series := make(models.DaySeries)
	for _, row := range rows {
		day := models.TruncateToDay(row.Perspective)
		if day.Before(begin) || day.After(end) {
			continue
		}
		series[day] += row.TimeSpent
	}
	return series
}

// toDayTotals flattens series, oldest day first.
func toDayTotals(series models.DaySeries) []models.DayTotal {
	totals := make([]models.DayTotal, 0, len(series))
	for day, seconds := range series {
		totals = append(totals, models.DayTotal{Day: day, Seconds: seconds})
	}
	slices.SortFunc(totals, func(a, b models.DayTotal) int {
		return a.Day.Compare(b.Day)
	})
	return totals
}
