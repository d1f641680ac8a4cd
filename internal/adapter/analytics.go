// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/metrics"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
	"github.com/MarkAnthonyM/BlockPlot/models"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	analyticsDataPath = "/anapi/data"
	queryDateLayout   = "2006-01-02"
)

// rowLayout locates the fields this backend reads in one row of an
// analytics reply. The layout is chosen by the query mode the request was
// made with, never guessed from the row itself.
type rowLayout struct {
	dateCol    int
	secondsCol int
}

var rowLayouts = map[models.RestrictMode]rowLayout{
	// Date, Time Spent (seconds), Number of People, Category
	models.RestrictCategory: {dateCol: 0, secondsCol: 1},
	// Date, Time Spent (seconds), Number of People, Overview
	models.RestrictOverview: {dateCol: 0, secondsCol: 1},
}

type analyticsReply struct {
	RowHeaders []string            `json:"row_headers"`
	Rows       [][]json.RawMessage `json:"rows"`
}

type analyticsSource struct {
	client  *utils.HTTPClient
	breaker *gobreaker.CircuitBreaker[[]models.AnalyticsRow]
	logger  *logger.Logger
}

// NewAnalyticsSource returns an [AnalyticsSource] for the RescueTime data
// API at cfg.BaseURL. Fetches run behind a circuit breaker that opens after
// cfg.BreakerMaxFailures consecutive failures and probes again after
// cfg.BreakerTimeout.
func NewAnalyticsSource(cfg config.Analytics, log *logger.Logger) AnalyticsSource {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	a := &analyticsSource{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		logger: log,
	}

	a.breaker = gobreaker.NewCircuitBreaker[[]models.AnalyticsRow](gobreaker.Settings{
		Name:        "analytics-source",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A rejected key or a cancelled request says nothing about the
		// health of the source.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrUnauthorized) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("func", "analyticsSource.OnStateChange").
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	return a
}

// FetchDaily implements [AnalyticsSource]. It GETs /anapi/data restricted to
// query.Target over the inclusive day range [query.Begin, query.End] at day
// resolution.
func (a *analyticsSource) FetchDaily(ctx context.Context, query models.AnalyticsQuery) ([]models.AnalyticsRow, error) {
	layout, ok := rowLayouts[query.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: unknown restrict mode %q", ErrMalformedPayload, query.Mode)
	}

	rows, err := a.breaker.Execute(func() ([]models.AnalyticsRow, error) {
		return a.fetch(ctx, query, layout)
	})
	metrics.AnalyticsFetches.WithLabelValues(string(query.Mode), metrics.Outcome(err)).Inc()

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrBreakerOpen, err)
	}
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (a *analyticsSource) fetch(ctx context.Context, query models.AnalyticsQuery, layout rowLayout) ([]models.AnalyticsRow, error) {
	log := logger.FromContext(ctx)

	var reply analyticsReply
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":             query.APIKey,
			"format":          "json",
			"perspective":     "interval",
			"resolution_time": "day",
			"restrict_begin":  query.Begin.Format(queryDateLayout),
			"restrict_end":    query.End.Format(queryDateLayout),
			"restrict_kind":   string(query.Mode),
			"restrict_thing":  query.Target,
		}).
		SetResult(&reply).
		Get(analyticsDataPath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Err(err).Str("func", "analyticsSource.fetch").Msg("analytics request failed")
		return nil, fmt.Errorf("%w: analytics request: %w", ErrExternalService, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "analyticsSource.fetch").Int("status", resp.StatusCode()).Msg("analytics source replied with an error")
		return nil, err
	}

	rows, err := decodeRows(reply.Rows, layout)
	if err != nil {
		log.Err(err).Str("func", "analyticsSource.fetch").Msg("undecodable analytics reply")
		return nil, err
	}

	log.Debug().Str("func", "analyticsSource.fetch").
		Str("mode", string(query.Mode)).
		Str("begin", query.Begin.Format(queryDateLayout)).
		Str("end", query.End.Format(queryDateLayout)).
		Int("rows", len(rows)).
		Msg("analytics rows fetched")

	return rows, nil
}

func decodeRows(raw [][]json.RawMessage, layout rowLayout) ([]models.AnalyticsRow, error) {
	minCols := max(layout.dateCol, layout.secondsCol) + 1

	rows := make([]models.AnalyticsRow, 0, len(raw))
	for i, cols := range raw {
		if len(cols) < minCols {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrMalformedPayload, i, len(cols))
		}

		var perspective string
		if err := json.Unmarshal(cols[layout.dateCol], &perspective); err != nil {
			return nil, fmt.Errorf("%w: row %d date: %w", ErrMalformedPayload, i, err)
		}
		day, err := time.Parse(models.DayKeyLayout, perspective)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d date: %w", ErrMalformedPayload, i, err)
		}

		var seconds int
		if err = json.Unmarshal(cols[layout.secondsCol], &seconds); err != nil {
			return nil, fmt.Errorf("%w: row %d seconds: %w", ErrMalformedPayload, i, err)
		}

		rows = append(rows, models.AnalyticsRow{
			Perspective: models.TruncateToDay(day),
			TimeSpent:   seconds,
		})
	}

	return rows, nil
}
