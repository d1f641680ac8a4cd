package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MarkAnthonyM/BlockPlot/internal/crypto"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/metrics"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/internal/validators"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

type skillblockService struct {
	users     store.UserRepository
	blocks    store.SkillblockRepository
	sealer    crypto.KeySealer
	validator validators.Validator
	maxBlocks int
	logger    *logger.Logger
}

func NewSkillblockService(
	users store.UserRepository,
	blocks store.SkillblockRepository,
	sealer crypto.KeySealer,
	validator validators.Validator,
	maxBlocks int,
	logger *logger.Logger,
) SkillblockService {
	return &skillblockService{
		users:     users,
		blocks:    blocks,
		sealer:    sealer,
		validator: validator,
		maxBlocks: maxBlocks,
		logger:    logger,
	}
}

// CreateSkillblock implements [SkillblockService].
//
// A user without a key on file must submit one with the form; it is sealed
// and stored before the block is created. A key sent by a user who already
// has one is ignored. The block limit is enforced by the repository in the
// same transaction that increments block_count.
func (s *skillblockService) CreateSkillblock(ctx context.Context, user models.User, form models.NewSkillblockForm) (models.Skillblock, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form); err != nil {
		return models.Skillblock{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if user.BlockCount >= s.maxBlocks {
		return models.Skillblock{}, ErrSkillblockLimitReached
	}

	if !user.KeyPresent {
		if form.APIKey == nil || strings.TrimSpace(*form.APIKey) == "" {
			return models.Skillblock{}, ErrAPIKeyRequired
		}

		sealed, err := s.sealer.Seal(strings.TrimSpace(*form.APIKey))
		if err != nil {
			log.Err(err).Str("func", "skillblockService.CreateSkillblock").Msg("error sealing api key")
			return models.Skillblock{}, fmt.Errorf("seal api key: %w", err)
		}
		if err = s.users.SetAPIKey(ctx, user.UserID, sealed); err != nil {
			log.Err(err).Str("func", "skillblockService.CreateSkillblock").Msg("error storing api key")
			return models.Skillblock{}, err
		}
	}

	block, count, err := s.blocks.CreateSkillblock(ctx, models.Skillblock{
		UserID:            user.UserID,
		Category:          strings.TrimSpace(form.Category),
		IsOfflineCategory: form.OfflineCategory,
		Name:              strings.TrimSpace(form.SkillName),
		Description:       form.Description,
	}, s.maxBlocks)
	if errors.Is(err, store.ErrSkillblockLimitReached) {
		return models.Skillblock{}, fmt.Errorf("%w: %w", ErrSkillblockLimitReached, err)
	}
	if err != nil {
		log.Err(err).Str("func", "skillblockService.CreateSkillblock").Msg("error creating skillblock")
		return models.Skillblock{}, err
	}

	metrics.SkillblocksCreated.Inc()
	log.Info().Str("func", "skillblockService.CreateSkillblock").
		Int64("block_id", block.BlockID).
		Int("block_count", count).
		Msg("skillblock created")

	return block, nil
}
