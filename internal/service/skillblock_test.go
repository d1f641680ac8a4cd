package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/mock"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/internal/validators"
	"github.com/MarkAnthonyM/BlockPlot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSkillblockSvc(ctrl *gomock.Controller) (SkillblockService, *mock.MockUserRepository, *mock.MockSkillblockRepository, *mock.MockKeySealer) {
	users := mock.NewMockUserRepository(ctrl)
	blocks := mock.NewMockSkillblockRepository(ctrl)
	sealer := mock.NewMockKeySealer(ctrl)

	svc := NewSkillblockService(users, blocks, sealer, validators.NewSkillblockValidator(), 4, logger.Nop())
	return svc, users, blocks, sealer
}

func codingForm(apiKey *string) models.NewSkillblockForm {
	return models.NewSkillblockForm{
		APIKey:          apiKey,
		Category:        "software development",
		OfflineCategory: false,
		SkillName:       "Coding",
		Description:     "practice",
	}
}

func TestCreateSkillblock_FirstBlockStoresKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, blocks, sealer := newTestSkillblockSvc(ctrl)

	user := models.User{UserID: 1, BlockCount: 0, KeyPresent: false}
	want := models.Skillblock{
		UserID:      1,
		Category:    "software development",
		Name:        "Coding",
		Description: "practice",
	}

	gomock.InOrder(
		sealer.EXPECT().Seal("abc123").Return("sealed:abc123", nil),
		users.EXPECT().SetAPIKey(gomock.Any(), int64(1), "sealed:abc123").Return(nil),
		blocks.EXPECT().CreateSkillblock(gomock.Any(), want, 4).DoAndReturn(
			func(_ context.Context, b models.Skillblock, _ int) (models.Skillblock, int, error) {
				b.BlockID = 10
				return b, 1, nil
			}),
	)

	got, err := svc.CreateSkillblock(context.Background(), user, codingForm(strPtr("abc123")))
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.BlockID)
	assert.Equal(t, int64(1), got.UserID)
}

func TestCreateSkillblock_KeyRequiredWithoutOneOnFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestSkillblockSvc(ctrl)

	_, err := svc.CreateSkillblock(context.Background(), models.User{UserID: 1}, codingForm(nil))
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}

func TestCreateSkillblock_KeyOnFileIgnoresFormKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, blocks, _ := newTestSkillblockSvc(ctrl)

	user := models.User{UserID: 1, BlockCount: 2, KeyPresent: true, APIKey: strPtr("sealed")}
	blocks.EXPECT().CreateSkillblock(gomock.Any(), gomock.Any(), 4).Return(models.Skillblock{BlockID: 3}, 3, nil)

	_, err := svc.CreateSkillblock(context.Background(), user, codingForm(strPtr("other")))
	require.NoError(t, err)
}

func TestCreateSkillblock_LimitReached(t *testing.T) {
	t.Run("known from the user record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestSkillblockSvc(ctrl)

		user := models.User{UserID: 1, BlockCount: 4, KeyPresent: true}
		_, err := svc.CreateSkillblock(context.Background(), user, codingForm(nil))
		assert.ErrorIs(t, err, ErrSkillblockLimitReached)
	})

	t.Run("lost a concurrent race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, blocks, _ := newTestSkillblockSvc(ctrl)

		user := models.User{UserID: 1, BlockCount: 3, KeyPresent: true}
		blocks.EXPECT().CreateSkillblock(gomock.Any(), gomock.Any(), 4).
			Return(models.Skillblock{}, 0, store.ErrSkillblockLimitReached)

		_, err := svc.CreateSkillblock(context.Background(), user, codingForm(nil))
		assert.ErrorIs(t, err, ErrSkillblockLimitReached)
		assert.ErrorIs(t, err, store.ErrSkillblockLimitReached)
	})
}

func TestCreateSkillblock_InvalidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestSkillblockSvc(ctrl)

	form := codingForm(strPtr("abc123"))
	form.SkillName = ""

	_, err := svc.CreateSkillblock(context.Background(), models.User{UserID: 1}, form)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidForm)
}

func TestCreateSkillblock_StorageErrors(t *testing.T) {
	dbErr := errors.Join(store.ErrExecutingStatement, errors.New("boom"))

	t.Run("set api key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _, sealer := newTestSkillblockSvc(ctrl)

		sealer.EXPECT().Seal("abc123").Return("sealed", nil)
		users.EXPECT().SetAPIKey(gomock.Any(), int64(1), "sealed").Return(dbErr)

		_, err := svc.CreateSkillblock(context.Background(), models.User{UserID: 1}, codingForm(strPtr("abc123")))
		assert.True(t, store.IsStorageError(err))
	})

	t.Run("create block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, blocks, _ := newTestSkillblockSvc(ctrl)

		blocks.EXPECT().CreateSkillblock(gomock.Any(), gomock.Any(), 4).Return(models.Skillblock{}, 0, dbErr)

		_, err := svc.CreateSkillblock(context.Background(), models.User{UserID: 1, KeyPresent: true}, codingForm(nil))
		assert.True(t, store.IsStorageError(err))
	})
}
