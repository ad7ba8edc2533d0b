package transit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/karthikn/pondy-guide/internal/types"
)

// MockTransitRepository is a mock implementation of Repository
type MockTransitRepository struct {
	mock.Mock
}

func (m *MockTransitRepository) GetItems(ctx context.Context) ([]types.TransitItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TransitItem), args.Error(1)
}

func (m *MockTransitRepository) GetItemsByCategory(ctx context.Context, category types.TransitCategory) ([]types.TransitItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TransitItem), args.Error(1)
}

func (m *MockTransitRepository) CountByCategory(ctx context.Context, category types.TransitCategory) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockTransitRepository) InsertItems(ctx context.Context, items []types.TransitItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func setupTransitServiceTest() (*ServiceImpl, *MockTransitRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockTransitRepository)
	service := NewServiceImpl(mockRepo, logger)
	return service, mockRepo
}

func TestServiceImpl_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds every empty category", func(t *testing.T) {
		service, mockRepo := setupTransitServiceTest()
		mockRepo.On("CountByCategory", mock.Anything, mock.Anything).Return(0, nil).Times(4)
		mockRepo.On("InsertItems", mock.Anything, mock.Anything).Return(nil).Times(4)

		err := service.Seed(ctx)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("skips populated categories", func(t *testing.T) {
		service, mockRepo := setupTransitServiceTest()
		mockRepo.On("CountByCategory", mock.Anything, types.TransitRentals).Return(3, nil).Once()
		mockRepo.On("CountByCategory", mock.Anything, types.TransitCabs).Return(3, nil).Once()
		mockRepo.On("CountByCategory", mock.Anything, types.TransitBus).Return(0, nil).Once()
		mockRepo.On("CountByCategory", mock.Anything, types.TransitTrain).Return(3, nil).Once()
		mockRepo.On("InsertItems", mock.Anything, mock.MatchedBy(func(items []types.TransitItem) bool {
			for _, it := range items {
				if it.Category != types.TransitBus {
					return false
				}
			}
			return len(items) > 0
		})).Return(nil).Once()

		err := service.Seed(ctx)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("fully seeded store is a no-op", func(t *testing.T) {
		service, mockRepo := setupTransitServiceTest()
		mockRepo.On("CountByCategory", mock.Anything, mock.Anything).Return(3, nil).Times(4)

		err := service.Seed(ctx)
		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "InsertItems", mock.Anything, mock.Anything)
	})

	t.Run("count failure aborts", func(t *testing.T) {
		service, mockRepo := setupTransitServiceTest()
		mockRepo.On("CountByCategory", mock.Anything, types.TransitRentals).Return(0, errors.New("db down")).Once()

		err := service.Seed(ctx)
		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "InsertItems", mock.Anything, mock.Anything)
	})
}

func TestSeedData(t *testing.T) {
	byCategory := make(map[types.TransitCategory]int)
	for _, it := range SeedData() {
		require.NotEmpty(t, it.Name)
		byCategory[it.Category]++
	}
	for _, c := range []types.TransitCategory{
		types.TransitRentals, types.TransitCabs, types.TransitBus, types.TransitTrain,
	} {
		assert.Positive(t, byCategory[c], "no seed entries for category %q", c)
	}
}
