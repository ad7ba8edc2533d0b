package place

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/karthikn/pondy-guide/internal/types"
)

// MockPlaceRepository is a mock implementation of Repository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetPlaces(ctx context.Context) ([]types.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPlacesByCategory(ctx context.Context, category types.PlaceCategory) ([]types.Place, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPlaceByID(ctx context.Context, id uuid.UUID) (*types.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Place), args.Error(1)
}

func (m *MockPlaceRepository) CountPlaces(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPlaceRepository) InsertPlaces(ctx context.Context, places []types.Place) error {
	args := m.Called(ctx, places)
	return args.Error(0)
}

func setupPlaceServiceTest() (*ServiceImpl, *MockPlaceRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockPlaceRepository)
	service := NewServiceImpl(mockRepo, logger)
	return service, mockRepo
}

func TestServiceImpl_GetPlacesByCategory(t *testing.T) {
	service, mockRepo := setupPlaceServiceTest()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		expected := []types.Place{
			{ID: uuid.New(), Name: "Promenade Beach", Category: types.CategoryNature},
		}
		mockRepo.On("GetPlacesByCategory", ctx, types.CategoryNature).Return(expected, nil).Once()

		places, err := service.GetPlacesByCategory(ctx, types.CategoryNature)
		require.NoError(t, err)
		assert.Equal(t, expected, places)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		expectedErr := errors.New("db error")
		mockRepo.On("GetPlacesByCategory", ctx, types.CategoryHeritage).Return(nil, expectedErr).Once()

		_, err := service.GetPlacesByCategory(ctx, types.CategoryHeritage)
		require.Error(t, err)
		assert.EqualError(t, err, expectedErr.Error())
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceImpl_SeedCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds when table empty", func(t *testing.T) {
		service, mockRepo := setupPlaceServiceTest()
		mockRepo.On("CountPlaces", mock.Anything).Return(0, nil).Once()
		mockRepo.On("InsertPlaces", mock.Anything, Catalog()).Return(nil).Once()

		err := service.SeedCatalog(ctx)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("skips when already seeded", func(t *testing.T) {
		service, mockRepo := setupPlaceServiceTest()
		mockRepo.On("CountPlaces", mock.Anything).Return(19, nil).Once()

		err := service.SeedCatalog(ctx)
		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "InsertPlaces", mock.Anything, mock.Anything)
	})

	t.Run("count error propagates", func(t *testing.T) {
		service, mockRepo := setupPlaceServiceTest()
		mockRepo.On("CountPlaces", mock.Anything).Return(0, errors.New("db down")).Once()

		err := service.SeedCatalog(ctx)
		require.Error(t, err)
	})
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)

	seenCategories := make(map[types.PlaceCategory]bool)
	seenNames := make(map[string]bool)
	for _, p := range catalog {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Location)
		assert.False(t, seenNames[p.Name], "duplicate place name %q", p.Name)
		seenNames[p.Name] = true
		seenCategories[p.Category] = true

		switch p.TimeSlot {
		case types.SlotMorning, types.SlotAfternoon, types.SlotEvening:
		default:
			t.Errorf("place %q has invalid time slot %q", p.Name, p.TimeSlot)
		}
	}

	for _, c := range []types.PlaceCategory{
		types.CategoryAdventure, types.CategoryNature, types.CategoryNightlife,
		types.CategoryRestaurants, types.CategoryEmergency, types.CategoryHeritage,
		types.CategorySpiritual, types.CategoryShopping,
	} {
		assert.True(t, seenCategories[c], "no catalog entry for category %q", c)
	}
}
