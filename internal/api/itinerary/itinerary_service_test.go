package itinerary

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

	"github.com/karthikn/pondy-guide/app/observability/metrics"
	"github.com/karthikn/pondy-guide/internal/ai"
	"github.com/karthikn/pondy-guide/internal/types"
)

// MockProvider is a mock implementation of ai.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string) (string, error) {
	args := m.Called(ctx, prompt, systemPrompt)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GenerateJSON(ctx context.Context, prompt, systemPrompt string) (string, error) {
	args := m.Called(ctx, prompt, systemPrompt)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GenerateResponseStream(ctx context.Context, prompt, systemPrompt string, onChunk func(chunk string) error) error {
	args := m.Called(ctx, prompt, systemPrompt, onChunk)
	return args.Error(0)
}

func (m *MockProvider) CheckConnection(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockProvider) Name() string  { return "mock" }
func (m *MockProvider) Model() string { return "mock-model" }

// MockPlaceRepo is a mock implementation of place.Repository
type MockPlaceRepo struct {
	mock.Mock
}

func (m *MockPlaceRepo) GetPlaces(ctx context.Context) ([]types.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Place), args.Error(1)
}

func (m *MockPlaceRepo) GetPlacesByCategory(ctx context.Context, category types.PlaceCategory) ([]types.Place, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Place), args.Error(1)
}

func (m *MockPlaceRepo) GetPlaceByID(ctx context.Context, id uuid.UUID) (*types.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Place), args.Error(1)
}

func (m *MockPlaceRepo) CountPlaces(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPlaceRepo) InsertPlaces(ctx context.Context, places []types.Place) error {
	args := m.Called(ctx, places)
	return args.Error(0)
}

// MockItineraryRepo is a mock implementation of Repository
type MockItineraryRepo struct {
	mock.Mock
}

func (m *MockItineraryRepo) SaveItinerary(ctx context.Context, itinerary types.SavedItinerary) (uuid.UUID, error) {
	args := m.Called(ctx, itinerary)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockItineraryRepo) GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*types.SavedItinerary, error) {
	args := m.Called(ctx, userID, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SavedItinerary), args.Error(1)
}

func (m *MockItineraryRepo) GetItineraries(ctx context.Context, userID uuid.UUID) ([]types.SavedItinerary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.SavedItinerary), args.Error(1)
}

func setupItineraryServiceTest() (*ServiceImpl, *MockProvider, *MockPlaceRepo, *MockItineraryRepo) {
	metrics.InitAppMetrics()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := new(MockProvider)
	placeRepo := new(MockPlaceRepo)
	itineraryRepo := new(MockItineraryRepo)
	service := NewServiceImpl(provider, placeRepo, itineraryRepo, metrics.Get(), logger)
	return service, provider, placeRepo, itineraryRepo
}

func validDraft() types.TripDraft {
	return types.TripDraft{
		TripType:     types.TripSolo,
		Travelers:    1,
		StartDate:    "2024-11-05",
		EndDate:      "2024-11-06",
		BudgetAmount: 5000,
		BudgetType:   types.BudgetPerPerson,
		Pace:         types.PaceModerate,
	}
}

const validResponse = `[
    {"dayNumber": 1, "date": "2024-11-05", "activities": [{"timeSlot": "Morning", "timeRange": "09:00 - 11:00", "placeName": "Auroville", "description": "x", "travelTime": "30 min"}], "totalTravelTime": "1 hour", "notes": ""},
    {"dayNumber": 2, "date": "2024-11-06", "activities": [{"timeSlot": "Morning", "timeRange": "09:00 - 11:00", "placeName": "Promenade Beach", "description": "x", "travelTime": "10 min"}], "totalTravelTime": "30 min", "notes": ""}
]`

func TestServiceImpl_GenerateItinerary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	catalog := []types.Place{{Name: "Auroville", Category: types.CategorySpiritual, Description: "Township."}}

	t.Run("success persists and returns days", func(t *testing.T) {
		service, provider, placeRepo, itineraryRepo := setupItineraryServiceTest()
		placeRepo.On("GetPlaces", mock.Anything).Return(catalog, nil).Once()
		provider.On("GenerateJSON", mock.Anything, mock.Anything, systemPrompt).Return(validResponse, nil).Once()
		itineraryRepo.On("SaveItinerary", mock.Anything, mock.MatchedBy(func(it types.SavedItinerary) bool {
			return it.UserID == userID && len(it.Days) == 2 && it.Provider == "mock"
		})).Return(uuid.New(), nil).Once()

		days, err := service.GenerateItinerary(ctx, userID, validDraft())
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, "Auroville", days[0].Activities[0].PlaceName)
		provider.AssertExpectations(t)
		itineraryRepo.AssertExpectations(t)
	})

	t.Run("repeated draft served from cache", func(t *testing.T) {
		service, provider, placeRepo, itineraryRepo := setupItineraryServiceTest()
		placeRepo.On("GetPlaces", mock.Anything).Return(catalog, nil).Once()
		provider.On("GenerateJSON", mock.Anything, mock.Anything, systemPrompt).Return(validResponse, nil).Once()
		itineraryRepo.On("SaveItinerary", mock.Anything, mock.Anything).Return(uuid.New(), nil).Once()

		_, err := service.GenerateItinerary(ctx, userID, validDraft())
		require.NoError(t, err)
		days, err := service.GenerateItinerary(ctx, userID, validDraft())
		require.NoError(t, err)
		assert.Len(t, days, 2)
		provider.AssertNumberOfCalls(t, "GenerateJSON", 1)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		service, provider, placeRepo, _ := setupItineraryServiceTest()
		placeRepo.On("GetPlaces", mock.Anything).Return(catalog, nil).Once()
		provErr := &ai.ProviderError{Provider: "mock", Status: 503, Message: "overloaded"}
		provider.On("GenerateJSON", mock.Anything, mock.Anything, systemPrompt).Return("", provErr).Once()

		_, err := service.GenerateItinerary(ctx, userID, validDraft())
		var target *ai.ProviderError
		require.ErrorAs(t, err, &target)
	})

	t.Run("unparseable response is a format error", func(t *testing.T) {
		service, provider, placeRepo, _ := setupItineraryServiceTest()
		placeRepo.On("GetPlaces", mock.Anything).Return(catalog, nil).Once()
		provider.On("GenerateJSON", mock.Anything, mock.Anything, systemPrompt).Return("I am just prose.", nil).Once()

		_, err := service.GenerateItinerary(ctx, userID, validDraft())
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
	})

	t.Run("save failure does not void the itinerary", func(t *testing.T) {
		service, provider, placeRepo, itineraryRepo := setupItineraryServiceTest()
		placeRepo.On("GetPlaces", mock.Anything).Return(catalog, nil).Once()
		provider.On("GenerateJSON", mock.Anything, mock.Anything, systemPrompt).Return(validResponse, nil).Once()
		itineraryRepo.On("SaveItinerary", mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("db down")).Once()

		days, err := service.GenerateItinerary(ctx, userID, validDraft())
		require.NoError(t, err)
		assert.Len(t, days, 2)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		service, _, _, _ := setupItineraryServiceTest()
		draft := validDraft()
		draft.StartDate, draft.EndDate = "2024-11-08", "2024-11-05"

		_, err := service.GenerateItinerary(ctx, userID, draft)
		require.Error(t, err)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		service, _, _, _ := setupItineraryServiceTest()
		draft := validDraft()
		draft.StartDate = "05-11-2024"

		_, err := service.GenerateItinerary(ctx, userID, draft)
		require.Error(t, err)
	})
}

func TestServiceImpl_ProviderStatus(t *testing.T) {
	service, provider, _, _ := setupItineraryServiceTest()
	provider.On("CheckConnection", mock.Anything).Return(true).Once()

	status := service.ProviderStatus(context.Background())
	assert.Equal(t, "mock", status.Provider)
	assert.Equal(t, "mock-model", status.Model)
	assert.True(t, status.Reachable)
}
