package types

import (
	"time"

	"github.com/google/uuid"
)

// DayActivity is one scheduled stop inside a generated day plan.
type DayActivity struct {
	TimeSlot    string `json:"timeSlot"`
	TimeRange   string `json:"timeRange"`
	PlaceName   string `json:"placeName"`
	Description string `json:"description"`
	TravelTime  string `json:"travelTime"`
	Tips        string `json:"tips,omitempty"`
}

// DailyItinerary is one AI-generated day. The shape follows the output
// schema the prompt demands; only the structural checks in the generator
// are enforced on it.
type DailyItinerary struct {
	DayNumber       int           `json:"dayNumber"`
	Date            string        `json:"date"`
	Activities      []DayActivity `json:"activities"`
	TotalTravelTime string        `json:"totalTravelTime"`
	Notes           string        `json:"notes"`
}

// SavedItinerary is a persisted generation result together with its
// diagnostic metadata.
type SavedItinerary struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	TripType     TripType         `json:"trip_type"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	Days         []DailyItinerary `json:"days"`
	Provider     string           `json:"provider"`
	ModelUsed    string           `json:"model_used"`
	LatencyMs    int              `json:"latency_ms"`
	CreatedAt    time.Time        `json:"created_at"`
	Prompt       string           `json:"-"`
	ResponseText string           `json:"-"`
}
