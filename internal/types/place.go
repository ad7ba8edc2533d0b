package types

import "github.com/google/uuid"

// PlaceCategory enumerates the fixed catalog categories.
type PlaceCategory string

const (
	CategoryAdventure   PlaceCategory = "adventure"
	CategoryNature      PlaceCategory = "nature"
	CategoryNightlife   PlaceCategory = "nightlife"
	CategoryRestaurants PlaceCategory = "restaurants"
	CategoryEmergency   PlaceCategory = "emergency"
	CategoryHeritage    PlaceCategory = "heritage"
	CategorySpiritual   PlaceCategory = "spiritual"
	CategoryShopping    PlaceCategory = "shopping"
)

// TimeSlot is the preferred visiting slot for a place and the bucket
// itinerary activities are partitioned into.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotEvening   TimeSlot = "Evening"
)

// Place is immutable catalog reference data. Seeded once, never mutated
// at runtime.
type Place struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Category    PlaceCategory `json:"category"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Rating      float64       `json:"rating"`
	Image       string        `json:"image,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	TimeSlot    TimeSlot      `json:"time_slot"`
	BestTime    *string       `json:"best_time,omitempty"`
	OpenHours   *string       `json:"open_hours,omitempty"`
	EntryFee    *string       `json:"entry_fee,omitempty"`
}

// SavedPlace is the minimal projection of a Place kept in the favorites
// store, keyed by place id within an owner scope.
type SavedPlace struct {
	PlaceID  uuid.UUID     `json:"place_id"`
	Name     string        `json:"name"`
	Image    string        `json:"image,omitempty"`
	Location string        `json:"location"`
	Category PlaceCategory `json:"category"`
	Rating   float64       `json:"rating"`
}
