package types

// TripType classifies who is travelling.
type TripType string

const (
	TripFamily    TripType = "Family"
	TripFriends   TripType = "Friends"
	TripHoneymoon TripType = "Honeymoon"
	TripSolo      TripType = "Solo"
	TripBusiness  TripType = "Business"
)

// BudgetType says whether the budget amount is per traveler or for the
// whole group.
type BudgetType string

const (
	BudgetPerPerson BudgetType = "per-person"
	BudgetTotal     BudgetType = "total"
)

// TripPace mirrors how packed the user wants each day.
type TripPace string

const (
	PaceRelaxed  TripPace = "relaxed"
	PaceModerate TripPace = "moderate"
	PacePacked   TripPace = "packed"
)

// TripDraft carries the user-entered trip constraints. It is consumed once
// by the itinerary generator and not persisted by the core.
type TripDraft struct {
	TripType      TripType   `json:"trip_type"`
	Travelers     int        `json:"travelers"`
	StartDate     string     `json:"start_date"` // ISO date, e.g. 2024-11-05
	EndDate       string     `json:"end_date"`
	BudgetAmount  float64    `json:"budget_amount"`
	BudgetType    BudgetType `json:"budget_type"`
	Pace          TripPace   `json:"pace"`
	Interests     []string   `json:"interests"`
	StayArea      string     `json:"stay_area,omitempty"`
	TransportMode string     `json:"transport_mode,omitempty"`
	Accessibility bool       `json:"accessibility,omitempty"`
	WithKids      bool       `json:"with_kids,omitempty"`
	WithElderly   bool       `json:"with_elderly,omitempty"`
	StartTime     string     `json:"start_time,omitempty"`
}
