package types

import "github.com/google/uuid"

// TransitCategory enumerates the transit reference-data groups.
type TransitCategory string

const (
	TransitRentals TransitCategory = "rentals"
	TransitCabs    TransitCategory = "cabs"
	TransitBus     TransitCategory = "bus"
	TransitTrain   TransitCategory = "train"
)

// TransitItem is static seed data. Category-specific fields are optional;
// a rentals row has no route, a train row has no fare-per-km, and so on.
type TransitItem struct {
	ID         uuid.UUID       `json:"id"`
	Category   TransitCategory `json:"category"`
	Name       string          `json:"name"`
	From       *string         `json:"from,omitempty"`
	To         *string         `json:"to,omitempty"`
	Fare       *string         `json:"fare,omitempty"`
	Schedule   *string         `json:"schedule,omitempty"`
	Facilities []string        `json:"facilities,omitempty"`
	Contact    *string         `json:"contact,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
}
