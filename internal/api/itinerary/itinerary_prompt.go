package itinerary

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/karthikn/pondy-guide/internal/types"
)

const dateLayout = "2006-01-02"

// TripDays computes the inclusive trip length in days. A trip starting and
// ending on the same date is 1 day long.
func TripDays(start, end time.Time) int {
	diff := end.Sub(start).Hours() / 24
	return int(math.Ceil(math.Abs(diff))) + 1
}

// buildPrompt composes the generation prompt from the trip constraints and a
// digest of the place catalog. Fully deterministic for fixed inputs.
func buildPrompt(draft types.TripDraft, days int, places []types.Place) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %d-day itinerary for a %s trip to Puducherry, India for %d traveler(s).\n",
		days, draft.TripType, draft.Travelers)
	fmt.Fprintf(&b, "Trip dates: %s to %s.\n", draft.StartDate, draft.EndDate)
	fmt.Fprintf(&b, "Budget: %.0f INR (%s). Pace: %s.\n", draft.BudgetAmount, draft.BudgetType, draft.Pace)
	if len(draft.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s.\n", strings.Join(draft.Interests, ", "))
	}
	if draft.StayArea != "" {
		fmt.Fprintf(&b, "Staying near: %s.\n", draft.StayArea)
	}
	if draft.TransportMode != "" {
		fmt.Fprintf(&b, "Getting around by: %s.\n", draft.TransportMode)
	}
	if draft.StartTime != "" {
		fmt.Fprintf(&b, "Preferred daily start time: %s.\n", draft.StartTime)
	}
	if draft.Accessibility {
		b.WriteString("The group needs wheelchair-accessible places.\n")
	}
	if draft.WithKids {
		b.WriteString("The group includes children; prefer family-friendly places.\n")
	}
	if draft.WithElderly {
		b.WriteString("The group includes elderly travelers; keep walking distances short.\n")
	}

	b.WriteString("\nChoose activities only from these Puducherry places:\n")
	for _, p := range places {
		fmt.Fprintf(&b, "- %s (%s): %s\n", p.Name, p.Category, p.Description)
	}

	b.WriteString(`
Partition each day into Morning, Afternoon and Evening activities.
Respond with ONLY a JSON array in exactly this shape, one object per day:
[
  {
    "dayNumber": 1,
    "date": "2024-11-05",
    "activities": [
      {
        "timeSlot": "Morning",
        "timeRange": "09:00 - 11:30",
        "placeName": "Promenade Beach",
        "description": "What to do there",
        "travelTime": "15 min from previous stop",
        "tips": "Optional practical tip"
      }
    ],
    "totalTravelTime": "1 hour",
    "notes": "Short note for the day"
  }
]
`)
	return b.String()
}
