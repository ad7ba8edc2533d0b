package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikn/pondy-guide/internal/types"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func TestTripDays(t *testing.T) {
	t.Run("same day trip is one day", func(t *testing.T) {
		d := mustDate(t, "2024-11-05")
		assert.Equal(t, 1, TripDays(d, d))
	})

	t.Run("inclusive span", func(t *testing.T) {
		start := mustDate(t, "2024-11-05")
		end := mustDate(t, "2024-11-08")
		assert.Equal(t, 4, TripDays(start, end))
	})

	t.Run("consecutive days", func(t *testing.T) {
		start := mustDate(t, "2024-11-05")
		end := mustDate(t, "2024-11-06")
		assert.Equal(t, 2, TripDays(start, end))
	})

	t.Run("across month boundary", func(t *testing.T) {
		start := mustDate(t, "2024-11-29")
		end := mustDate(t, "2024-12-02")
		assert.Equal(t, 4, TripDays(start, end))
	})
}

func TestBuildPrompt(t *testing.T) {
	draft := types.TripDraft{
		TripType:     types.TripFamily,
		Travelers:    4,
		StartDate:    "2024-11-05",
		EndDate:      "2024-11-08",
		BudgetAmount: 20000,
		BudgetType:   types.BudgetTotal,
		Pace:         types.PaceRelaxed,
		Interests:    []string{"beaches", "heritage"},
		WithKids:     true,
	}
	places := []types.Place{
		{Name: "Promenade Beach", Category: types.CategoryNature, Description: "Seafront stretch."},
		{Name: "Auroville", Category: types.CategorySpiritual, Description: "Experimental township."},
	}

	prompt := buildPrompt(draft, 4, places)

	assert.Contains(t, prompt, "4-day itinerary")
	assert.Contains(t, prompt, "Family trip")
	assert.Contains(t, prompt, "2024-11-05 to 2024-11-08")
	assert.Contains(t, prompt, "beaches, heritage")
	assert.Contains(t, prompt, "- Promenade Beach (nature): Seafront stretch.")
	assert.Contains(t, prompt, "- Auroville (spiritual): Experimental township.")
	assert.Contains(t, prompt, "family-friendly")
	assert.Contains(t, prompt, `"dayNumber"`)
	assert.Contains(t, prompt, "ONLY a JSON array")

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		assert.Equal(t, prompt, buildPrompt(draft, 4, places))
	})
}
