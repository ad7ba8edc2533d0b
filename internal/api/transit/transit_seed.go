package transit

import "github.com/karthikn/pondy-guide/internal/types"

func strPtr(v string) *string { return &v }

// SeedData returns the static Puducherry transit reference entries, grouped
// by category. Loaded into the database once per empty category.
func SeedData() []types.TransitItem {
	return []types.TransitItem{
		// Rentals
		{
			Category: types.TransitRentals,
			Name:     "Scooter rental (gearless)",
			Fare:     strPtr("₹350-450 per day plus fuel"),
			Contact:  strPtr("Shops on Mission Street and MG Road"),
			Notes:    strPtr("Carry a driving licence; helmets are mandatory and provided."),
		},
		{
			Category: types.TransitRentals,
			Name:     "Bicycle rental",
			Fare:     strPtr("₹100-150 per day"),
			Contact:  strPtr("Stalls near the Promenade and in White Town"),
			Notes:    strPtr("The flat French Quarter grid is ideal for cycling."),
		},
		{
			Category: types.TransitRentals,
			Name:     "Motorbike rental (geared)",
			Fare:     strPtr("₹500-700 per day plus fuel"),
			Contact:  strPtr("Rental agencies on 100 Feet Road"),
			Notes:    strPtr("Book ahead on long weekends."),
		},

		// Cabs
		{
			Category: types.TransitCabs,
			Name:     "Auto rickshaw",
			Fare:     strPtr("₹50 minimum; fix the fare before boarding"),
			Notes:    strPtr("No meters in practice. Stands at the bus stand, railway station and main junctions."),
		},
		{
			Category: types.TransitCabs,
			Name:     "Airport taxi (Chennai)",
			From:     strPtr("Puducherry"),
			To:       strPtr("Chennai Airport"),
			Fare:     strPtr("₹3,000-3,800 one way"),
			Schedule: strPtr("On demand, about 3.5 hours"),
			Notes:    strPtr("Hotel desks and local operators take advance bookings."),
		},
		{
			Category: types.TransitCabs,
			Name:     "Local day-hire cab",
			Fare:     strPtr("₹2,000-2,500 for 8 hours / 80 km"),
			Notes:    strPtr("Convenient for Auroville plus Chunnambar in one day."),
		},

		// Bus
		{
			Category: types.TransitBus,
			Name:     "PRTC Chennai express",
			From:     strPtr("Puducherry New Bus Stand"),
			To:       strPtr("Chennai CMBT"),
			Fare:     strPtr("₹180-420 depending on class"),
			Schedule: strPtr("Every 30 minutes, 04:00-23:00"),
		},
		{
			Category: types.TransitBus,
			Name:     "Local bus to Auroville",
			From:     strPtr("Puducherry New Bus Stand"),
			To:       strPtr("Auroville / Kottakuppam"),
			Fare:     strPtr("₹15-25"),
			Schedule: strPtr("Roughly hourly through the day"),
		},
		{
			Category: types.TransitBus,
			Name:     "Local bus to Chunnambar",
			From:     strPtr("Puducherry New Bus Stand"),
			To:       strPtr("Chunnambar Boat House"),
			Fare:     strPtr("₹10-20"),
			Schedule: strPtr("Cuddalore-bound buses, every 20 minutes"),
		},

		// Train
		{
			Category:   types.TransitTrain,
			Name:       "Puducherry Railway Station",
			Facilities: []string{"waiting hall", "reserved parking", "food stalls", "wheelchair ramp"},
			Notes:      strPtr("A terminus on a branch line; most long-distance connections go via Villupuram Junction, 38 km away."),
		},
		{
			Category: types.TransitTrain,
			Name:     "Puducherry-Villupuram passenger",
			From:     strPtr("Puducherry (PDY)"),
			To:       strPtr("Villupuram Junction (VM)"),
			Fare:     strPtr("₹10-30"),
			Schedule: strPtr("Several services daily, about 1 hour"),
		},
		{
			Category: types.TransitTrain,
			Name:     "Puducherry-Chennai Egmore express",
			From:     strPtr("Puducherry (PDY)"),
			To:       strPtr("Chennai Egmore (MS)"),
			Fare:     strPtr("₹70-550 depending on class"),
			Schedule: strPtr("Daily, about 4 hours"),
		},
	}
}
