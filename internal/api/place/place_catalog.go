package place

import "github.com/karthikn/pondy-guide/internal/types"

func strPtr(v string) *string { return &v }

// Catalog returns the static Puducherry place definitions. The database is
// seeded from this list once; at runtime reads go through the repository.
func Catalog() []types.Place {
	return []types.Place{
		{
			Name:        "Promenade Beach",
			Category:    types.CategoryNature,
			Description: "The iconic seafront stretch along Goubert Avenue with the Gandhi statue, old lighthouse and the French war memorial. Closed to traffic in the evenings.",
			Location:    "Goubert Avenue, White Town",
			Rating:      4.6,
			Image:       "promenade_beach.jpg",
			Tags:        []string{"beach", "sunrise", "walking"},
			TimeSlot:    types.SlotEvening,
			BestTime:    strPtr("October to March"),
			OpenHours:   strPtr("Open all day; vehicle-free 18:00-07:30"),
			EntryFee:    strPtr("Free"),
		},
		{
			Name:        "Auroville",
			Category:    types.CategorySpiritual,
			Description: "The experimental international township founded in 1968, centred on the golden Matrimandir globe. Visitor centre, viewing point and cafes.",
			Location:    "Auroville, 12 km north of the city",
			Rating:      4.7,
			Image:       "auroville.jpg",
			Tags:        []string{"township", "matrimandir", "meditation"},
			TimeSlot:    types.SlotMorning,
			BestTime:    strPtr("November to February"),
			OpenHours:   strPtr("Visitor centre 09:00-17:30"),
			EntryFee:    strPtr("Free; Matrimandir viewing pass required"),
		},
		{
			Name:        "Sri Aurobindo Ashram",
			Category:    types.CategorySpiritual,
			Description: "Spiritual community founded by Sri Aurobindo and the Mother in 1926. The main building holds the samadhi shrine under a frangipani tree.",
			Location:    "Rue de la Marine, White Town",
			Rating:      4.6,
			Image:       "aurobindo_ashram.jpg",
			Tags:        []string{"ashram", "meditation", "quiet"},
			TimeSlot:    types.SlotMorning,
			OpenHours:   strPtr("08:00-12:00, 14:00-18:00"),
			EntryFee:    strPtr("Free"),
		},
		{
			Name:        "Paradise Beach",
			Category:    types.CategoryAdventure,
			Description: "A sandbar beach at Chunnambar reached only by ferry through the backwaters. Golden sand, water sports counters and shacks.",
			Location:    "Chunnambar, 8 km south on Cuddalore Road",
			Rating:      4.5,
			Image:       "paradise_beach.jpg",
			Tags:        []string{"beach", "ferry", "watersports"},
			TimeSlot:    types.SlotMorning,
			BestTime:    strPtr("September to March"),
			OpenHours:   strPtr("09:00-17:00, boats until 16:30"),
			EntryFee:    strPtr("Ferry ₹300 return"),
		},
		{
			Name:        "Basilica of the Sacred Heart of Jesus",
			Category:    types.CategoryHeritage,
			Description: "Gothic revival basilica from 1907 with rare stained-glass panels depicting the life of Christ. One of only two basilicas in Tamil-speaking South India.",
			Location:    "Subbayah Salai, opposite the railway station",
			Rating:      4.6,
			Image:       "sacred_heart_basilica.jpg",
			Tags:        []string{"church", "architecture", "gothic"},
			TimeSlot:    types.SlotAfternoon,
			OpenHours:   strPtr("06:30-12:00, 15:00-20:00"),
			EntryFee:    strPtr("Free"),
		},
		{
			Name:        "French Quarter (White Town)",
			Category:    types.CategoryHeritage,
			Description: "Grid of mustard-yellow colonial villas, bougainvillea walls and cobbled streets between the canal and the sea. Best explored on foot or bicycle.",
			Location:    "Between MG Road canal and Goubert Avenue",
			Rating:      4.7,
			Image:       "white_town.jpg",
			Tags:        []string{"colonial", "walking", "photography"},
			TimeSlot:    types.SlotAfternoon,
			BestTime:    strPtr("Early morning for photographs"),
			EntryFee:    strPtr("Free"),
		},
		{
			Name:        "Arulmigu Manakula Vinayagar Temple",
			Category:    types.CategorySpiritual,
			Description: "Ganesha temple older than French rule, famed for its gold-plated spire and forty wall friezes of Ganesha forms from across India.",
			Location:    "Manakula Vinayagar Koil Street, White Town",
			Rating:      4.7,
			Image:       "manakula_vinayagar.jpg",
			Tags:        []string{"temple", "ganesha", "heritage"},
			TimeSlot:    types.SlotMorning,
			OpenHours:   strPtr("05:45-12:30, 16:00-21:30"),
			EntryFee:    strPtr("Free"),
		},
		{
			Name:        "Puducherry Botanical Garden",
			Category:    types.CategoryNature,
			Description: "Garden laid out in 1826 with over 1,500 species, an aquarium, a musical fountain and a toy train loop popular with children.",
			Location:    "Near the old bus stand, south of the boulevard",
			Rating:      4.1,
			Image:       "botanical_garden.jpg",
			Tags:        []string{"garden", "family", "toy train"},
			TimeSlot:    types.SlotAfternoon,
			OpenHours:   strPtr("10:00-17:00"),
			EntryFee:    strPtr("₹10"),
		},
		{
			Name:        "Chunnambar Boat House",
			Category:    types.CategoryAdventure,
			Description: "Backwater resort where the Chunnambar river meets the sea. Speed boats, kayaks, pedal boats and the ferry to Paradise Beach.",
			Location:    "Cuddalore Main Road, 8 km from town",
			Rating:      4.2,
			Image:       "chunnambar.jpg",
			Tags:        []string{"boating", "backwaters", "kayak"},
			TimeSlot:    types.SlotMorning,
			OpenHours:   strPtr("09:00-18:00"),
			EntryFee:    strPtr("Rides from ₹150"),
		},
		{
			Name:        "Serenity Beach",
			Category:    types.CategoryAdventure,
			Description: "Surf beach at Kottakuppam with a breakwater pier, surf schools and board rentals. Quieter than the city beaches.",
			Location:    "Kottakuppam, 10 km north on ECR",
			Rating:      4.4,
			Image:       "serenity_beach.jpg",
			Tags:        []string{"surfing", "beach", "sunrise"},
			TimeSlot:    types.SlotMorning,
			BestTime:    strPtr("June to September for surf"),
			EntryFee:    strPtr("Free"),
		},
		{
			Name:        "Ousteri Lake",
			Category:    types.CategoryNature,
			Description: "A 800-hectare wetland and bird sanctuary west of the city. Winter home to pelicans, herons and over a hundred migratory species.",
			Location:    "Osudu, 10 km west of Puducherry",
			Rating:      4.2,
			Image:       "ousteri_lake.jpg",
			Tags:        []string{"birdwatching", "lake", "wetland"},
			TimeSlot:    types.SlotMorning,
			BestTime:    strPtr("November to February"),
			EntryFee:    strPtr("Free; boat rides extra"),
		},
		{
			Name:        "Puducherry Museum",
			Category:    types.CategoryHeritage,
			Description: "Housed in the old Law Building: Chola bronzes, Arikamedu Roman trade finds, French-era furniture and the bed of Governor Dupleix.",
			Location:    "Saint Louis Street, White Town",
			Rating:      4.0,
			Image:       "puducherry_museum.jpg",
			Tags:        []string{"museum", "history", "arikamedu"},
			TimeSlot:    types.SlotAfternoon,
			OpenHours:   strPtr("09:40-17:10, closed Mondays"),
			EntryFee:    strPtr("₹10"),
		},
		{
			Name:        "Bharathi Park",
			Category:    types.CategoryNature,
			Description: "Shaded park at the heart of the French Quarter around the Aayi Mandapam monument, ringed by the Raj Nivas and government buildings.",
			Location:    "Government Place, White Town",
			Rating:      4.2,
			Image:       "bharathi_park.jpg",
			Tags:        []string{"park", "family", "monument"},
			TimeSlot:    types.SlotEvening,
			OpenHours:   strPtr("06:00-20:00"),
			EntryFee:    strPtr("Free"),
		},
		{
			Name:        "Cafe des Arts",
			Category:    types.CategoryRestaurants,
			Description: "Courtyard creperie in a heritage villa on Suffren Street; a White Town institution for breakfast and galettes.",
			Location:    "10 Suffren Street, White Town",
			Rating:      4.4,
			Image:       "cafe_des_arts.jpg",
			Tags:        []string{"cafe", "french", "breakfast"},
			TimeSlot:    types.SlotMorning,
			OpenHours:   strPtr("08:30-19:00, closed Tuesdays"),
		},
		{
			Name:        "Villa Shanti Restaurant",
			Category:    types.CategoryRestaurants,
			Description: "Franco-Tamil fine dining in a restored 19th-century townhouse courtyard. Reservations recommended on weekends.",
			Location:    "14 Suffren Street, White Town",
			Rating:      4.5,
			Image:       "villa_shanti.jpg",
			Tags:        []string{"fine dining", "french", "courtyard"},
			TimeSlot:    types.SlotEvening,
			OpenHours:   strPtr("12:00-22:30"),
		},
		{
			Name:        "Surguru Restaurant",
			Category:    types.CategoryRestaurants,
			Description: "Busy vegetarian South Indian restaurant known for its thalis, dosas and filter coffee. A local staple since 1975.",
			Location:    "Mission Street",
			Rating:      4.3,
			Image:       "surguru.jpg",
			Tags:        []string{"south indian", "vegetarian", "thali"},
			TimeSlot:    types.SlotAfternoon,
			OpenHours:   strPtr("07:00-22:30"),
		},
		{
			Name:        "L'Aqua Rooftop Lounge",
			Category:    types.CategoryNightlife,
			Description: "Rooftop lounge above the Promenade with sea views and cocktails; Puducherry's lower liquor taxes keep prices friendly.",
			Location:    "Goubert Avenue seafront",
			Rating:      4.1,
			Image:       "laqua.jpg",
			Tags:        []string{"rooftop", "cocktails", "sea view"},
			TimeSlot:    types.SlotEvening,
			OpenHours:   strPtr("17:00-23:30"),
		},
		{
			Name:        "Sunday Market (Nehru Street)",
			Category:    types.CategoryShopping,
			Description: "Street bazaar spilling over Nehru and Mahatma Gandhi Road: clothes, antiques, handmade paper and Auroville goods.",
			Location:    "Jawaharlal Nehru Street",
			Rating:      4.0,
			Image:       "sunday_market.jpg",
			Tags:        []string{"bazaar", "souvenirs", "street food"},
			TimeSlot:    types.SlotEvening,
			OpenHours:   strPtr("Sundays 10:00-21:00"),
		},
		{
			Name:        "Indira Gandhi Government General Hospital",
			Category:    types.CategoryEmergency,
			Description: "The main government hospital with a 24-hour casualty wing, centrally located near the old bus stand. Casualty: 0413-2336050.",
			Location:    "Victor Simonel Street",
			Rating:      3.8,
			Image:       "gh_puducherry.jpg",
			Tags:        []string{"hospital", "24x7", "casualty"},
			TimeSlot:    types.SlotMorning,
			OpenHours:   strPtr("Casualty open 24 hours"),
		},
		{
			Name:        "Arikamedu",
			Category:    types.CategoryHeritage,
			Description: "Archaeological site of a Roman-era trading port on the Ariyankuppam river, excavated by Mortimer Wheeler in 1945.",
			Location:    "Kakkayanthope, 7 km south",
			Rating:      3.9,
			Image:       "arikamedu.jpg",
			Tags:        []string{"archaeology", "roman", "ruins"},
			TimeSlot:    types.SlotAfternoon,
			BestTime:    strPtr("Cooler months; site is unshaded"),
			EntryFee:    strPtr("Free"),
		},
	}
}
