package chat

import (
	"fmt"
	"regexp"
	"strings"
)

// officeHolder is one entry in an office's holder history. The current
// holder is the one whose tenure contains "present"; if no tenure says so,
// the last entry wins.
type officeHolder struct {
	Name   string
	Tenure string
}

type landmark struct {
	Name        string
	Description string
}

const (
	welcomeMessage = "Vanakkam! Welcome to the Puducherry travel guide. Ask me about places to visit, local food, history, or getting around the city."
	helpMessage    = "You can ask me about: places to visit, Puducherry's history, the weather and best time to visit, local food, culture and festivals, or transport options like buses, trains and rentals."
)

var greetingWords = []string{"hi", "hello", "hey", "vanakkam", "namaste", "bonjour", "greetings"}

var helpKeywords = []string{"help", "what can you do", "options", "menu"}

var chiefMinisters = []officeHolder{
	{Name: "V. Narayanasamy", Tenure: "2016-2021"},
	{Name: "N. Rangasamy", Tenure: "2021-present"},
}

var lieutenantGovernors = []officeHolder{
	{Name: "Tamilisai Soundararajan", Tenure: "2021-2024"},
	{Name: "K. Kailashnathan", Tenure: "2024-present"},
}

const (
	languageSummary = "Tamil is the most widely spoken language in Puducherry, alongside Telugu, Malayalam and English. French is still spoken by a small community and remains an official language of the territory."
	climateSummary  = "Puducherry has a tropical climate: hot from April to July (often above 35°C), with the northeast monsoon bringing rain from October to December. The best time to visit is October to March, when the weather is pleasant for the beaches and walking tours."
)

var knownLandmarks = []landmark{
	{Name: "promenade beach", Description: "Promenade Beach is the iconic seafront along Goubert Avenue, with the Gandhi statue, the old lighthouse and the French war memorial. The road is closed to traffic every evening."},
	{Name: "auroville", Description: "Auroville is an experimental international township founded in 1968, about 12 km north of the city, centred on the golden Matrimandir. The visitor centre and viewing point are open to all."},
	{Name: "matrimandir", Description: "The Matrimandir is the golden spherical meditation chamber at the centre of Auroville. Outer viewing is open to visitors; inner concentration visits need an advance booking."},
	{Name: "aurobindo ashram", Description: "The Sri Aurobindo Ashram on Rue de la Marine was founded in 1926. The main building holds the samadhi of Sri Aurobindo and the Mother, and is open to visitors most of the day."},
	{Name: "paradise beach", Description: "Paradise Beach is a sandbar beach at Chunnambar, reached by a short ferry through the backwaters. Boats run from the Chunnambar Boat House until late afternoon."},
	{Name: "white town", Description: "White Town, the old French Quarter, is a grid of mustard-yellow colonial villas and bougainvillea-lined streets between the canal and the sea. It is best explored on foot or by bicycle."},
	{Name: "french quarter", Description: "The French Quarter (White Town) is the colonial heart of Puducherry: heritage villas, cafes and churches laid out on a neat grid beside the Promenade."},
	{Name: "manakula vinayagar", Description: "The Manakula Vinayagar Temple is a Ganesha temple older than French rule, known for its gold-plated spire and the forty friezes of Ganesha forms along its walls."},
	{Name: "botanical garden", Description: "The Puducherry Botanical Garden, laid out in 1826, has over 1,500 plant species, an aquarium and a toy train, making it an easy family stop near the old bus stand."},
	{Name: "ousteri lake", Description: "Ousteri Lake is a large wetland and bird sanctuary 10 km west of the city, at its best between November and February when migratory birds arrive."},
	{Name: "arikamedu", Description: "Arikamedu is the archaeological site of a Roman-era trading port on the Ariyankuppam river, excavated in 1945. Entry is free and the site is unshaded."},
	{Name: "sacred heart", Description: "The Basilica of the Sacred Heart of Jesus is a Gothic revival church from 1907 opposite the railway station, famous for its stained-glass panels."},
	{Name: "serenity beach", Description: "Serenity Beach at Kottakuppam is Puducherry's surf beach, with surf schools, board rentals and a breakwater pier. The surf is best from June to September."},
}

// categoryAnswers is consulted in fixed order; a query matching several
// categories gets the first one.
var categoryAnswers = []struct {
	Category string
	Keywords []string
	Answer   string
}{
	{
		Category: "history",
		Keywords: []string{"history", "historical", "french rule", "colonial", "past", "founded", "independence"},
		Answer:   "Puducherry was a French colonial settlement from 1674 until its de facto transfer to India in 1954 (formal in 1962). The French legacy survives in the White Town street grid, the francophone street names, and institutions like the French Institute. Long before the French, the port of Arikamedu nearby traded with Rome two thousand years ago.",
	},
	{
		Category: "geography",
		Keywords: []string{"geography", "where is", "located", "location of puducherry", "area", "region", "map"},
		Answer:   "Puducherry lies on the Coromandel Coast of South India, about 150 km south of Chennai, surrounded by Tamil Nadu. The union territory also includes the enclaves of Karaikal, Mahe and Yanam. The city itself is split by a canal into the seaside French Quarter and the Tamil Quarter inland.",
	},
	{
		Category: "culture",
		Keywords: []string{"culture", "festival", "tradition", "art", "music", "dance", "religion"},
		Answer:   "Puducherry's culture blends Tamil and French influences: Tamil festivals like Pongal and the Villianur temple car festival share the calendar with Bastille Day celebrations. The Aurobindo Ashram and Auroville add a spiritual, international layer, and the town has a lively arts and cafe scene.",
	},
	{
		Category: "food",
		Keywords: []string{"food", "eat", "restaurant", "cuisine", "dish", "cafe", "breakfast", "dinner"},
		Answer:   "Eating in Puducherry ranges from crisp dosas and filter coffee in the Tamil Quarter to croissants, crepes and steak frites in White Town cafes. Creole dishes like vindail and fish assad show the French-Tamil blend. Seafood is excellent, and the cafes around Suffren Street are an institution.",
	},
	{
		Category: "tourism",
		Keywords: []string{"visit", "tourist", "places", "attraction", "sightseeing", "itinerary", "things to do", "see"},
		Answer:   "Top things to do in Puducherry: walk the Promenade at sunset, cycle the French Quarter, visit Auroville and the Matrimandir viewing point, take the ferry to Paradise Beach, and stop at the Aurobindo Ashram and Manakula Vinayagar Temple. Serenity Beach is the pick for surfing, Ousteri Lake for birdwatching.",
	},
	{
		Category: "transport",
		Keywords: []string{"transport", "bus", "train", "taxi", "auto", "scooter", "bike", "rental", "reach", "how to get"},
		Answer:   "Puducherry is easiest to reach by road or rail from Chennai (about 3.5 hours) or via Villupuram junction. In town, rented scooters and bicycles are the favourite way to get around; autos are plentiful but fix the fare first. Local buses connect Auroville, Chunnambar and the beaches.",
	},
}

// noAnswer is the sentinel for "escalate to the AI provider".
const noAnswer = ""

var wordSplitter = regexp.MustCompile(`[^a-z]+`)

func containsWholeWord(query, word string) bool {
	for _, w := range wordSplitter.Split(query, -1) {
		if w == word {
			return true
		}
	}
	return false
}

func currentHolder(holders []officeHolder) officeHolder {
	for _, h := range holders {
		if strings.Contains(strings.ToLower(h.Tenure), "present") {
			return h
		}
	}
	return holders[len(holders)-1]
}

// answerFromKnowledge runs the query through the fixed rule chain and
// returns a canned answer, or noAnswer when the caller should escalate to a
// live AI call. Rule order is load-bearing: a query matching several rules
// gets the earliest one.
func answerFromKnowledge(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return noAnswer
	}

	// 1. Greetings.
	for _, g := range greetingWords {
		if containsWholeWord(q, g) {
			return welcomeMessage
		}
	}

	// 2. Help.
	for _, k := range helpKeywords {
		if strings.Contains(q, k) {
			return helpMessage
		}
	}

	// 3. Direct factual lookups.
	if strings.Contains(q, "chief minister") || strings.Contains(q, " cm ") || strings.HasSuffix(q, " cm") {
		cm := currentHolder(chiefMinisters)
		return fmt.Sprintf("The current Chief Minister of Puducherry is %s (in office %s).", cm.Name, cm.Tenure)
	}
	if strings.Contains(q, "lieutenant governor") || strings.Contains(q, "governor") {
		lg := currentHolder(lieutenantGovernors)
		return fmt.Sprintf("The current Lieutenant Governor of Puducherry is %s (in office %s).", lg.Name, lg.Tenure)
	}
	if strings.Contains(q, "language") || strings.Contains(q, "speak") || strings.Contains(q, "population") {
		return languageSummary
	}
	if strings.Contains(q, "weather") || strings.Contains(q, "climate") || strings.Contains(q, "best time") || strings.Contains(q, "season") || strings.Contains(q, "temperature") {
		return climateSummary
	}

	// 4. Landmark lookup.
	for _, lm := range knownLandmarks {
		if strings.Contains(q, lm.Name) {
			return lm.Description
		}
	}

	// 5. Category routing, first match wins.
	for _, cat := range categoryAnswers {
		for _, kw := range cat.Keywords {
			if strings.Contains(q, kw) {
				return cat.Answer
			}
		}
	}

	// 6. Nothing matched.
	return noAnswer
}
