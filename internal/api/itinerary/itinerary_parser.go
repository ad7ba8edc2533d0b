package itinerary

import (
	"encoding/json"
	"strings"

	"github.com/karthikn/pondy-guide/internal/types"
)

// FormatError means the model's output could not be parsed into the expected
// itinerary array. The raw text stays out of the error string; callers log it
// separately.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "AI returned invalid data format"
}

// extractJSON pulls a JSON array out of raw model output. Markdown code-fence
// markers are stripped and the text is sliced from the first '[' to the last
// ']'. Text with no brackets comes back trimmed but otherwise unchanged.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// parseItinerary extracts, parses and structurally validates a generated
// itinerary. The value must be a JSON array and every element must carry a
// day number and an activities array; anything else is a FormatError.
func parseItinerary(raw string) ([]types.DailyItinerary, error) {
	payload := extractJSON(raw)

	var elements []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elements); err != nil {
		return nil, &FormatError{Reason: "response is not a JSON array: " + err.Error()}
	}
	if len(elements) == 0 {
		return nil, &FormatError{Reason: "response array is empty"}
	}
	for _, el := range elements {
		dayRaw, ok := el["dayNumber"]
		if !ok {
			return nil, &FormatError{Reason: "element missing dayNumber"}
		}
		var day int
		if err := json.Unmarshal(dayRaw, &day); err != nil {
			return nil, &FormatError{Reason: "dayNumber is not an integer"}
		}
		actRaw, ok := el["activities"]
		if !ok {
			return nil, &FormatError{Reason: "element missing activities"}
		}
		var acts []json.RawMessage
		if err := json.Unmarshal(actRaw, &acts); err != nil {
			return nil, &FormatError{Reason: "activities is not an array"}
		}
	}

	var days []types.DailyItinerary
	if err := json.Unmarshal([]byte(payload), &days); err != nil {
		return nil, &FormatError{Reason: "malformed itinerary element: " + err.Error()}
	}
	return days, nil
}
