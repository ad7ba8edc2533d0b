package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerFromKnowledge(t *testing.T) {
	t.Run("greeting", func(t *testing.T) {
		assert.Equal(t, welcomeMessage, answerFromKnowledge("hi there"))
		assert.Equal(t, welcomeMessage, answerFromKnowledge("Hello!"))
		assert.Equal(t, welcomeMessage, answerFromKnowledge("vanakkam"))
	})

	t.Run("greeting needs a whole word", func(t *testing.T) {
		// "hi" inside another word must not trigger the greeting.
		assert.NotEqual(t, welcomeMessage, answerFromKnowledge("tell me about hill stations"))
		assert.NotEqual(t, welcomeMessage, answerFromKnowledge("heyday of french rule"))
	})

	t.Run("help", func(t *testing.T) {
		assert.Equal(t, helpMessage, answerFromKnowledge("help"))
		assert.Equal(t, helpMessage, answerFromKnowledge("what can you do for me"))
	})

	t.Run("current chief minister from present tenure", func(t *testing.T) {
		got := answerFromKnowledge("who is the chief minister of puducherry")
		assert.Contains(t, got, "N. Rangasamy")
	})

	t.Run("current lieutenant governor", func(t *testing.T) {
		got := answerFromKnowledge("who is the lieutenant governor")
		assert.Contains(t, got, "K. Kailashnathan")
	})

	t.Run("language lookup", func(t *testing.T) {
		assert.Equal(t, languageSummary, answerFromKnowledge("what language do people speak"))
	})

	t.Run("weather beats landmark lookup", func(t *testing.T) {
		// Factual lookups run before landmark matching.
		got := answerFromKnowledge("how is the weather at promenade beach")
		assert.Equal(t, climateSummary, got)
	})

	t.Run("weather beats category routing", func(t *testing.T) {
		got := answerFromKnowledge("best time to visit")
		assert.Equal(t, climateSummary, got)
	})

	t.Run("landmark lookup", func(t *testing.T) {
		got := answerFromKnowledge("tell me about auroville")
		assert.Contains(t, got, "Matrimandir")
	})

	t.Run("landmark beats category routing", func(t *testing.T) {
		// "visit" is a tourism keyword, but the landmark rule runs first.
		got := answerFromKnowledge("should i visit paradise beach")
		assert.Contains(t, got, "Chunnambar")
	})

	t.Run("category routing first match wins", func(t *testing.T) {
		// "history" and "food" both match; history is earlier in the chain.
		got := answerFromKnowledge("history of local food")
		assert.Contains(t, got, "French colonial settlement")
	})

	t.Run("category answers", func(t *testing.T) {
		assert.Contains(t, answerFromKnowledge("what should i eat"), "dosas")
		assert.Contains(t, answerFromKnowledge("how to get around by bus"), "Villupuram")
	})

	t.Run("no match returns sentinel", func(t *testing.T) {
		assert.Equal(t, noAnswer, answerFromKnowledge("what's the capital"))
		assert.Equal(t, noAnswer, answerFromKnowledge(""))
		assert.Equal(t, noAnswer, answerFromKnowledge("   "))
	})
}

func TestCurrentHolder(t *testing.T) {
	t.Run("present tenure wins", func(t *testing.T) {
		holders := []officeHolder{
			{Name: "A", Tenure: "2010-2015"},
			{Name: "B", Tenure: "2015-present"},
			{Name: "C", Tenure: "unknown"},
		}
		assert.Equal(t, "B", currentHolder(holders).Name)
	})

	t.Run("falls back to last entry", func(t *testing.T) {
		holders := []officeHolder{
			{Name: "A", Tenure: "2010-2015"},
			{Name: "B", Tenure: "2015-2020"},
		}
		assert.Equal(t, "B", currentHolder(holders).Name)
	})
}
