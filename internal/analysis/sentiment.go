package analysis

import (
	"strings"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

// Fixed sentiment lexicons. Each word counts once per text (presence, not
// occurrences).
var (
	positiveWords = []string{"good", "great", "excellent", "success", "agree", "happy", "positive"}
	negativeWords = []string{"problem", "issue", "concern", "difficult", "challenge", "disagree"}
)

// ClassifySentiment labels text as positive, negative or neutral by counting
// lexicon hits. A margin of 2 is required before leaving neutral.
func ClassifySentiment(text string) string {
	lower := strings.ToLower(text)

	positive := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	negative := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative+2:
		return entities.SentimentPositive
	case negative > positive+2:
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}
