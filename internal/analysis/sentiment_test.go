package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive margin", "great progress, excellent work, everyone is happy and we agree", entities.SentimentPositive},
		{"negative margin", "a problem, an issue, a concern and a difficult challenge", entities.SentimentNegative},
		{"mixed stays neutral", "good result but we have a problem", entities.SentimentNeutral},
		{"small lead stays neutral", "good and great", entities.SentimentNeutral},
		{"empty", "", entities.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySentiment(tt.text))
		})
	}
}

func TestClassifySentimentCountsPresenceNotOccurrences(t *testing.T) {
	// one lexicon word repeated many times is still a single hit
	text := "good good good good good good"
	assert.Equal(t, entities.SentimentNeutral, ClassifySentiment(text))
}
