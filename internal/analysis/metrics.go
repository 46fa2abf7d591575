package analysis

import (
	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	"github.com/nexuslabs/summary-engine/pkg/textutil"
)

// EngagementLevel classifies a meeting as low/medium/high engagement from its
// duration and participant count. Tiers are checked in order.
func EngagementLevel(durationSeconds, participantCount int) string {
	switch {
	case durationSeconds >= 3600 && participantCount > 5:
		return entities.EngagementHigh
	case durationSeconds >= 1800 && participantCount > 2:
		return entities.EngagementMedium
	default:
		return entities.EngagementLow
	}
}

// ProductivityScore combines decision/action/key-point density per meeting
// hour into a 0-100 score. Each sub-score is independently capped (30/40/30).
// A zero duration scores 0.
func ProductivityScore(decisionCount, actionItemCount, keyPointCount, durationSeconds int) float64 {
	if durationSeconds == 0 {
		return 0
	}

	hours := float64(durationSeconds) / 3600

	decisionScore := capAt(float64(decisionCount)/hours*10, 30)
	actionScore := capAt(float64(actionItemCount)/hours*10, 40)
	pointScore := capAt(float64(keyPointCount)/hours*5, 30)

	return capAt(decisionScore+actionScore+pointScore, 100)
}

// SummaryConfidence estimates summary reliability from the volume of
// processed text. Stepped at 50/200/500 words.
func SummaryConfidence(text string) float64 {
	words := textutil.WordCount(text)

	switch {
	case words < 50:
		return 0.3
	case words < 200:
		return 0.6
	case words < 500:
		return 0.8
	default:
		return 0.9
	}
}

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
