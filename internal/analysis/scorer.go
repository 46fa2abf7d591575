package analysis

import (
	"sort"
	"strings"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	"github.com/nexuslabs/summary-engine/pkg/textutil"
)

// importanceVocabulary is the fixed keyword list that marks a sentence as
// potentially summary-worthy. Matched as case-insensitive substrings.
var importanceVocabulary = []string{
	"decision", "action", "important", "critical", "urgent",
	"deadline", "priority", "goal", "objective", "result",
}

// keyPointThreshold is the minimum score a sentence needs to be kept as a key
// point.
const keyPointThreshold = 0.3

// Scorer assigns each sentence a bounded importance score from lexical and
// positional signals.
type Scorer struct {
	resolver *Resolver
}

// NewScorer creates a new Scorer
func NewScorer() *Scorer {
	return &Scorer{resolver: NewResolver()}
}

// ScoreSentences scores every sentence in [0,1]. The score is the capped sum
// of a length signal (+0.2 for 10-30 tokens), a keyword signal (+0.1 per
// importance-vocabulary hit) and a position signal (+0.1 in the leading 10%,
// +0.1 in the trailing 10%).
//
// Known limitation: the position bonus locates a sentence by value, so a
// sentence text that occurs more than once always scores at its first
// occurrence's position.
func (s *Scorer) ScoreSentences(sentences []string) []float64 {
	n := len(sentences)
	scores := make([]float64, n)

	for i, sentence := range sentences {
		score := 0.0

		wordCount := len(textutil.Tokenize(sentence))
		if wordCount >= 10 && wordCount <= 30 {
			score += 0.2
		}

		lower := strings.ToLower(sentence)
		for _, word := range importanceVocabulary {
			if strings.Contains(lower, word) {
				score += 0.1
			}
		}

		pos := indexOf(sentences, sentence)
		if float64(pos) < float64(n)*0.1 {
			score += 0.1
		}
		if float64(pos) > float64(n)*0.9 {
			score += 0.1
		}

		if score > 1.0 {
			score = 1.0
		}
		scores[i] = score
	}

	return scores
}

// SelectKeyPoints scores all sentences, takes the top MaxKeyPoints by score
// (stable: ties keep document order) and keeps those above the threshold,
// categorized and attributed to the speakers named in them.
func (s *Scorer) SelectKeyPoints(sentences []string) []entities.KeyPoint {
	scores := s.ScoreSentences(sentences)

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) > entities.MaxKeyPoints {
		order = order[:entities.MaxKeyPoints]
	}

	var keyPoints []entities.KeyPoint
	for _, idx := range order {
		if scores[idx] <= keyPointThreshold {
			continue
		}
		sentence := strings.TrimSpace(sentences[idx])
		speakers := s.resolver.ExtractSpeakers(sentence)
		if speakers == nil {
			speakers = []string{}
		}
		keyPoints = append(keyPoints, entities.KeyPoint{
			Text:       sentence,
			Category:   s.resolver.CategorizeSentence(sentence),
			Importance: scores[idx],
			Speakers:   speakers,
		})
	}

	return keyPoints
}

func indexOf(sentences []string, sentence string) int {
	for i, s := range sentences {
		if s == sentence {
			return i
		}
	}
	return -1
}
