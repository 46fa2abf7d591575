package analysis

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	"github.com/nexuslabs/summary-engine/pkg/textutil"
)

const (
	// clusterSeed fixes the centroid initialization so repeated runs on
	// identical input produce identical cluster assignments.
	clusterSeed = 42

	// minSentencesForTopics is the smallest sentence set worth clustering.
	minSentencesForTopics = 3

	// minutesPerSentence is the fixed per-sentence duration estimate.
	minutesPerSentence = 0.5

	maxTopics = 5
	minTopics = 2

	maxKMeansIterations = 50
)

// TopicAnalyzer groups sentences into named topics via TF-IDF vectorization
// and deterministic centroid-based clustering.
type TopicAnalyzer struct {
	resolver *Resolver
}

// NewTopicAnalyzer creates a new TopicAnalyzer
func NewTopicAnalyzer() *TopicAnalyzer {
	return &TopicAnalyzer{resolver: NewResolver()}
}

// Analyze partitions the sentence set into k = clamp(n/3, 2, 5) clusters and
// derives a name, keyword set, sentiment and importance weight per cluster.
// Output is sorted by importance descending. Fewer than three sentences
// produce no topics.
func (t *TopicAnalyzer) Analyze(sentences []string) []entities.TopicAnalysis {
	n := len(sentences)
	if n < minSentencesForTopics {
		return nil
	}

	var vec vectorizer
	matrix := vec.fitTransform(sentences)

	k := n / 3
	if k > maxTopics {
		k = maxTopics
	}
	if k < minTopics {
		k = minTopics
	}

	centroids, assignments := kmeans(matrix, k, clusterSeed)

	var topics []entities.TopicAnalysis
	for cluster := 0; cluster < k; cluster++ {
		var members []string
		for i, c := range assignments {
			if c == cluster {
				members = append(members, sentences[i])
			}
		}
		if len(members) == 0 {
			continue
		}

		keywords := topTerms(centroids[cluster], vec.terms, 10)

		participants := t.clusterSpeakers(members)
		joined := strings.Join(members, " ")

		kept := keywords
		if len(kept) > 5 {
			kept = kept[:5]
		}

		topics = append(topics, entities.TopicAnalysis{
			Topic:        topicName(keywords),
			Keywords:     kept,
			Duration:     float64(len(members)) * minutesPerSentence,
			Participants: participants,
			Sentiment:    ClassifySentiment(joined),
			Importance:   float64(len(members)) / float64(n),
		})
	}

	sort.SliceStable(topics, func(a, b int) bool {
		return topics[a].Importance > topics[b].Importance
	})
	return topics
}

func (t *TopicAnalyzer) clusterSpeakers(members []string) []string {
	seen := make(map[string]struct{})
	for _, sentence := range members {
		for _, speaker := range t.resolver.ExtractSpeakers(sentence) {
			seen[speaker] = struct{}{}
		}
	}
	speakers := make([]string, 0, len(seen))
	for s := range seen {
		speakers = append(speakers, s)
	}
	sort.Strings(speakers)
	return speakers
}

// topTerms returns the limit highest-weighted vocabulary terms of a centroid
// in descending weight order, ties broken by column index.
func topTerms(centroid []float64, terms []string, limit int) []string {
	order := make([]int, len(centroid))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return centroid[order[a]] > centroid[order[b]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]string, 0, len(order))
	for _, i := range order {
		out = append(out, terms[i])
	}
	return out
}

// topicName picks the first keyword longer than three characters that is not
// a stop word, title-cased. Falls back to "General Discussion".
func topicName(keywords []string) string {
	for _, kw := range keywords {
		if len(kw) > 3 && !textutil.IsStopWord(kw) {
			return titleCase(kw)
		}
	}
	return "General Discussion"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// kmeans partitions rows into k clusters with a seeded deterministic
// initialization. Returns the final centroids and one cluster index per row.
func kmeans(rows [][]float64, k, seed int) ([][]float64, []int) {
	n := len(rows)
	if k > n {
		k = n
	}
	dims := len(rows[0])

	rng := rand.New(rand.NewSource(int64(seed)))
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), rows[idx]...)
	}

	assignments := make([]int, n)
	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, row := range rows {
			best := nearestCentroid(row, centroids)
			if best != assignments[i] || iter == 0 {
				if best != assignments[i] {
					changed = true
				}
				assignments[i] = best
			}
		}
		if iter > 0 && !changed {
			break
		}

		for c := 0; c < k; c++ {
			mean := make([]float64, dims)
			count := 0
			for i, a := range assignments {
				if a != c {
					continue
				}
				for d, v := range rows[i] {
					mean[d] += v
				}
				count++
			}
			if count == 0 {
				// Empty cluster keeps its previous centroid.
				continue
			}
			for d := range mean {
				mean[d] /= float64(count)
			}
			centroids[c] = mean
		}
	}

	return centroids, assignments
}

// nearestCentroid returns the index of the closest centroid by squared
// euclidean distance; ties resolve to the lowest index.
func nearestCentroid(row []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		var dist float64
		for d, v := range row {
			diff := v - centroid[d]
			dist += diff * diff
		}
		if dist < bestDist {
			bestDist = dist
			best = c
		}
	}
	return best
}
