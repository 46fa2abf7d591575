package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/nexuslabs/summary-engine/pkg/textutil"
)

// maxFeatures bounds the vocabulary of the term-weight space.
const maxFeatures = 100

// vectorizer builds a bounded TF-IDF matrix over a sentence set using
// unigrams and bigrams with stop words removed. Feature selection and weights
// are fully deterministic: terms are ranked by corpus frequency with
// lexicographic tie-break.
type vectorizer struct {
	terms []string
	index map[string]int
}

// sentenceTerms tokenizes one sentence into lowercase unigrams and bigrams.
// Stop words and single-character tokens are removed before bigrams are
// formed.
func sentenceTerms(sentence string) []string {
	raw := textutil.Tokenize(sentence)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(t)
		if len(t) < 2 || textutil.IsStopWord(t) {
			continue
		}
		tokens = append(tokens, t)
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// fitTransform selects up to maxFeatures terms and returns one weight vector
// per sentence. Weights are raw term frequency scaled by smoothed inverse
// document frequency, L2-normalized per sentence.
func (v *vectorizer) fitTransform(sentences []string) [][]float64 {
	n := len(sentences)

	perSentence := make([]map[string]int, n)
	corpusCount := make(map[string]int)
	docFreq := make(map[string]int)

	for i, sentence := range sentences {
		counts := make(map[string]int)
		for _, term := range sentenceTerms(sentence) {
			counts[term]++
		}
		perSentence[i] = counts
		for term, c := range counts {
			corpusCount[term] += c
			docFreq[term]++
		}
	}

	candidates := make([]string, 0, len(corpusCount))
	for term := range corpusCount {
		candidates = append(candidates, term)
	}
	sort.Slice(candidates, func(a, b int) bool {
		if corpusCount[candidates[a]] != corpusCount[candidates[b]] {
			return corpusCount[candidates[a]] > corpusCount[candidates[b]]
		}
		return candidates[a] < candidates[b]
	})
	if len(candidates) > maxFeatures {
		candidates = candidates[:maxFeatures]
	}
	// Keep the retained vocabulary in lexicographic order so column indexes
	// are stable regardless of frequency ties.
	sort.Strings(candidates)

	v.terms = candidates
	v.index = make(map[string]int, len(candidates))
	for i, term := range candidates {
		v.index[term] = i
	}

	idf := make([]float64, len(candidates))
	for i, term := range candidates {
		idf[i] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}

	matrix := make([][]float64, n)
	for i := range sentences {
		row := make([]float64, len(candidates))
		for term, count := range perSentence[i] {
			if j, ok := v.index[term]; ok {
				row[j] = float64(count) * idf[j]
			}
		}
		normalize(row)
		matrix[i] = row
	}
	return matrix
}

func normalize(row []float64) {
	var sum float64
	for _, x := range row {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range row {
		row[i] /= norm
	}
}
