package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

const sampleTranscript = "Sarah: We decided that the new release will ship next quarter. " +
	"I will update the documentation by Thursday. " +
	"Mike: I'll handle the testing before the demo. " +
	"Action item: schedule the follow-up call with the client."

func TestExtractDecisions(t *testing.T) {
	e := NewExtractor()

	decisions := e.ExtractDecisions(sampleTranscript)
	require.Len(t, decisions, 1)

	d := decisions[0]
	assert.Equal(t, "the new release will ship next quarter", d.Description)
	assert.InDelta(t, entities.DecisionConfidence, d.Confidence, 1e-9)
	assert.Contains(t, d.Participants, "Sarah")
	assert.NotEmpty(t, d.Context)
}

func TestExtractDecisionsContextStaysValidUTF8(t *testing.T) {
	e := NewExtractor()

	// non-ASCII padding puts the context window edges in the middle of
	// multi-byte runes
	pad := strings.Repeat("é", 60)
	text := pad + "x They decided that the café rollout begins soon. " + pad

	decisions := e.ExtractDecisions(text)
	require.Len(t, decisions, 1)

	d := decisions[0]
	assert.Equal(t, "the café rollout begins soon", d.Description)
	assert.True(t, utf8.ValidString(d.Context), "context is not valid UTF-8: %q", d.Context)
}

func TestExtractActionItems(t *testing.T) {
	e := NewExtractor()

	items := e.ExtractActionItems(sampleTranscript)
	require.NotEmpty(t, items)
	require.LessOrEqual(t, len(items), entities.MaxActionItems)

	byDescription := make(map[string]entities.ActionItem, len(items))
	for _, item := range items {
		byDescription[item.Description] = item
		assert.InDelta(t, entities.ActionItemConfidence, item.Confidence, 1e-9)
	}

	doc, ok := byDescription["update the documentation by Thursday"]
	require.True(t, ok, "documentation action missing: %v", items)
	assert.Equal(t, entities.CategoryDocumentation, doc.Category)
	assert.Equal(t, "Thursday", doc.DueDate)

	testing_, ok := byDescription["handle the testing before the demo"]
	require.True(t, ok, "testing action missing: %v", items)
	assert.Equal(t, entities.CategoryTesting, testing_.Category)

	call, ok := byDescription["schedule the follow-up call with the client"]
	require.True(t, ok, "labeled action missing: %v", items)
	assert.Equal(t, entities.CategoryMeeting, call.Category)
}

func TestExtractActionItemsDeduplicates(t *testing.T) {
	e := NewExtractor()

	// the same action phrased twice must survive only once
	text := "We will update the documentation today. Later we will update the documentation today."
	items := e.ExtractActionItems(text)

	seen := make(map[string]int)
	for _, item := range items {
		seen[item.Description]++
	}
	for desc, count := range seen {
		assert.Equal(t, 1, count, "duplicate action %q", desc)
	}
}

func TestExtractDecisionsMinLength(t *testing.T) {
	e := NewExtractor()
	// capture "go" is below the minimum description length
	assert.Empty(t, e.ExtractDecisions("We decided that go."))
}

func TestNewExtractorWithPatternsRejectsInvalid(t *testing.T) {
	_, err := NewExtractorWithPatterns([]MatcherSpec{{Name: "bad", Pattern: "("}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestOrderedSetDedupAndCap(t *testing.T) {
	set := newOrderedSet[int](2)

	assert.True(t, set.add("a", 1))
	assert.False(t, set.add("a", 2), "duplicate key accepted")
	assert.True(t, set.add("b", 3))
	assert.False(t, set.add("c", 4), "add beyond cap accepted")
	assert.Equal(t, []int{1, 3}, set.values())
}
