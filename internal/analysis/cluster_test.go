package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicSentences() []string {
	return []string{
		"Sarah: The database migration needs a rollback plan.",
		"The database schema changes touch every migration script.",
		"We should test the database migration on staging first.",
		"Mike: The marketing campaign launches next month.",
		"The campaign budget covers social media and print.",
		"Marketing wants the campaign assets by the end of the week.",
		"The hiring pipeline has three strong candidates.",
		"Candidates for the backend role start interviews tomorrow.",
		"Hiring the backend engineer is the top recruiting goal.",
		"The office move is scheduled for the first weekend.",
		"Packing for the office move starts on Thursday.",
		"The move affects parking and badge access.",
	}
}

func TestAnalyzeTooFewSentences(t *testing.T) {
	a := NewTopicAnalyzer()
	assert.Nil(t, a.Analyze(nil))
	assert.Nil(t, a.Analyze([]string{"one.", "two."}))
}

func TestAnalyzeTopicShape(t *testing.T) {
	a := NewTopicAnalyzer()
	sentences := topicSentences()

	topics := a.Analyze(sentences)
	require.NotEmpty(t, topics)
	assert.LessOrEqual(t, len(topics), 5)

	var totalImportance float64
	var totalDuration float64
	for _, topic := range topics {
		assert.NotEmpty(t, topic.Topic)
		assert.NotEmpty(t, topic.Keywords)
		assert.LessOrEqual(t, len(topic.Keywords), 5)
		assert.Greater(t, topic.Duration, 0.0)
		assert.Greater(t, topic.Importance, 0.0)
		assert.LessOrEqual(t, topic.Importance, 1.0)
		totalImportance += topic.Importance
		totalDuration += topic.Duration
	}

	// topics partition the sentences, so the weights never exceed the whole
	assert.LessOrEqual(t, totalImportance, 1.0+1e-9)
	assert.LessOrEqual(t, totalDuration, float64(len(sentences))*0.5+1e-9)

	// sorted by importance, largest first
	for i := 1; i < len(topics); i++ {
		assert.GreaterOrEqual(t, topics[i-1].Importance, topics[i].Importance)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewTopicAnalyzer()
	sentences := topicSentences()

	first := a.Analyze(sentences)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Analyze(sentences), "run %d diverged", i)
	}
}

func TestAnalyzeAttributesSpeakers(t *testing.T) {
	a := NewTopicAnalyzer()
	topics := a.Analyze(topicSentences())
	require.NotEmpty(t, topics)

	var speakers []string
	for _, topic := range topics {
		speakers = append(speakers, topic.Participants...)
	}
	assert.Contains(t, speakers, "Sarah")
	assert.Contains(t, speakers, "Mike")
}
