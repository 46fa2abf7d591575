package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

func TestExtractSpeakers(t *testing.T) {
	r := NewResolver()

	speakers := r.ExtractSpeakers("Sarah: hello. Mike: hi there. Sarah: one more thing.")
	assert.Equal(t, []string{"Mike", "Sarah"}, speakers)

	assert.Empty(t, r.ExtractSpeakers("no labels in this text"))
}

func TestResolveAssignee(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		text string
		want string
	}{
		{"Sarah will update the roadmap", "Sarah"},
		{"ping @Mike about the budget", "Mike"},
		{"this task is assigned to Priya", "Priya"},
		{"someone should pick this up", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ResolveAssignee(tt.text), tt.text)
	}
}

func TestResolveDueDate(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		text string
		want string
	}{
		{"finish the report by Friday", "Friday"},
		{"deliver by March 12 at the latest", "March 12"},
		{"target 12/25 for the release", "12/25"},
		{"no date mentioned here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ResolveDueDate(tt.text), tt.text)
	}
}

func TestResolvePriority(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, entities.PriorityHigh, r.ResolvePriority("this is URGENT, do it asap"))
	assert.Equal(t, entities.PriorityMedium, r.ResolvePriority("important but not blocking"))
	assert.Equal(t, entities.PriorityLow, r.ResolvePriority("clean up the backlog"))
}

func TestResolveCategory(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		text string
		want string
	}{
		{"write the onboarding guide", entities.CategoryDocumentation},
		{"verify the staging deployment", entities.CategoryTesting},
		{"review the pull request", entities.CategoryReview},
		{"schedule a sync with the vendor", entities.CategoryMeeting},
		{"debug the login flow", entities.CategoryBugFix},
		{"ping the vendor about pricing", entities.CategoryGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ResolveCategory(tt.text), tt.text)
	}
}

func TestCategorizeSentence(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		text string
		want string
	}{
		{"What is the budget for Q3?", entities.KeyPointCategoryQuestion},
		{"We decided to move the launch", entities.KeyPointCategoryDecision},
		{"The team will ship the fix", entities.KeyPointCategoryAction},
		{"Big announcement about the merger", entities.KeyPointCategoryAnnouncement},
		{"General chat about the offsite", entities.KeyPointCategoryDiscussion},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.CategorizeSentence(tt.text), tt.text)
	}
}
