package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

var (
	speakerRe = regexp.MustCompile(`([A-Z][a-z]+):`)

	assigneeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([A-Z][a-z]+)\s+will`),
		regexp.MustCompile(`(?i)@([A-Z][a-z]+)`),
		regexp.MustCompile(`(?i)assigned to ([A-Z][a-z]+)`),
	}

	dueDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)by (\w+day)`),
		regexp.MustCompile(`(?i)by (\w+ \d{1,2})`),
		regexp.MustCompile(`(\d{1,2}/\d{1,2})`),
		regexp.MustCompile(`(\d{1,2}-\d{1,2})`),
	}
)

// Keyword tiers for priority and category classification. Checked in order;
// the first matching tier wins.
var (
	priorityHighWords   = []string{"urgent", "asap", "immediately", "critical"}
	priorityMediumWords = []string{"important", "priority", "soon"}

	categoryKeywords = []struct {
		category string
		words    []string
	}{
		{entities.CategoryDocumentation, []string{"document", "write", "create", "draft"}},
		{entities.CategoryTesting, []string{"test", "verify", "check", "validate"}},
		{entities.CategoryReview, []string{"review", "analyze", "examine"}},
		{entities.CategoryMeeting, []string{"meeting", "schedule", "call"}},
		{entities.CategoryBugFix, []string{"fix", "resolve", "debug", "troubleshoot"}},
	}
)

// Resolver derives secondary attributes (assignee, due date, priority,
// category, speakers) for extracted candidates. All heuristics are
// best-effort pattern matching; extracted names and dates are not validated.
type Resolver struct{}

// NewResolver creates a new Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// ExtractSpeakers returns the distinct speaker names found as "Name:" labels
// in text, sorted for stable output.
func (r *Resolver) ExtractSpeakers(text string) []string {
	seen := make(map[string]struct{})
	for _, m := range speakerRe.FindAllStringSubmatch(text, -1) {
		seen[m[1]] = struct{}{}
	}

	speakers := make([]string, 0, len(seen))
	for name := range seen {
		speakers = append(speakers, name)
	}
	sort.Strings(speakers)
	return speakers
}

// ResolveAssignee returns the first assignee found in the action text, or ""
// if none. Sub-patterns are tried in a fixed priority order; first match wins.
func (r *Resolver) ResolveAssignee(actionText string) string {
	for _, re := range assigneeRes {
		if m := re.FindStringSubmatch(actionText); m != nil {
			return m[1]
		}
	}
	return ""
}

// ResolveDueDate returns the first date-like token found in the action text
// (weekday, "Month Day", numeric M/D or M-D), or "" if none.
func (r *Resolver) ResolveDueDate(actionText string) string {
	for _, re := range dueDateRes {
		if m := re.FindStringSubmatch(actionText); m != nil {
			return m[1]
		}
	}
	return ""
}

// ResolvePriority classifies the action text into low/medium/high.
func (r *Resolver) ResolvePriority(actionText string) string {
	lower := strings.ToLower(actionText)
	if containsAny(lower, priorityHighWords) {
		return entities.PriorityHigh
	}
	if containsAny(lower, priorityMediumWords) {
		return entities.PriorityMedium
	}
	return entities.PriorityLow
}

// ResolveCategory classifies the action text into one of the six fixed
// categories, defaulting to general.
func (r *Resolver) ResolveCategory(actionText string) string {
	lower := strings.ToLower(actionText)
	for _, c := range categoryKeywords {
		if containsAny(lower, c.words) {
			return c.category
		}
	}
	return entities.CategoryGeneral
}

// CategorizeSentence assigns a key-point category to a sentence.
func (r *Resolver) CategorizeSentence(sentence string) string {
	lower := strings.ToLower(sentence)
	switch {
	case containsAny(lower, []string{"?", "what", "how", "why", "when", "where"}):
		return entities.KeyPointCategoryQuestion
	case containsAny(lower, []string{"decision", "decided", "agreed"}):
		return entities.KeyPointCategoryDecision
	case containsAny(lower, []string{"action", "will", "should", "need to"}):
		return entities.KeyPointCategoryAction
	case containsAny(lower, []string{"announce", "announcement", "news"}):
		return entities.KeyPointCategoryAnnouncement
	default:
		return entities.KeyPointCategoryDiscussion
	}
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
