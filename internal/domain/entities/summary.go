package entities

import (
	"time"

	"github.com/google/uuid"
)

// KeyPoint is a single scored, categorized sentence selected as
// summary-worthy. Immutable once produced.
type KeyPoint struct {
	Text       string   `json:"text"`
	Category   string   `json:"category"` // question, decision, action, announcement, discussion
	Importance float64  `json:"importance"`
	Speakers   []string `json:"speakers"`
}

// Decision represents a decision extracted from the transcript. Confidence is
// a fixed heuristic weight, not a computed probability.
type Decision struct {
	Description  string   `json:"description"`
	Context      string   `json:"context"`
	Participants []string `json:"participants"`
	Confidence   float64  `json:"confidence"`
}

// ActionItem represents a task extracted from the transcript. Confidence is a
// fixed heuristic weight, not a computed probability.
type ActionItem struct {
	Description string  `json:"description"`
	AssignedTo  string  `json:"assigned_to,omitempty"`
	DueDate     string  `json:"due_date,omitempty"` // free-text date token as spoken
	Priority    string  `json:"priority"`           // low, medium, high
	Category    string  `json:"category"`           // documentation, testing, review, meeting, bug_fix, general
	Confidence  float64 `json:"confidence"`
}

// TopicAnalysis is one clustered discussion topic with derived attributes.
type TopicAnalysis struct {
	Topic        string   `json:"topic"`
	Keywords     []string `json:"keywords"`
	Duration     float64  `json:"duration"` // estimated minutes
	Participants []string `json:"participants"`
	Sentiment    string   `json:"sentiment"`
	Importance   float64  `json:"importance"` // cluster size / total sentence count
}

// MeetingSummary is the engine's sole externally visible output. It is
// immutable after assembly and owned by the orchestrator until handed to the
// persistence, cache and event collaborators.
type MeetingSummary struct {
	ID               uuid.UUID `json:"id"`
	MeetingID        uuid.UUID `json:"meeting_id"`
	Title            string    `json:"title"`
	Duration         int       `json:"duration"` // seconds
	ParticipantCount int       `json:"participant_count"`

	ExecutiveSummary string          `json:"executive_summary"`
	KeyPoints        []KeyPoint      `json:"key_points"`
	Decisions        []Decision      `json:"decisions"`
	ActionItems      []ActionItem    `json:"action_items"`
	Topics           []TopicAnalysis `json:"topics"`

	OverallSentiment  string  `json:"overall_sentiment"`
	EngagementLevel   string  `json:"engagement_level"`
	ProductivityScore float64 `json:"productivity_score"` // 0-100

	GeneratedAt time.Time `json:"generated_at"`
	Confidence  float64   `json:"confidence"` // 0-1
	Language    string    `json:"language"`
}

// NewMeetingSummary creates a summary shell for a meeting
func NewMeetingSummary(meetingID uuid.UUID) *MeetingSummary {
	return &MeetingSummary{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Language:  "en",
	}
}

// KeyPoint categories
const (
	KeyPointCategoryQuestion     = "question"
	KeyPointCategoryDecision     = "decision"
	KeyPointCategoryAction       = "action"
	KeyPointCategoryAnnouncement = "announcement"
	KeyPointCategoryDiscussion   = "discussion"
)

// ActionItem priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ActionItem categories
const (
	CategoryDocumentation = "documentation"
	CategoryTesting       = "testing"
	CategoryReview        = "review"
	CategoryMeeting       = "meeting"
	CategoryBugFix        = "bug_fix"
	CategoryGeneral       = "general"
)

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Engagement levels
const (
	EngagementLow    = "low"
	EngagementMedium = "medium"
	EngagementHigh   = "high"
)

// Fixed heuristic confidence weights attached to extracted entities.
const (
	DecisionConfidence   = 0.8
	ActionItemConfidence = 0.7
)

// List caps for extracted entities.
const (
	MaxDecisions   = 5
	MaxActionItems = 10
	MaxKeyPoints   = 10
)
