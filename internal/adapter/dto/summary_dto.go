package dto

import (
	"time"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

// MeetingIDParam binds the meeting id path parameter shared by the meeting
// summary routes. The meeting_id rule rejects anything but a v4 UUID before
// the service is touched.
type MeetingIDParam struct {
	ID string `param:"id" validate:"required,meeting_id"`
}

// GenerateSummaryResponse wraps a freshly generated summary.
type GenerateSummaryResponse struct {
	Status  string                   `json:"status"`
	Summary *entities.MeetingSummary `json:"summary,omitempty"`
}

// SummaryResponse wraps a stored summary lookup.
type SummaryResponse struct {
	Summary *entities.MeetingSummary `json:"summary"`
}

// ActionItemsResponse lists the action items extracted for a meeting.
type ActionItemsResponse struct {
	MeetingID   string                `json:"meeting_id"`
	ActionItems []entities.ActionItem `json:"action_items"`
}

// HealthResponse is the health probe payload: liveness plus a snapshot of
// component availability and pipeline counters.
type HealthResponse struct {
	Status     string          `json:"status"`
	Service    string          `json:"service"`
	Components map[string]bool `json:"components,omitempty"`
	Stats      any             `json:"stats,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}
