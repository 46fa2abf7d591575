package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

// MeetingRepository exposes the meeting data the summarization pipeline
// reads. Absent records are reported with entities sentinel errors rather
// than driver errors.
type MeetingRepository interface {
	GetMeetingData(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error)
	GetTranscriptionText(ctx context.Context, meetingID uuid.UUID) (string, error)
}

// SummaryRepository persists generated summaries.
type SummaryRepository interface {
	SaveMeetingSummary(ctx context.Context, summary *entities.MeetingSummary) error
	GetMeetingSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error)
}
