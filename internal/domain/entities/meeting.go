package entities

import (
	"time"

	"github.com/google/uuid"
)

// Meeting holds the metadata the summary engine needs about one meeting.
type Meeting struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title            string    `json:"title" gorm:"type:varchar(500);not null"`
	DurationSeconds  int       `json:"duration_seconds" gorm:"not null;default:0"`
	ParticipantCount int       `json:"participant_count" gorm:"not null;default:0"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// Transcript is the stored transcript text for a meeting. Speech-to-text and
// speaker diarization happen upstream; the engine only consumes the text.
type Transcript struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Text      string    `json:"text" gorm:"type:text"`
	Language  string    `json:"language,omitempty" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Transcript
func (Transcript) TableName() string {
	return "transcripts"
}
