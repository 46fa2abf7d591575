package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	repo "github.com/nexuslabs/summary-engine/internal/domain/repositories"
)

// summaryRow is the persistence shape of a MeetingSummary. Structured
// sub-lists live in JSONB columns; scalar metrics get their own columns so
// they stay queryable.
type summaryRow struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key"`
	MeetingID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Title            string         `gorm:"type:varchar(500)"`
	DurationSeconds  int            `gorm:"not null;default:0"`
	ParticipantCount int            `gorm:"not null;default:0"`
	ExecutiveSummary string         `gorm:"type:text"`
	KeyPoints        datatypes.JSON `gorm:"type:jsonb"`
	Decisions        datatypes.JSON `gorm:"type:jsonb"`
	ActionItems      datatypes.JSON `gorm:"type:jsonb"`
	Topics           datatypes.JSON `gorm:"type:jsonb"`
	OverallSentiment string         `gorm:"type:varchar(20)"`
	EngagementLevel  string         `gorm:"type:varchar(20)"`
	ProductivityScore float64
	Confidence        float64
	Language          string    `gorm:"type:varchar(20)"`
	GeneratedAt       time.Time `gorm:"not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (summaryRow) TableName() string {
	return "meeting_summaries"
}

type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a summary repository backed by GORM
func NewSummaryRepository(db *gorm.DB) repo.SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) SaveMeetingSummary(ctx context.Context, summary *entities.MeetingSummary) error {
	row, err := toSummaryRow(summary)
	if err != nil {
		return err
	}

	// Re-summarizing a meeting replaces its previous summary.
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "meeting_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "duration_seconds", "participant_count", "executive_summary",
			"key_points", "decisions", "action_items", "topics",
			"overall_sentiment", "engagement_level", "productivity_score",
			"confidence", "language", "generated_at", "updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to save summary for meeting %s: %w", summary.MeetingID, err)
	}
	return nil
}

func (r *summaryRepository) GetMeetingSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	var row summaryRow
	err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrSummaryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load summary for meeting %s: %w", meetingID, err)
	}
	return fromSummaryRow(&row)
}

func toSummaryRow(s *entities.MeetingSummary) (*summaryRow, error) {
	keyPoints, err := json.Marshal(s.KeyPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key points: %w", err)
	}
	decisions, err := json.Marshal(s.Decisions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decisions: %w", err)
	}
	actionItems, err := json.Marshal(s.ActionItems)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action items: %w", err)
	}
	topics, err := json.Marshal(s.Topics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal topics: %w", err)
	}

	return &summaryRow{
		ID:                s.ID,
		MeetingID:         s.MeetingID,
		Title:             s.Title,
		DurationSeconds:   s.Duration,
		ParticipantCount:  s.ParticipantCount,
		ExecutiveSummary:  s.ExecutiveSummary,
		KeyPoints:         datatypes.JSON(keyPoints),
		Decisions:         datatypes.JSON(decisions),
		ActionItems:       datatypes.JSON(actionItems),
		Topics:            datatypes.JSON(topics),
		OverallSentiment:  s.OverallSentiment,
		EngagementLevel:   s.EngagementLevel,
		ProductivityScore: s.ProductivityScore,
		Confidence:        s.Confidence,
		Language:          s.Language,
		GeneratedAt:       s.GeneratedAt,
	}, nil
}

func fromSummaryRow(row *summaryRow) (*entities.MeetingSummary, error) {
	s := &entities.MeetingSummary{
		ID:                row.ID,
		MeetingID:         row.MeetingID,
		Title:             row.Title,
		Duration:          row.DurationSeconds,
		ParticipantCount:  row.ParticipantCount,
		ExecutiveSummary:  row.ExecutiveSummary,
		KeyPoints:         []entities.KeyPoint{},
		Decisions:         []entities.Decision{},
		ActionItems:       []entities.ActionItem{},
		Topics:            []entities.TopicAnalysis{},
		OverallSentiment:  row.OverallSentiment,
		EngagementLevel:   row.EngagementLevel,
		ProductivityScore: row.ProductivityScore,
		Confidence:        row.Confidence,
		Language:          row.Language,
		GeneratedAt:       row.GeneratedAt,
	}

	if len(row.KeyPoints) > 0 {
		if err := json.Unmarshal(row.KeyPoints, &s.KeyPoints); err != nil {
			return nil, fmt.Errorf("failed to unmarshal key points: %w", err)
		}
	}
	if len(row.Decisions) > 0 {
		if err := json.Unmarshal(row.Decisions, &s.Decisions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal decisions: %w", err)
		}
	}
	if len(row.ActionItems) > 0 {
		if err := json.Unmarshal(row.ActionItems, &s.ActionItems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action items: %w", err)
		}
	}
	if len(row.Topics) > 0 {
		if err := json.Unmarshal(row.Topics, &s.Topics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal topics: %w", err)
		}
	}
	return s, nil
}
