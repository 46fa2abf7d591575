package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	repo "github.com/nexuslabs/summary-engine/internal/domain/repositories"
)

type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a meeting repository backed by GORM
func NewMeetingRepository(db *gorm.DB) repo.MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) GetMeetingData(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).Where("id = ?", meetingID).First(&meeting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting %s: %w", meetingID, err)
	}
	return &meeting, nil
}

func (r *meetingRepository) GetTranscriptionText(ctx context.Context, meetingID uuid.UUID) (string, error) {
	var transcript entities.Transcript
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		First(&transcript).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", entities.ErrTranscriptNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load transcript for meeting %s: %w", meetingID, err)
	}
	return transcript.Text, nil
}
