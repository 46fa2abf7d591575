package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/nexuslabs/summary-engine/errors"
	"github.com/nexuslabs/summary-engine/internal/analysis"
	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	"github.com/nexuslabs/summary-engine/internal/domain/repositories"
	"github.com/nexuslabs/summary-engine/pkg/config"
	"github.com/nexuslabs/summary-engine/pkg/llm"
	"github.com/nexuslabs/summary-engine/pkg/textutil"
	"github.com/nexuslabs/summary-engine/pkg/workpool"
)

const minTranscriptChars = 100

// CacheStore is the slice of the cache layer the pipeline needs.
type CacheStore interface {
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
}

// EventPublisher emits summary lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}

// Service orchestrates the summarization pipeline for meetings.
type Service interface {
	GenerateMeetingSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error)
	GetMeetingSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error)
	Metrics() MetricsSnapshot
}

type summaryService struct {
	meetingRepo repositories.MeetingRepository
	summaryRepo repositories.SummaryRepository
	cache       CacheStore
	events      EventPublisher
	summarizer  llm.Summarizer
	scorer      *analysis.Scorer
	extractor   *analysis.Extractor
	topics      *analysis.TopicAnalyzer
	pool        *workpool.Pool
	cfg         *config.Config
	logger      *zap.Logger
	counters    *Counters
}

// NewService creates the summarization service
func NewService(
	meetingRepo repositories.MeetingRepository,
	summaryRepo repositories.SummaryRepository,
	cache CacheStore,
	events EventPublisher,
	summarizer llm.Summarizer,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &summaryService{
		meetingRepo: meetingRepo,
		summaryRepo: summaryRepo,
		cache:       cache,
		events:      events,
		summarizer:  summarizer,
		scorer:      analysis.NewScorer(),
		extractor:   analysis.NewExtractor(),
		topics:      analysis.NewTopicAnalyzer(),
		pool:        workpool.New(cfg.Summary.AnalysisWorkers),
		cfg:         cfg,
		logger:      logger,
		counters:    &Counters{},
	}
}

// GenerateMeetingSummary runs the full pipeline for one meeting. Absent
// meetings or transcripts are rejected with a DATA_UNAVAILABLE error and
// meetings below the eligibility thresholds with INELIGIBLE_MEETING; neither
// is counted as a pipeline failure and neither triggers side effects.
func (s *summaryService) GenerateMeetingSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	start := time.Now()
	s.logger.Info("🔄 Generating meeting summary", zap.String("meeting_id", meetingID.String()))

	meeting, err := s.meetingRepo.GetMeetingData(ctx, meetingID)
	if errors.Is(err, entities.ErrMeetingNotFound) {
		s.logger.Warn("⚠️ Meeting not found, skipping summary", zap.String("meeting_id", meetingID.String()))
		return nil, apperrors.ErrDataUnavailable(meetingID.String())
	}
	if err != nil {
		s.counters.RecordError()
		return nil, apperrors.ErrPipelineFailed(fmt.Errorf("fetch meeting: %w", err))
	}

	transcript, err := s.meetingRepo.GetTranscriptionText(ctx, meetingID)
	if errors.Is(err, entities.ErrTranscriptNotFound) {
		s.logger.Warn("⚠️ No transcript available, skipping summary", zap.String("meeting_id", meetingID.String()))
		return nil, apperrors.ErrDataUnavailable(meetingID.String())
	}
	if err != nil {
		s.counters.RecordError()
		return nil, apperrors.ErrPipelineFailed(fmt.Errorf("fetch transcript: %w", err))
	}

	if err := s.checkEligibility(meeting, transcript); err != nil {
		s.logger.Info("⚠️ Meeting not eligible for summarization",
			zap.String("meeting_id", meetingID.String()),
			zap.String("reason", err.Error()))
		return nil, apperrors.ErrIneligibleMeeting(meetingID.String(), err.Error())
	}

	// The full processed text feeds extraction and scoring; only the LLM
	// clients cap their own input.
	processed := textutil.Preprocess(transcript)
	sentences := textutil.SplitSentences(processed)

	summary, err := s.analyze(ctx, meeting, processed, sentences)
	if err != nil {
		s.counters.RecordError()
		return nil, err
	}

	// Side effects are best effort; a broken cache or broker never undoes a
	// generated summary.
	s.persistAndEmit(ctx, summary)

	elapsed := time.Since(start)
	s.counters.RecordSuccess(elapsed)
	s.logger.Info("✅ Meeting summary generated",
		zap.String("meeting_id", meetingID.String()),
		zap.Int("key_points", len(summary.KeyPoints)),
		zap.Int("decisions", len(summary.Decisions)),
		zap.Int("action_items", len(summary.ActionItems)),
		zap.Int("topics", len(summary.Topics)),
		zap.Float64("confidence", summary.Confidence),
		zap.Duration("elapsed", elapsed))
	return summary, nil
}

func (s *summaryService) checkEligibility(meeting *entities.Meeting, transcript string) error {
	if len(strings.TrimSpace(transcript)) < minTranscriptChars {
		return entities.ErrTranscriptTooShort
	}
	if meeting.DurationSeconds < s.cfg.Summary.MinMeetingDuration {
		return entities.ErrMeetingTooShort
	}
	return nil
}

// analyze runs the extraction stages concurrently and assembles the summary.
// A panic in any single stage degrades that stage to empty output instead of
// failing the run; cancellation is the only way out early.
func (s *summaryService) analyze(ctx context.Context, meeting *entities.Meeting, processed string, sentences []string) (*entities.MeetingSummary, error) {
	var (
		keyPoints   []entities.KeyPoint
		decisions   []entities.Decision
		actionItems []entities.ActionItem
		topics      []entities.TopicAnalysis
		executive   string
	)

	var wg sync.WaitGroup
	step := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("❌ Extraction step failed, degrading to empty result",
						zap.Error(apperrors.ErrExtractionStepFailed(name, fmt.Errorf("%v", r))))
				}
			}()
			fn()
		}()
	}

	step("key_points", func() {
		keyPoints = s.scorer.SelectKeyPoints(sentences)
	})
	step("decisions_actions", func() {
		decisions = s.extractor.ExtractDecisions(processed)
		actionItems = s.extractor.ExtractActionItems(processed)
	})
	step("topics", func() {
		// clustering is the heavy stage; run it through the bounded pool so
		// concurrent requests cannot oversubscribe the CPU
		err := s.pool.Submit(ctx, func() error {
			topics = s.topics.Analyze(sentences)
			return nil
		})
		if err != nil {
			s.logger.Warn("⚠️ Topic analysis skipped",
				zap.Error(apperrors.ErrExtractionStepFailed("topics", err)))
		}
	})
	step("executive_summary", func() {
		result, err := s.summarizer.Summarize(ctx, llm.Request{
			Title:            meeting.Title,
			DurationSeconds:  meeting.DurationSeconds,
			ParticipantCount: meeting.ParticipantCount,
			Transcript:       processed,
			TargetLength:     s.cfg.Summary.TargetLength,
		})
		if err != nil {
			s.logger.Warn("⚠️ Executive summary generation failed",
				zap.Error(apperrors.ErrSummarizationFailed(err)))
			result = llm.ErrorSummary
		}
		executive = result
	})
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := entities.NewMeetingSummary(meeting.ID)
	summary.Title = meeting.Title
	summary.Duration = meeting.DurationSeconds
	summary.ParticipantCount = meeting.ParticipantCount
	summary.ExecutiveSummary = executive
	summary.KeyPoints = orEmptyKeyPoints(keyPoints)
	summary.Decisions = orEmptyDecisions(decisions)
	summary.ActionItems = orEmptyActionItems(actionItems)
	summary.Topics = orEmptyTopics(topics)
	summary.OverallSentiment = analysis.ClassifySentiment(processed)
	summary.EngagementLevel = analysis.EngagementLevel(meeting.DurationSeconds, meeting.ParticipantCount)
	summary.ProductivityScore = analysis.ProductivityScore(
		len(summary.Decisions), len(summary.ActionItems), len(summary.KeyPoints), meeting.DurationSeconds)
	summary.Confidence = analysis.SummaryConfidence(processed)
	summary.GeneratedAt = time.Now().UTC()
	return summary, nil
}

func (s *summaryService) persistAndEmit(ctx context.Context, summary *entities.MeetingSummary) {
	if err := s.summaryRepo.SaveMeetingSummary(ctx, summary); err != nil {
		s.logger.Error("❌ Failed to persist summary",
			zap.String("meeting_id", summary.MeetingID.String()),
			zap.Error(apperrors.ErrSideEffectFailed("persist", err)))
	}

	if payload, err := json.Marshal(summary); err == nil {
		key := cacheKey(summary.MeetingID)
		if err := s.cache.SetWithTTL(ctx, key, string(payload), s.cfg.Summary.CacheTTL); err != nil {
			s.logger.Warn("⚠️ Failed to cache summary", zap.String("key", key),
				zap.Error(apperrors.ErrSideEffectFailed("cache", err)))
		}
	}

	event := map[string]any{
		"type":       "summary_generated",
		"meeting_id": summary.MeetingID.String(),
		"summary_id": fmt.Sprintf("summary_%s", summary.MeetingID),
		"data": map[string]any{
			"meeting_id":         summary.MeetingID.String(),
			"confidence":         summary.Confidence,
			"key_points_count":   len(summary.KeyPoints),
			"decisions_count":    len(summary.Decisions),
			"action_items_count": len(summary.ActionItems),
			"productivity_score": summary.ProductivityScore,
		},
		"timestamp": time.Now().Unix(),
	}
	if payload, err := json.Marshal(event); err == nil {
		if err := s.events.Publish(ctx, payload); err != nil {
			s.logger.Warn("⚠️ Failed to publish summary event",
				zap.String("meeting_id", summary.MeetingID.String()),
				zap.Error(apperrors.ErrSideEffectFailed("publish", err)))
		}
	}
}

// GetMeetingSummary returns a previously generated summary, serving from the
// cache when possible and re-warming it on a database hit.
func (s *summaryService) GetMeetingSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	key := cacheKey(meetingID)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var summary entities.MeetingSummary
		if err := json.Unmarshal([]byte(raw), &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("⚠️ Discarding corrupt cached summary", zap.String("key", key))
	}

	summary, err := s.summaryRepo.GetMeetingSummary(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(summary); err == nil {
		if err := s.cache.SetWithTTL(ctx, key, string(payload), s.cfg.Summary.CacheTTL); err != nil {
			s.logger.Warn("⚠️ Failed to re-cache summary", zap.String("key", key), zap.Error(err))
		}
	}
	return summary, nil
}

func (s *summaryService) Metrics() MetricsSnapshot {
	return s.counters.Snapshot()
}

func cacheKey(meetingID uuid.UUID) string {
	return fmt.Sprintf("summary:%s", meetingID)
}

func orEmptyKeyPoints(v []entities.KeyPoint) []entities.KeyPoint {
	if v == nil {
		return []entities.KeyPoint{}
	}
	return v
}

func orEmptyDecisions(v []entities.Decision) []entities.Decision {
	if v == nil {
		return []entities.Decision{}
	}
	return v
}

func orEmptyActionItems(v []entities.ActionItem) []entities.ActionItem {
	if v == nil {
		return []entities.ActionItem{}
	}
	return v
}

func orEmptyTopics(v []entities.TopicAnalysis) []entities.TopicAnalysis {
	if v == nil {
		return []entities.TopicAnalysis{}
	}
	return v
}
