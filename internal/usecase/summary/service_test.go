package summary

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/nexuslabs/summary-engine/errors"
	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	"github.com/nexuslabs/summary-engine/pkg/config"
	"github.com/nexuslabs/summary-engine/pkg/llm"
)

const testTranscript = "Sarah: We decided that the new release will ship next quarter. " +
	"I will update the documentation by Thursday. " +
	"Mike: I will handle the testing before the demo. " +
	"Action item: schedule the follow-up call with the client. " +
	"The roadmap review went well and everyone could ask questions. " +
	"What about the budget for the marketing campaign? " +
	"We agreed that the budget stays flat until the next quarterly review."

type fakeMeetingRepo struct {
	meeting       *entities.Meeting
	transcript    string
	meetingErr    error
	transcriptErr error
}

func (f *fakeMeetingRepo) GetMeetingData(_ context.Context, _ uuid.UUID) (*entities.Meeting, error) {
	if f.meetingErr != nil {
		return nil, f.meetingErr
	}
	return f.meeting, nil
}

func (f *fakeMeetingRepo) GetTranscriptionText(_ context.Context, _ uuid.UUID) (string, error) {
	if f.transcriptErr != nil {
		return "", f.transcriptErr
	}
	return f.transcript, nil
}

type fakeSummaryRepo struct {
	saved   []*entities.MeetingSummary
	stored  *entities.MeetingSummary
	saveErr error
}

func (f *fakeSummaryRepo) SaveMeetingSummary(_ context.Context, s *entities.MeetingSummary) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

func (f *fakeSummaryRepo) GetMeetingSummary(_ context.Context, _ uuid.UUID) (*entities.MeetingSummary, error) {
	if f.stored == nil {
		return nil, entities.ErrSummaryNotFound
	}
	return f.stored, nil
}

type fakeCache struct {
	entries map[string]string
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) SetWithTTL(_ context.Context, key, value string, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.entries[key]
	return v, ok, nil
}

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type fixedSummarizer struct {
	text string
	err  error
}

func (f *fixedSummarizer) Summarize(_ context.Context, _ llm.Request) (string, error) {
	return f.text, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Summary: config.SummaryConfig{
			MinMeetingDuration: 60,
			MaxInputLength:     8000,
			CacheTTL:           time.Hour,
			AnalysisWorkers:    2,
		},
	}
}

func testMeeting() *entities.Meeting {
	return &entities.Meeting{
		ID:               uuid.New(),
		Title:            "Sprint Planning",
		DurationSeconds:  3600,
		ParticipantCount: 4,
	}
}

func newTestService(meetingRepo *fakeMeetingRepo, summaryRepo *fakeSummaryRepo, cache *fakeCache, publisher *fakePublisher) Service {
	return NewService(meetingRepo, summaryRepo, cache, publisher,
		&fixedSummarizer{text: "Executive overview of the meeting."}, testConfig(), zap.NewNop())
}

func TestGenerateMeetingSummary(t *testing.T) {
	meeting := testMeeting()
	meetingRepo := &fakeMeetingRepo{meeting: meeting, transcript: testTranscript}
	summaryRepo := &fakeSummaryRepo{}
	cache := newFakeCache()
	publisher := &fakePublisher{}
	svc := newTestService(meetingRepo, summaryRepo, cache, publisher)

	summary, err := svc.GenerateMeetingSummary(context.Background(), meeting.ID)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, meeting.ID, summary.MeetingID)
	assert.Equal(t, "Sprint Planning", summary.Title)
	assert.Equal(t, "Executive overview of the meeting.", summary.ExecutiveSummary)
	assert.NotEmpty(t, summary.Decisions)
	assert.NotEmpty(t, summary.ActionItems)
	assert.NotZero(t, summary.Confidence)
	assert.NotEmpty(t, summary.OverallSentiment)
	assert.NotEmpty(t, summary.EngagementLevel)
	assert.False(t, summary.GeneratedAt.IsZero())

	// persisted, cached and announced
	require.Len(t, summaryRepo.saved, 1)
	_, cached, _ := cache.Get(context.Background(), "summary:"+meeting.ID.String())
	assert.True(t, cached)

	require.Len(t, publisher.payloads, 1)
	var event map[string]any
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &event))
	assert.Equal(t, "summary_generated", event["type"])
	assert.Equal(t, meeting.ID.String(), event["meeting_id"])
	assert.Equal(t, "summary_"+meeting.ID.String(), event["summary_id"])
	data, ok := event["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "productivity_score")
	assert.Contains(t, data, "key_points_count")
}

func requireAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) apperrors.AppError {
	t.Helper()
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

// Real meetings routinely exceed the LLM input cap; extraction must still see
// the full transcript, only the summarizer prompt gets truncated.
func TestGenerateMeetingSummaryExtractsBeyondLLMInputCap(t *testing.T) {
	meeting := testMeeting()
	filler := strings.Repeat("The group compared notes on the weekly schedule without reaching a verdict. ", 130)
	require.Greater(t, len(filler), testConfig().Summary.MaxInputLength)
	transcript := filler + "Sarah: We decided that the launch moves to the first week of March."

	meetingRepo := &fakeMeetingRepo{meeting: meeting, transcript: transcript}
	svc := newTestService(meetingRepo, &fakeSummaryRepo{}, newFakeCache(), &fakePublisher{})

	summary, err := svc.GenerateMeetingSummary(context.Background(), meeting.ID)
	require.NoError(t, err)
	require.NotNil(t, summary)

	found := false
	for _, d := range summary.Decisions {
		if strings.Contains(d.Description, "first week of March") {
			found = true
		}
	}
	assert.True(t, found, "decision past the input cap should be extracted, got %+v", summary.Decisions)
}

func TestGenerateMeetingSummaryMeetingAbsent(t *testing.T) {
	meetingRepo := &fakeMeetingRepo{meetingErr: entities.ErrMeetingNotFound}
	summaryRepo := &fakeSummaryRepo{}
	publisher := &fakePublisher{}
	svc := newTestService(meetingRepo, summaryRepo, newFakeCache(), publisher)

	summary, err := svc.GenerateMeetingSummary(context.Background(), uuid.New())
	requireAppErrorCode(t, err, apperrors.ErrorCode_DATA_UNAVAILABLE)
	assert.Nil(t, summary)
	assert.Empty(t, summaryRepo.saved)
	assert.Empty(t, publisher.payloads)

	// a skip is not a pipeline failure
	assert.Zero(t, svc.Metrics().ErrorCount)
}

func TestGenerateMeetingSummaryTranscriptAbsent(t *testing.T) {
	meetingRepo := &fakeMeetingRepo{meeting: testMeeting(), transcriptErr: entities.ErrTranscriptNotFound}
	summaryRepo := &fakeSummaryRepo{}
	svc := newTestService(meetingRepo, summaryRepo, newFakeCache(), &fakePublisher{})

	summary, err := svc.GenerateMeetingSummary(context.Background(), uuid.New())
	requireAppErrorCode(t, err, apperrors.ErrorCode_DATA_UNAVAILABLE)
	assert.Nil(t, summary)
	assert.Empty(t, summaryRepo.saved)
}

func TestGenerateMeetingSummaryTranscriptTooShort(t *testing.T) {
	meetingRepo := &fakeMeetingRepo{meeting: testMeeting(), transcript: "too short"}
	summaryRepo := &fakeSummaryRepo{}
	publisher := &fakePublisher{}
	svc := newTestService(meetingRepo, summaryRepo, newFakeCache(), publisher)

	summary, err := svc.GenerateMeetingSummary(context.Background(), uuid.New())
	appErr := requireAppErrorCode(t, err, apperrors.ErrorCode_INELIGIBLE_MEETING)
	assert.Equal(t, entities.ErrTranscriptTooShort.Error(), appErr.Details["reason"])
	assert.Nil(t, summary)
	assert.Empty(t, summaryRepo.saved)
	assert.Empty(t, publisher.payloads)
}

func TestGenerateMeetingSummaryMeetingTooShort(t *testing.T) {
	meeting := testMeeting()
	meeting.DurationSeconds = 30
	meetingRepo := &fakeMeetingRepo{meeting: meeting, transcript: testTranscript}
	summaryRepo := &fakeSummaryRepo{}
	svc := newTestService(meetingRepo, summaryRepo, newFakeCache(), &fakePublisher{})

	summary, err := svc.GenerateMeetingSummary(context.Background(), meeting.ID)
	appErr := requireAppErrorCode(t, err, apperrors.ErrorCode_INELIGIBLE_MEETING)
	assert.Equal(t, entities.ErrMeetingTooShort.Error(), appErr.Details["reason"])
	assert.Nil(t, summary)
	assert.Empty(t, summaryRepo.saved)
}

func TestGenerateMeetingSummarySideEffectFailuresAreNonFatal(t *testing.T) {
	meeting := testMeeting()
	meetingRepo := &fakeMeetingRepo{meeting: meeting, transcript: testTranscript}
	summaryRepo := &fakeSummaryRepo{saveErr: errors.New("db down")}
	cache := newFakeCache()
	cache.setErr = errors.New("redis down")
	publisher := &fakePublisher{err: errors.New("nats down")}
	svc := newTestService(meetingRepo, summaryRepo, cache, publisher)

	summary, err := svc.GenerateMeetingSummary(context.Background(), meeting.ID)
	require.NoError(t, err)
	require.NotNil(t, summary)
}

func TestGenerateMeetingSummarySummarizerFailureUsesErrorText(t *testing.T) {
	meeting := testMeeting()
	meetingRepo := &fakeMeetingRepo{meeting: meeting, transcript: testTranscript}
	svc := NewService(meetingRepo, &fakeSummaryRepo{}, newFakeCache(), &fakePublisher{},
		&fixedSummarizer{err: errors.New("all strategies down")}, testConfig(), zap.NewNop())

	summary, err := svc.GenerateMeetingSummary(context.Background(), meeting.ID)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, llm.ErrorSummary, summary.ExecutiveSummary)
}

func TestGetMeetingSummaryCacheHit(t *testing.T) {
	meeting := testMeeting()
	stored := entities.NewMeetingSummary(meeting.ID)
	stored.ExecutiveSummary = "cached text"
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	cache := newFakeCache()
	cache.entries["summary:"+meeting.ID.String()] = string(raw)

	// a nil-ish repo proves the database is not touched on a cache hit
	svc := newTestService(&fakeMeetingRepo{}, &fakeSummaryRepo{}, cache, &fakePublisher{})

	got, err := svc.GetMeetingSummary(context.Background(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "cached text", got.ExecutiveSummary)
}

func TestGetMeetingSummaryCacheMissWarmsCache(t *testing.T) {
	meeting := testMeeting()
	stored := entities.NewMeetingSummary(meeting.ID)
	stored.ExecutiveSummary = "db text"

	cache := newFakeCache()
	svc := newTestService(&fakeMeetingRepo{}, &fakeSummaryRepo{stored: stored}, cache, &fakePublisher{})

	got, err := svc.GetMeetingSummary(context.Background(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "db text", got.ExecutiveSummary)

	_, ok, _ := cache.Get(context.Background(), "summary:"+meeting.ID.String())
	assert.True(t, ok, "summary should be re-cached after a database hit")
}

func TestGetMeetingSummaryNotFound(t *testing.T) {
	svc := newTestService(&fakeMeetingRepo{}, &fakeSummaryRepo{}, newFakeCache(), &fakePublisher{})

	_, err := svc.GetMeetingSummary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entities.ErrSummaryNotFound)
}

func TestMetricsSnapshot(t *testing.T) {
	meeting := testMeeting()
	meetingRepo := &fakeMeetingRepo{meeting: meeting, transcript: testTranscript}
	svc := newTestService(meetingRepo, &fakeSummaryRepo{}, newFakeCache(), &fakePublisher{})

	before := svc.Metrics()
	_, err := svc.GenerateMeetingSummary(context.Background(), meeting.ID)
	require.NoError(t, err)

	after := svc.Metrics()
	assert.Equal(t, before.SummariesGenerated+1, after.SummariesGenerated)
	assert.GreaterOrEqual(t, after.TotalProcessingTime, before.TotalProcessingTime)
	assert.Greater(t, after.AverageProcessingTime, 0.0)
}
