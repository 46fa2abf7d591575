package handler

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nexuslabs/summary-engine/errors"
	"github.com/nexuslabs/summary-engine/internal/adapter/dto"
	"github.com/nexuslabs/summary-engine/internal/domain/entities"
	summaryuse "github.com/nexuslabs/summary-engine/internal/usecase/summary"
)

// SummaryController handles the summary API endpoints
type SummaryController struct {
	svc        summaryuse.Service
	logger     *zap.Logger
	components map[string]bool
}

// NewSummaryController creates a new summary controller. components carries
// static availability flags (llm configured, local model configured, broker
// connected) surfaced on the health endpoint.
func NewSummaryController(svc summaryuse.Service, logger *zap.Logger, components map[string]bool) *SummaryController {
	return &SummaryController{svc: svc, logger: logger, components: components}
}

// bindMeetingID binds and validates the :id path parameter.
func (sc *SummaryController) bindMeetingID(c echo.Context) (uuid.UUID, error) {
	var param dto.MeetingIDParam
	if err := c.Bind(&param); err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("meeting id must be a UUID")
	}
	if err := c.Validate(&param); err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("meeting id must be a UUID")
	}
	meetingID, err := uuid.Parse(param.ID)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("meeting id must be a UUID")
	}
	return meetingID, nil
}

// GenerateSummary runs the summarization pipeline for a meeting
func (sc *SummaryController) GenerateSummary(c echo.Context) error {
	meetingID, err := sc.bindMeetingID(c)
	if err != nil {
		return HandleError(sc.logger, c, err)
	}

	summary, err := sc.svc.GenerateMeetingSummary(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(sc.logger, c, err)
	}

	return HandleSuccess(sc.logger, c, http.StatusCreated, dto.GenerateSummaryResponse{
		Status:  "generated",
		Summary: summary,
	})
}

// GetSummary returns a previously generated summary
func (sc *SummaryController) GetSummary(c echo.Context) error {
	meetingID, err := sc.bindMeetingID(c)
	if err != nil {
		return HandleError(sc.logger, c, err)
	}

	summary, err := sc.svc.GetMeetingSummary(c.Request().Context(), meetingID)
	if stdErrors.Is(err, entities.ErrSummaryNotFound) {
		return HandleError(sc.logger, c, errors.ErrNotFound("summary"))
	}
	if err != nil {
		return HandleError(sc.logger, c, err)
	}

	return HandleSuccess(sc.logger, c, http.StatusOK, dto.SummaryResponse{Summary: summary})
}

// GetActionItems returns the action items from a meeting's summary
func (sc *SummaryController) GetActionItems(c echo.Context) error {
	meetingID, err := sc.bindMeetingID(c)
	if err != nil {
		return HandleError(sc.logger, c, err)
	}

	summary, err := sc.svc.GetMeetingSummary(c.Request().Context(), meetingID)
	if stdErrors.Is(err, entities.ErrSummaryNotFound) {
		return HandleError(sc.logger, c, errors.ErrNotFound("summary"))
	}
	if err != nil {
		return HandleError(sc.logger, c, err)
	}

	return HandleSuccess(sc.logger, c, http.StatusOK, dto.ActionItemsResponse{
		MeetingID:   meetingID.String(),
		ActionItems: summary.ActionItems,
	})
}

// GetStats returns pipeline throughput counters
func (sc *SummaryController) GetStats(c echo.Context) error {
	return HandleSuccess(sc.logger, c, http.StatusOK, sc.svc.Metrics())
}

// Healthz reports service liveness, component availability and the pipeline
// counter snapshot
func (sc *SummaryController) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "ok",
		Service:    "summary-engine",
		Components: sc.components,
		Stats:      sc.svc.Metrics(),
		Timestamp:  time.Now().UTC(),
	})
}
