package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type carried across layer boundaries.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Summary pipeline errors

// ErrDataUnavailable covers missing meeting metadata or transcript. The
// request is rejected, not failed: no error counter is incremented.
func ErrDataUnavailable(meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_DATA_UNAVAILABLE,
		Message:  "Meeting data or transcript unavailable",
	}.WithDetail("meeting_id", meetingID)
}

// ErrIneligibleMeeting covers meetings too short or too brief to summarize.
func ErrIneligibleMeeting(meetingID, reason string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_INELIGIBLE_MEETING,
		Message:  "Meeting not eligible for summarization",
	}.WithDetail("meeting_id", meetingID).WithDetail("reason", reason)
}

// ErrExtractionStepFailed marks a single extraction component failure. The
// pipeline degrades that component to its empty output and continues.
func ErrExtractionStepFailed(step string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXTRACTION_STEP_FAILED,
		Message:  fmt.Sprintf("Extraction step failed: %s", step),
	}
}

// ErrSummarizationFailed marks both executive-summary strategies failing.
func ErrSummarizationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SUMMARIZATION_FAILED,
		Message:  "Executive summary generation failed",
	}
}

// ErrSideEffectFailed marks a persistence/cache/event-publish failure. These
// are logged and never propagated to the caller.
func ErrSideEffectFailed(effect string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SIDE_EFFECT_FAILED,
		Message:  fmt.Sprintf("Side effect failed: %s", effect),
	}
}

// ErrPipelineFailed marks an unexpected failure in aggregation or assembly;
// the whole request fails with no partial summary.
func ErrPipelineFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PIPELINE_FAILED,
		Message:  "Summary pipeline failed",
	}
}
