package entities

import "errors"

// Domain errors
var (
	// Data availability
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrSummaryNotFound    = errors.New("summary not found")

	// Eligibility (a skip, not a failure)
	ErrTranscriptTooShort = errors.New("transcript too short for summarization")
	ErrMeetingTooShort    = errors.New("meeting too short for summarization")
)
