package llm

import "context"

// Request carries the meeting context a summarizer needs to produce an
// executive summary.
type Request struct {
	Title            string
	DurationSeconds  int
	ParticipantCount int
	Transcript       string

	// TargetLength is the requested summary length in words; zero means the
	// strategy picks its own length.
	TargetLength int
}

// Summarizer produces a short executive summary for a meeting transcript.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
}

// PlaceholderSummary is returned when every summarization strategy fails.
const PlaceholderSummary = "Meeting summary unavailable due to processing limitations."

// ErrorSummary is the hard fallback used when summary assembly itself
// encounters an unrecoverable error.
const ErrorSummary = "Unable to generate summary due to processing error."
