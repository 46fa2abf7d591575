package errors

// ErrorCode identifies a failure class in API responses and logs.
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND

	// Summary pipeline taxonomy
	ErrorCode_DATA_UNAVAILABLE
	ErrorCode_INELIGIBLE_MEETING
	ErrorCode_EXTRACTION_STEP_FAILED
	ErrorCode_SUMMARIZATION_FAILED
	ErrorCode_SIDE_EFFECT_FAILED
	ErrorCode_PIPELINE_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_DATA_UNAVAILABLE:       "DATA_UNAVAILABLE",
	ErrorCode_INELIGIBLE_MEETING:     "INELIGIBLE_MEETING",
	ErrorCode_EXTRACTION_STEP_FAILED: "EXTRACTION_STEP_FAILED",
	ErrorCode_SUMMARIZATION_FAILED:   "SUMMARIZATION_FAILED",
	ErrorCode_SIDE_EFFECT_FAILED:     "SIDE_EFFECT_FAILED",
	ErrorCode_PIPELINE_FAILED:        "PIPELINE_FAILED",
}

// String returns the wire name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
