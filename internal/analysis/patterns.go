package analysis

import "regexp"

// MatcherSpec is one declarative extraction pattern. Pattern sets are data,
// not code: the extractor runs a generic loop over whatever specs it is
// given, so the vocabulary can be extended without touching control flow.
type MatcherSpec struct {
	// Name tags the pattern for logging and tests.
	Name string
	// Pattern is a regexp applied across the full preprocessed text.
	Pattern string
	// CaptureIndex selects the capture group used as the candidate
	// description.
	CaptureIndex int
	// MinLength discards captures shorter than this many characters.
	MinLength int

	re *regexp.Regexp
}

// compile builds the regexp once; specs are compiled when the extractor is
// constructed so a bad pattern surfaces immediately.
func (m *MatcherSpec) compile() error {
	re, err := regexp.Compile(m.Pattern)
	if err != nil {
		return err
	}
	m.re = re
	return nil
}

// DefaultDecisionPatterns returns the built-in decision pattern set, in
// priority order.
func DefaultDecisionPatterns() []MatcherSpec {
	return []MatcherSpec{
		{
			Name:         "decided_that",
			Pattern:      `(?i)(?:decided|agreed|concluded|determined)\s+(?:that\s+)?(.+?)(?:\.|$)`,
			CaptureIndex: 1,
			MinLength:    10,
		},
		{
			Name:         "decision_label",
			Pattern:      `(?i)decision[:\s]+(.+?)(?:\.|$)`,
			CaptureIndex: 1,
			MinLength:    10,
		},
		{
			Name:         "we_will",
			Pattern:      `(?i)we\s+(?:will|are going to|have decided to)\s+(.+?)(?:\.|$)`,
			CaptureIndex: 1,
			MinLength:    10,
		},
	}
}

// DefaultActionPatterns returns the built-in action-item pattern set, in
// priority order.
func DefaultActionPatterns() []MatcherSpec {
	return []MatcherSpec{
		{
			Name:         "modal_verb",
			Pattern:      `(?i)(?:will|'ll|should|need to|must|have to)\s+(.+?)(?:\.|$)`,
			CaptureIndex: 1,
			MinLength:    5,
		},
		{
			Name:         "action_item_label",
			Pattern:      `(?i)action item[:\s]+(.+?)(?:\.|$)`,
			CaptureIndex: 1,
			MinLength:    5,
		},
		{
			Name:         "assignment",
			Pattern:      `(?i)(?:assigned to|@)(\w+)`,
			CaptureIndex: 1,
			MinLength:    5,
		},
		{
			Name:         "deadline",
			Pattern:      `(?i)by\s+(\w+day|\d{1,2}[\/\-]\d{1,2}|\w+\s+\d{1,2})`,
			CaptureIndex: 1,
			MinLength:    5,
		},
	}
}
