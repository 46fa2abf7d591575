package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nexuslabs/summary-engine/internal/domain/entities"
)

// contextWindow is the number of characters kept on each side of a decision
// match; the window is used for participant attribution only.
const contextWindow = 100

// Extractor recovers decision and action-item candidates by running ordered
// pattern sets across the full preprocessed text. Results are deduplicated by
// exact description and capped.
type Extractor struct {
	decisionSpecs []MatcherSpec
	actionSpecs   []MatcherSpec
	resolver      *Resolver
}

// NewExtractor creates an extractor with the default pattern sets.
func NewExtractor() *Extractor {
	e, err := NewExtractorWithPatterns(DefaultDecisionPatterns(), DefaultActionPatterns())
	if err != nil {
		// The default patterns are compile-tested; this cannot happen.
		panic(err)
	}
	return e
}

// NewExtractorWithPatterns creates an extractor with caller-supplied pattern
// sets. Patterns are compiled eagerly so invalid ones fail construction.
func NewExtractorWithPatterns(decisions, actions []MatcherSpec) (*Extractor, error) {
	for i := range decisions {
		if err := decisions[i].compile(); err != nil {
			return nil, fmt.Errorf("invalid decision pattern %q: %w", decisions[i].Name, err)
		}
	}
	for i := range actions {
		if err := actions[i].compile(); err != nil {
			return nil, fmt.Errorf("invalid action pattern %q: %w", actions[i].Name, err)
		}
	}
	return &Extractor{
		decisionSpecs: decisions,
		actionSpecs:   actions,
		resolver:      NewResolver(),
	}, nil
}

// match is one raw pattern hit: the primary capture plus the span of the full
// match within the text.
type match struct {
	capture string
	start   int
	end     int
}

// runSpecs applies every spec in order against text and yields matches whose
// capture meets the spec's minimum length.
func runSpecs(specs []MatcherSpec, text string) []match {
	var out []match
	for _, spec := range specs {
		for _, loc := range spec.re.FindAllStringSubmatchIndex(text, -1) {
			ci := spec.CaptureIndex * 2
			if ci+1 >= len(loc) || loc[ci] < 0 {
				continue
			}
			capture := strings.TrimSpace(text[loc[ci]:loc[ci+1]])
			if len(capture) <= spec.MinLength {
				continue
			}
			out = append(out, match{capture: capture, start: loc[0], end: loc[1]})
		}
	}
	return out
}

// ExtractDecisions returns up to MaxDecisions unique decisions in discovery
// order across the pattern sets.
func (e *Extractor) ExtractDecisions(text string) []entities.Decision {
	set := newOrderedSet[entities.Decision](entities.MaxDecisions)

	for _, m := range runSpecs(e.decisionSpecs, text) {
		start := m.start - contextWindow
		if start < 0 {
			start = 0
		}
		end := m.end + contextWindow
		if end > len(text) {
			end = len(text)
		}
		// keep the window on rune boundaries
		for start > 0 && !utf8.RuneStart(text[start]) {
			start--
		}
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end++
		}
		context := strings.TrimSpace(text[start:end])

		set.add(m.capture, entities.Decision{
			Description:  m.capture,
			Context:      context,
			Participants: e.resolver.ExtractSpeakers(context),
			Confidence:   entities.DecisionConfidence,
		})
	}

	return set.values()
}

// ExtractActionItems returns up to MaxActionItems unique action items in
// discovery order, with assignee, due date, priority and category resolved
// from the action text.
func (e *Extractor) ExtractActionItems(text string) []entities.ActionItem {
	set := newOrderedSet[entities.ActionItem](entities.MaxActionItems)

	for _, m := range runSpecs(e.actionSpecs, text) {
		set.add(m.capture, entities.ActionItem{
			Description: m.capture,
			AssignedTo:  e.resolver.ResolveAssignee(m.capture),
			DueDate:     e.resolver.ResolveDueDate(m.capture),
			Priority:    e.resolver.ResolvePriority(m.capture),
			Category:    e.resolver.ResolveCategory(m.capture),
			Confidence:  entities.ActionItemConfidence,
		})
	}

	return set.values()
}
