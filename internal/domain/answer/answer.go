// Package answer holds the outcome of resolving a free-text question against the catalog.
package answer

import "github.com/kailas-cloud/studentnest/internal/domain/faq"

// MaxReportedScore caps the externally reported score of a single match.
const MaxReportedScore = 100

// Kind discriminates the result variants.
type Kind string

// Result kinds.
const (
	KindSingle      Kind = "single"
	KindSynthesized Kind = "synthesized"
	KindNone        Kind = "none"
)

// Candidate pairs a record with its relevance score.
type Candidate struct {
	record faq.Record
	score  int
}

// NewCandidate creates a scored candidate.
func NewCandidate(r faq.Record, score int) Candidate {
	return Candidate{record: r, score: score}
}

// Record returns the scored record.
func (c Candidate) Record() faq.Record { return c.record }

// Score returns the raw integer score.
func (c Candidate) Score() int { return c.score }

// Result is one of single, synthesized or none.
type Result struct {
	kind       Kind
	candidates []Candidate
	text       string
}

// Single creates a single-match result. The reported score is clamped to MaxReportedScore.
func Single(c Candidate) Result {
	if c.score > MaxReportedScore {
		c.score = MaxReportedScore
	}
	return Result{kind: KindSingle, candidates: []Candidate{c}}
}

// Synthesized creates a multi-record result with its rendered text.
func Synthesized(candidates []Candidate, text string) Result {
	owned := make([]Candidate, len(candidates))
	copy(owned, candidates)
	return Result{kind: KindSynthesized, candidates: owned, text: text}
}

// None creates an empty result.
func None() Result {
	return Result{kind: KindNone}
}

// Kind returns the result variant.
func (r Result) Kind() Kind { return r.kind }

// Candidates returns the scored records (one for single, up to three for synthesized).
func (r Result) Candidates() []Candidate {
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// Best returns the top candidate, false for none.
func (r Result) Best() (Candidate, bool) {
	if len(r.candidates) == 0 {
		return Candidate{}, false
	}
	return r.candidates[0], true
}

// Text returns the rendered block of a synthesized result.
func (r Result) Text() string { return r.text }

// RelevancePercent returns the 0-100 indicator shown next to a single match.
func (r Result) RelevancePercent() int {
	if r.kind != KindSingle {
		return 0
	}
	s := r.candidates[0].score
	if s < 0 {
		return 0
	}
	if s > MaxReportedScore {
		return MaxReportedScore
	}
	return s
}
