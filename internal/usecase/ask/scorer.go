package ask

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
	"github.com/kailas-cloud/studentnest/internal/domain/faq"
)

// Scoring weights and cutoffs. These are compatibility values and must not be tuned.
const (
	exactQuestionBonus = 100
	phraseInQuestion   = 40
	tokenInQuestion    = 20
	tokenInAnswer      = 10
	tokenInTag         = 15

	minTokenLen      = 4 // tokens need length > 3
	singleThreshold  = 15
	synthesizeCutoff = 5
	maxSynthesized   = 3
)

// Scorer resolves free-text questions against a catalog.
type Scorer struct {
	render Renderer
}

// NewScorer creates a scorer. A nil renderer falls back to the plain-text renderer.
func NewScorer(r Renderer) *Scorer {
	if r == nil {
		r = PlainRenderer{}
	}
	return &Scorer{render: r}
}

// Resolve maps a raw query to a single, synthesized or empty result.
// Pure and deterministic: no I/O and no shared mutable state.
func (s *Scorer) Resolve(query string, cat faq.Catalog) answer.Result {
	q := normalize(query)
	if q == "" {
		return answer.None()
	}

	scored := ScoreAll(q, cat)
	if len(scored) == 0 {
		return answer.None()
	}

	// Strict greater-than keeps the first maximum in catalog order.
	best := scored[0]
	for _, c := range scored[1:] {
		if c.Score() > best.Score() {
			best = c
		}
	}

	if best.Score() > singleThreshold {
		return answer.Single(best)
	}

	var weak []answer.Candidate
	for _, c := range scored {
		if c.Score() > synthesizeCutoff {
			weak = append(weak, c)
		}
	}
	if len(weak) == 0 {
		return answer.None()
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Score() > weak[j].Score()
	})
	if len(weak) > maxSynthesized {
		weak = weak[:maxSynthesized]
	}

	return answer.Synthesized(weak, s.render.Render(weak))
}

// ScoreAll scores every record in catalog order against an already normalized query.
func ScoreAll(normalized string, cat faq.Catalog) []answer.Candidate {
	if normalized == "" {
		return nil
	}
	tokens := significantTokens(normalized)

	out := make([]answer.Candidate, cat.Len())
	for i := range cat.Len() {
		r := cat.At(i)
		out[i] = answer.NewCandidate(r, scoreRecord(normalized, tokens, r))
	}
	return out
}

// Score computes the raw score of one record for a raw query.
func Score(query string, r faq.Record) int {
	q := normalize(query)
	if q == "" {
		return 0
	}
	return scoreRecord(q, significantTokens(q), r)
}

func scoreRecord(q string, tokens []string, r faq.Record) int {
	question := strings.ToLower(r.Question())
	ans := strings.ToLower(r.Answer())

	score := 0
	if question == q {
		score += exactQuestionBonus
	}

	for _, tok := range tokens {
		if strings.Contains(question, tok) {
			score += tokenInQuestion
		}
		if strings.Contains(ans, tok) {
			score += tokenInAnswer
		}
		for _, tag := range r.Tags() {
			if strings.Contains(strings.ToLower(tag), tok) {
				score += tokenInTag
			}
		}
	}

	if strings.Contains(question, q) {
		score += phraseInQuestion
	}
	return score
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// significantTokens keeps whitespace-delimited tokens longer than three characters.
// Duplicate tokens are kept and score again.
func significantTokens(q string) []string {
	words := strings.Fields(q)
	out := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) >= minTokenLen {
			out = append(out, w)
		}
	}
	return out
}
