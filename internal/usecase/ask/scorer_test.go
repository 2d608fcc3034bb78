package ask

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
	"github.com/kailas-cloud/studentnest/internal/domain/faq"
	"github.com/kailas-cloud/studentnest/internal/repository/catalog"
)

func rec(id, question, ans string, tags ...string) faq.Record {
	return faq.Reconstruct(id, question, ans, faq.CampusLife, tags)
}

func mustCatalog(t *testing.T, recs ...faq.Record) faq.Catalog {
	t.Helper()
	cat, err := faq.NewCatalog(recs)
	require.NoError(t, err)
	return cat
}

func ids(cands []answer.Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Record().ID()
	}
	return out
}

func TestScore_CumulativeBonuses(t *testing.T) {
	r := rec("a", "Where is the library", "The library is open daily", "library", "library hours", "books")

	// question +20, answer +10, two tags +15 each, whole phrase in question +40
	assert.Equal(t, 100, Score("library", r))
	// exact question adds 100 on top of token and phrase points ("where" +20, "library" +60)
	assert.Equal(t, 100+20+60+40, Score("  WHERE is the LIBRARY ", r))
}

func TestScore_ShortTokensIgnored(t *testing.T) {
	r := rec("a", "When does the bus leave", "The bus leaves at noon", "bus")

	// "the" and "bus" are too short to score as tokens; only the phrase bonus applies
	assert.Equal(t, 40, Score("the bus", r))
	assert.Equal(t, 0, Score("bus", rec("b", "Shuttle times", "Take the bus")))
}

func TestScore_RepeatedTokensScoreAgain(t *testing.T) {
	r := rec("a", "Parking permits", "none")
	// two "parking" tokens at +20 each; the phrase is not in the question
	assert.Equal(t, 40, Score("parking parking", r))
}

func TestScore_BlankQuery(t *testing.T) {
	assert.Equal(t, 0, Score("   ", rec("a", "q", "a")))
}

func TestResolve_TieKeepsFirstInCatalogOrder(t *testing.T) {
	cat := mustCatalog(t,
		rec("x", "Parking permit info", "Apply online"),
		rec("y", "Parking garage hours", "Open 24/7"),
	)

	res := NewScorer(nil).Resolve("parking", cat)

	require.Equal(t, answer.KindSingle, res.Kind())
	best, _ := res.Best()
	assert.Equal(t, "x", best.Record().ID())
	assert.Equal(t, 60, best.Score())
}

func TestResolve_ThresholdFifteenIsNotSingle(t *testing.T) {
	cat := mustCatalog(t,
		rec("a", "Bus routes", "Ask the front desk", "shuttle"),
	)

	res := NewScorer(nil).Resolve("shuttle", cat)

	require.Equal(t, answer.KindSynthesized, res.Kind())
	assert.Equal(t, []string{"a"}, ids(res.Candidates()))
	assert.Equal(t, 15, res.Candidates()[0].Score())
}

func TestResolve_SynthesizedStableSortAndTruncation(t *testing.T) {
	cat := mustCatalog(t,
		rec("r1", "Getting around", "Take the shuttle"),
		rec("r2", "Airport pickup", "A shuttle runs on move-in day"),
		rec("r3", "Late nights", "The night shuttle stops at midnight"),
		rec("r4", "Bus routes", "Ask the front desk", "shuttle"),
		rec("r5", "Dining", "Cafeteria hours"),
	)

	res := NewScorer(nil).Resolve("shuttle", cat)

	require.Equal(t, answer.KindSynthesized, res.Kind())
	assert.Equal(t, []string{"r4", "r1", "r2"}, ids(res.Candidates()))

	text := res.Text()
	assert.True(t, strings.HasPrefix(text, synthIntro))
	assert.True(t, strings.HasSuffix(text, synthClosing))
	i4 := strings.Index(text, "• Bus routes\nAsk the front desk\n\n")
	i1 := strings.Index(text, "• Getting around\nTake the shuttle\n\n")
	i2 := strings.Index(text, "• Airport pickup\nA shuttle runs on move-in day\n\n")
	assert.True(t, i4 >= 0 && i4 < i1 && i1 < i2, "bullets out of order: %d %d %d", i4, i1, i2)
	assert.NotContains(t, text, "Late nights")
}

func TestResolve_CustomRenderer(t *testing.T) {
	cat := mustCatalog(t, rec("a", "Bus routes", "Take the shuttle"))
	r := rendererFunc(func(c []answer.Candidate) string { return "rendered:" + c[0].Record().ID() })

	res := NewScorer(r).Resolve("shuttle", cat)

	assert.Equal(t, "rendered:a", res.Text())
}

type rendererFunc func([]answer.Candidate) string

func (f rendererFunc) Render(c []answer.Candidate) string { return f(c) }

// --- Default catalog scenarios ---

func TestResolve_ExactQuestionReturnsThatRecord(t *testing.T) {
	cat := catalog.Default()
	s := NewScorer(nil)

	for _, r := range cat.Records() {
		res := s.Resolve(strings.ToLower(r.Question()), cat)
		require.Equal(t, answer.KindSingle, res.Kind(), "record %s", r.ID())
		best, _ := res.Best()
		assert.Equal(t, r.ID(), best.Record().ID())
	}
}

func TestResolve_RegisterForCourses(t *testing.T) {
	cat := catalog.Default()
	q := "How do I register for courses this semester?"

	res := NewScorer(nil).Resolve(q, cat)

	require.Equal(t, answer.KindSingle, res.Kind())
	best, _ := res.Best()
	assert.Equal(t, "1", best.Record().ID())
	assert.Equal(t, 100, best.Score())
	assert.Equal(t, 100, res.RelevancePercent())
	assert.Greater(t, Score(q, best.Record()), 100)
}

func TestResolve_Grades(t *testing.T) {
	cat := catalog.Default()

	res := NewScorer(nil).Resolve("grades", cat)

	require.NotEqual(t, answer.KindNone, res.Kind())
	best, _ := res.Best()
	assert.Equal(t, "10", best.Record().ID())

	// record 10 has the highest score among every record mentioning grades
	top := Score("grades", best.Record())
	for _, r := range cat.Records() {
		assert.LessOrEqual(t, Score("grades", r), top, "record %s", r.ID())
	}
}

func TestResolve_NoOverlap(t *testing.T) {
	res := NewScorer(nil).Resolve("xyzabc123", catalog.Default())
	assert.Equal(t, answer.KindNone, res.Kind())
}

func TestResolve_EmptyQuery(t *testing.T) {
	res := NewScorer(nil).Resolve("", catalog.Default())
	assert.Equal(t, answer.KindNone, res.Kind())
	assert.Empty(t, ScoreAll("", catalog.Default()))
}

func TestResolve_PassportSynthesizesThree(t *testing.T) {
	res := NewScorer(nil).Resolve("passport", catalog.Default())

	require.Equal(t, answer.KindSynthesized, res.Kind())
	assert.Equal(t, []string{"2", "4", "7"}, ids(res.Candidates()))
	for _, c := range res.Candidates() {
		assert.Equal(t, 10, c.Score())
	}
}

// --- Properties ---

var vocabulary = []string{
	"how", "register", "courses", "grades", "visa", "housing", "passport",
	"bank", "account", "roommate", "support", "jobs", "xyzabc", "the", "transcript",
	"insurance", "campus", "student", "shuttle", "gpa",
}

var whitespace = []string{" ", "\t", "\n", "  "}

func genQuery() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(vocabulary)-1)).Map(func(idx []int) string {
		words := make([]string, len(idx))
		for i, n := range idx {
			words[i] = vocabulary[n]
		}
		return strings.Join(words, " ")
	})
}

func TestResolve_Properties(t *testing.T) {
	cat := catalog.Default()
	s := NewScorer(nil)

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 300
	properties := gopter.NewProperties(params)

	properties.Property("blank queries never match", prop.ForAll(
		func(idx []int) bool {
			var sb strings.Builder
			for _, n := range idx {
				sb.WriteString(whitespace[n])
			}
			return s.Resolve(sb.String(), cat).Kind() == answer.KindNone
		},
		gen.SliceOf(gen.IntRange(0, len(whitespace)-1)),
	))

	properties.Property("resolution is deterministic", prop.ForAll(
		func(q string) bool {
			a, b := s.Resolve(q, cat), s.Resolve(q, cat)
			if a.Kind() != b.Kind() || a.Text() != b.Text() {
				return false
			}
			ca, cb := a.Candidates(), b.Candidates()
			if len(ca) != len(cb) {
				return false
			}
			for i := range ca {
				if ca[i].Record().ID() != cb[i].Record().ID() || ca[i].Score() != cb[i].Score() {
					return false
				}
			}
			return true
		},
		genQuery(),
	))

	properties.Property("single score within [16, 100]", prop.ForAll(
		func(q string) bool {
			res := s.Resolve(q, cat)
			if res.Kind() != answer.KindSingle {
				return true
			}
			best, _ := res.Best()
			return best.Score() >= 16 && best.Score() <= 100
		},
		genQuery(),
	))

	properties.Property("synthesized candidates are few, ordered and above the cutoff", prop.ForAll(
		func(q string) bool {
			res := s.Resolve(q, cat)
			if res.Kind() != answer.KindSynthesized {
				return true
			}
			cands := res.Candidates()
			if len(cands) == 0 || len(cands) > 3 {
				return false
			}
			for i, c := range cands {
				if c.Score() <= 5 || c.Score() > 15 {
					return false
				}
				if i > 0 && cands[i-1].Score() < c.Score() {
					return false
				}
			}
			return true
		},
		genQuery(),
	))

	properties.Property("case and surrounding space do not matter", prop.ForAll(
		func(q string) bool {
			a := s.Resolve(q, cat)
			b := s.Resolve("  "+strings.ToUpper(q)+"\t", cat)
			ba, okA := a.Best()
			bb, okB := b.Best()
			if okA != okB || a.Kind() != b.Kind() {
				return false
			}
			return !okA || (ba.Record().ID() == bb.Record().ID() && ba.Score() == bb.Score())
		},
		genQuery(),
	))

	properties.TestingRun(t)
}
