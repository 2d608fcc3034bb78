package studentnest

import (
	"time"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
	"github.com/kailas-cloud/studentnest/internal/domain/faq"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
	askuc "github.com/kailas-cloud/studentnest/internal/usecase/ask"
)

// Kind is the shape of an answer.
type Kind string

// Answer kinds.
const (
	Single      Kind = Kind(answer.KindSingle)
	Synthesized Kind = Kind(answer.KindSynthesized)
	None        Kind = Kind(answer.KindNone)
)

// FAQ is one knowledge record.
type FAQ struct {
	ID       string
	Question string
	Answer   string
	Category string
	Tags     []string
}

// Candidate is a record that contributed to a synthesized answer.
type Candidate struct {
	FAQ   FAQ
	Score int
}

// Answer is the outcome of Client.Ask.
type Answer struct {
	Kind Kind
	// Best is set for Single answers.
	Best *FAQ
	// Relevance is the capped score of Best, 0 otherwise.
	Relevance  int
	Text       string
	Candidates []Candidate
	// Suggestions is set for None answers.
	Suggestions []string
}

// Record is an entry in the record store.
type Record struct {
	ID         string
	Collection string
	Fields     map[string]string
	CreatedAt  time.Time
}

func faqFromDomain(r faq.Record) FAQ {
	return FAQ{
		ID:       r.ID(),
		Question: r.Question(),
		Answer:   r.Answer(),
		Category: string(r.Category()),
		Tags:     r.Tags(),
	}
}

func faqsFromDomain(recs []faq.Record) []FAQ {
	out := make([]FAQ, len(recs))
	for i, r := range recs {
		out[i] = faqFromDomain(r)
	}
	return out
}

func (f FAQ) toDomain() (faq.Record, error) {
	return faq.New(f.ID, f.Question, f.Answer, faq.Category(f.Category), f.Tags)
}

func answerFromDomain(res answer.Result) Answer {
	out := Answer{Kind: Kind(res.Kind()), Text: res.Text()}
	switch res.Kind() {
	case answer.KindSingle:
		best, _ := res.Best()
		f := faqFromDomain(best.Record())
		out.Best = &f
		out.Relevance = res.RelevancePercent()
	case answer.KindSynthesized:
		for _, c := range res.Candidates() {
			out.Candidates = append(out.Candidates, Candidate{FAQ: faqFromDomain(c.Record()), Score: c.Score()})
		}
	default:
		out.Suggestions = askuc.Suggestions()
	}
	return out
}

func recordFromDomain(r domrec.Record) Record {
	return Record{
		ID:         r.ID(),
		Collection: r.Collection(),
		Fields:     r.Fields(),
		CreatedAt:  time.UnixMilli(r.CreatedAt()).UTC(),
	}
}
