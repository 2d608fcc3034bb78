package chi

import (
	"time"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
	"github.com/kailas-cloud/studentnest/internal/domain/faq"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeConflict         ErrorCode = "conflict"
	ErrorCodeNotImplemented   ErrorCode = "not_implemented"
	ErrorCodeStoreUnavailable ErrorCode = "store_unavailable"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// AskRequest is the body of POST /api/v1/ask.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse renders one of the three result kinds.
type AskResponse struct {
	Kind        answer.Kind     `json:"kind"`
	Answer      *FAQItem        `json:"answer,omitempty"`
	Relevance   *int            `json:"relevance,omitempty"`
	Text        string          `json:"text,omitempty"`
	Candidates  []CandidateItem `json:"candidates,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// CandidateItem is a scored record reference.
type CandidateItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Score    int    `json:"score"`
}

// FAQItem is one knowledge record.
type FAQItem struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// FAQListResponse is the browse result.
type FAQListResponse struct {
	Items []FAQItem `json:"items"`
	Total int       `json:"total"`
}

// CategoriesResponse lists browse categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// RecordInsertRequest is the body of POST /collections/{collection}/records.
type RecordInsertRequest struct {
	Fields map[string]string `json:"fields"`
}

// RecordResponse is one stored record.
type RecordResponse struct {
	ID         string            `json:"id"`
	Collection string            `json:"collection"`
	Fields     map[string]string `json:"fields"`
	CreatedAt  time.Time         `json:"created_at"`
}

// RecordListResponse lists a collection.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Total int              `json:"total"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func faqToItem(r faq.Record) FAQItem {
	tags := r.Tags()
	if tags == nil {
		tags = []string{}
	}
	return FAQItem{
		ID:       r.ID(),
		Question: r.Question(),
		Answer:   r.Answer(),
		Category: string(r.Category()),
		Tags:     tags,
	}
}

func resultToResponse(res answer.Result, suggestions []string) AskResponse {
	resp := AskResponse{Kind: res.Kind()}

	switch res.Kind() {
	case answer.KindSingle:
		best, _ := res.Best()
		item := faqToItem(best.Record())
		relevance := res.RelevancePercent()
		resp.Answer = &item
		resp.Relevance = &relevance
		resp.Candidates = candidatesToItems(res.Candidates())
	case answer.KindSynthesized:
		resp.Text = res.Text()
		resp.Candidates = candidatesToItems(res.Candidates())
	default:
		resp.Suggestions = suggestions
	}
	return resp
}

func candidatesToItems(cands []answer.Candidate) []CandidateItem {
	out := make([]CandidateItem, len(cands))
	for i, c := range cands {
		out[i] = CandidateItem{ID: c.Record().ID(), Question: c.Record().Question(), Score: c.Score()}
	}
	return out
}

func recordToResponse(r domrec.Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID(),
		Collection: r.Collection(),
		Fields:     r.Fields(),
		CreatedAt:  time.UnixMilli(r.CreatedAt()).UTC(),
	}
}
