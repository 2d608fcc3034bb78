package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/studentnest/internal/domain"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
	logpkg "github.com/kailas-cloud/studentnest/internal/logger"
	askuc "github.com/kailas-cloud/studentnest/internal/usecase/ask"
	browseuc "github.com/kailas-cloud/studentnest/internal/usecase/browse"
	healthuc "github.com/kailas-cloud/studentnest/internal/usecase/health"
	recorduc "github.com/kailas-cloud/studentnest/internal/usecase/record"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the StudentNest HTTP API.
type Server struct {
	ask           *askuc.Service
	browse        *browseuc.Service
	records       *recorduc.Service
	health        *healthuc.Service
	metrics       http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	ask *askuc.Service,
	browse *browseuc.Service,
	records *recorduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		ask:     ask,
		browse:  browse,
		records: records,
		health:  health,
		metrics: promhttp.Handler(),
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		fieldErrorHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidCollection, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidRecord, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrDuplicateRecord, http.StatusConflict, ErrorCodeConflict),
		sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, ErrorCodeNotImplemented),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, ErrorCodeStoreUnavailable),
	}
	return s
}

// WithMetricsHandler replaces the default promhttp handler served at /metrics.
func (s *Server) WithMetricsHandler(h http.Handler) *Server {
	if h != nil {
		s.metrics = h
	}
	return s
}

// Routes mounts every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ask", s.Ask)
		r.Get("/faq", s.ListFAQ)
		r.Get("/faq/categories", s.ListCategories)
		r.Get("/faq/{id}", s.GetFAQ)
		r.Post("/collections/{collection}/records", s.InsertRecord)
		r.Get("/collections/{collection}/records", s.ListRecords)
	})
}

// Ask handles POST /api/v1/ask. Blank questions answer with suggestions, not an error.
func (s *Server) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := logpkg.WithFields(r.Context(), zap.Int("query_len", len(req.Query)))
	res := s.ask.Ask(ctx, req.Query)

	writeJSON(w, http.StatusOK, resultToResponse(res, askuc.Suggestions()))
}

// ListFAQ handles GET /api/v1/faq?q=&category=.
func (s *Server) ListFAQ(w http.ResponseWriter, r *http.Request) {
	var term, category *string
	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &term); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter q")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "category", r.URL.Query(), &category); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter category")
		return
	}

	recs := s.browse.Filter(deref(term), deref(category))
	items := make([]FAQItem, len(recs))
	for i, rec := range recs {
		items[i] = faqToItem(rec)
	}

	writeJSON(w, http.StatusOK, FAQListResponse{Items: items, Total: len(items)})
}

// ListCategories handles GET /api/v1/faq/categories.
func (s *Server) ListCategories(w http.ResponseWriter, _ *http.Request) {
	cats := s.browse.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: out})
}

// GetFAQ handles GET /api/v1/faq/{id}.
func (s *Server) GetFAQ(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := bindPath("id", r, &id); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter id")
		return
	}

	rec, err := s.browse.Get(id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, faqToItem(rec))
}

// InsertRecord handles POST /api/v1/collections/{collection}/records.
func (s *Server) InsertRecord(w http.ResponseWriter, r *http.Request) {
	var collection string
	if err := bindPath("collection", r, &collection); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter collection")
		return
	}

	var req RecordInsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rec, err := s.records.Insert(r.Context(), collection, req.Fields)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordToResponse(rec))
}

// ListRecords handles GET /api/v1/collections/{collection}/records?order_by=&desc=.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	var collection string
	if err := bindPath("collection", r, &collection); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter collection")
		return
	}

	var orderBy *string
	var desc *bool
	if err := runtime.BindQueryParameter("form", true, false, "order_by", r.URL.Query(), &orderBy); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter order_by")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "desc", r.URL.Query(), &desc); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter desc")
		return
	}

	var order *domrec.Order
	if orderBy != nil && *orderBy != "" {
		order = &domrec.Order{Field: *orderBy, Desc: desc != nil && *desc}
	}

	recs, err := s.records.SelectAll(r.Context(), collection, order)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]RecordResponse, len(recs))
	for i, rec := range recs {
		items[i] = recordToResponse(rec)
	}
	writeJSON(w, http.StatusOK, RecordListResponse{Items: items, Total: len(items)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

func bindPath(name string, r *http.Request, dest any) error {
	return runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidCollection,
		domain.ErrInvalidRecord,
		domain.ErrDuplicateRecord,
		domain.ErrNotImplemented,
		domain.ErrStoreUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// fieldErrorHandler reports which record field failed validation.
func fieldErrorHandler(w http.ResponseWriter, err error, _ string) bool {
	var fe *domain.FieldError
	if !errors.As(err, &fe) {
		return false
	}
	writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, fe.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
