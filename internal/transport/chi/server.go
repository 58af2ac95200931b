// Package chi implements the HTTP transport for the retrieval API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/refsearch/internal/domain"
	"github.com/kailas-cloud/refsearch/internal/domain/query"
	healthuc "github.com/kailas-cloud/refsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/refsearch/internal/usecase/search"
)

// errorCode identifies an API error class in responses.
type errorCode string

const (
	codeBadRequest             errorCode = "bad_request"
	codeValidationFailed       errorCode = "validation_failed"
	codeEmbeddingProviderError errorCode = "embedding_provider_error"
	codeRetrievalUnavailable   errorCode = "retrieval_unavailable"
	codeInternalError          errorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchRequest is the POST /search body. K is `any` so that both JSON
// numbers and strings are accepted; anything unparsable falls back to
// the default.
type SearchRequest struct {
	Prompt    string `json:"prompt"`
	K         any    `json:"k,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

// SegmentItem is one highlighting segment of an abstract.
type SegmentItem struct {
	Text    string `json:"text"`
	Keyword bool   `json:"keyword"`
}

// SearchResultItem is one ranked guide in the response.
type SearchResultItem struct {
	URL       string        `json:"url"`
	Abstract  string        `json:"abstract"`
	Score     float64       `json:"score"`
	GuideType string        `json:"guide_type"`
	Segments  []SegmentItem `json:"segments,omitempty"`
}

// SearchResponse is the POST /search response body.
type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
}

// HealthResponse is the GET /health response body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the retrieval pipeline over HTTP.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
		sentinelHandler(domain.ErrRetrievalUnavailable, http.StatusBadGateway, codeRetrievalUnavailable),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chirouter.Router) {
	r.Post("/search", s.SearchGuides)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchGuides handles POST /search.
func (s *Server) SearchGuides(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	q, err := query.New(req.Prompt, query.ParseTopK(req.K))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.search.Search(r.Context(), q, req.Highlight)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]SearchResultItem, 0, len(results))
	for i := range results {
		items = append(items, searchResultToItem(&results[i]))
	}

	writeJSON(w, http.StatusOK, SearchResponse{Results: items})
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

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func searchResultToItem(r *searchuc.Result) SearchResultItem {
	item := SearchResultItem{
		URL:       r.Match.URL(),
		Abstract:  r.Match.Abstract(),
		Score:     r.Match.Score(),
		GuideType: r.Match.GuideType(),
	}
	if r.Segments != nil {
		segs := make([]SegmentItem, 0, len(r.Segments))
		for _, seg := range r.Segments {
			segs = append(segs, SegmentItem{Text: seg.Text, Keyword: seg.Keyword})
		}
		item.Segments = segs
	}
	return item
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-facing message. Upstream pipeline
// failures keep their detail (the callers need the provider's reason);
// everything else is masked.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrEmbeddingProviderError) || errors.Is(err, domain.ErrRetrievalUnavailable) {
		return err.Error()
	}
	if errors.Is(err, domain.ErrEmptyQuery) {
		return domain.ErrEmptyQuery.Error()
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, safeDomainMessage(err))
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
