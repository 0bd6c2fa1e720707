package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	jobsearchdomain "search-gateway/internal/domain/jobsearch"
	languagedomain "search-gateway/internal/domain/language"
	"search-gateway/internal/interfaces/httpserver/handlers"
	"search-gateway/internal/interfaces/httpserver/responses"
	v1 "search-gateway/internal/interfaces/httpserver/routes/v1"
	"search-gateway/internal/platformerrors"
)

// MockJobSearchService implements jobsearch.Service for route tests.
type MockJobSearchService struct {
	SearchFunc     func(ctx context.Context, req jobsearchdomain.SearchRequest) (jobsearchdomain.JobSearchResult, error)
	JobDetailsFunc func(ctx context.Context, jobID string) (jobsearchdomain.Job, error)
	GetByIDFunc    func(ctx context.Context, id string) (jobsearchdomain.JobSearchResult, error)
	GetAllFunc     func(ctx context.Context) ([]jobsearchdomain.JobSearchResult, error)
	DeleteByIDFunc func(ctx context.Context, id string) error
}

func (m *MockJobSearchService) Search(ctx context.Context, req jobsearchdomain.SearchRequest) (jobsearchdomain.JobSearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return jobsearchdomain.JobSearchResult{}, nil
}

func (m *MockJobSearchService) JobDetails(ctx context.Context, jobID string) (jobsearchdomain.Job, error) {
	if m.JobDetailsFunc != nil {
		return m.JobDetailsFunc(ctx, jobID)
	}
	return jobsearchdomain.Job{}, nil
}

func (m *MockJobSearchService) GetByID(ctx context.Context, id string) (jobsearchdomain.JobSearchResult, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return jobsearchdomain.JobSearchResult{}, nil
}

func (m *MockJobSearchService) GetAll(ctx context.Context) ([]jobsearchdomain.JobSearchResult, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockJobSearchService) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

// MockLanguageService implements language.Service for route tests.
type MockLanguageService struct {
	DetectAndStoreFunc   func(ctx context.Context, text string) (json.RawMessage, error)
	GetDetectionByIDFunc func(ctx context.Context, id string) (languagedomain.LanguageDetection, error)
	GetAllDetectionsFunc func(ctx context.Context) ([]languagedomain.LanguageDetection, error)
}

func (m *MockLanguageService) DetectAndStore(ctx context.Context, text string) (json.RawMessage, error) {
	if m.DetectAndStoreFunc != nil {
		return m.DetectAndStoreFunc(ctx, text)
	}
	return nil, nil
}

func (m *MockLanguageService) GetDetectionByID(ctx context.Context, id string) (languagedomain.LanguageDetection, error) {
	if m.GetDetectionByIDFunc != nil {
		return m.GetDetectionByIDFunc(ctx, id)
	}
	return languagedomain.LanguageDetection{}, nil
}

func (m *MockLanguageService) GetAllDetections(ctx context.Context) ([]languagedomain.LanguageDetection, error) {
	if m.GetAllDetectionsFunc != nil {
		return m.GetAllDetectionsFunc(ctx)
	}
	return nil, nil
}

func newTestEngine(jobSvc jobsearchdomain.Service, langSvc languagedomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	v1.NewRoutes(handlers.NewProvider(jobSvc, langSvc)).Register(engine)
	return engine
}

func TestSearchJobsRoute(t *testing.T) {
	var gotReq jobsearchdomain.SearchRequest
	jobSvc := &MockJobSearchService{
		SearchFunc: func(ctx context.Context, req jobsearchdomain.SearchRequest) (jobsearchdomain.JobSearchResult, error) {
			gotReq = req
			return jobsearchdomain.JobSearchResult{
				ID:    "r1",
				Query: req.Query,
				Jobs:  []jobsearchdomain.Job{{JobID: "j1", Title: "Engineer"}},
			}, nil
		},
	}
	engine := newTestEngine(jobSvc, &MockLanguageService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/search?query=golang+developer&location=Lima&page=2&resultsPerPage=3", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gotReq.Query != "golang developer" || gotReq.Location != "Lima" || gotReq.Page != 2 || gotReq.ResultsPerPage != 3 {
		t.Errorf("service received %+v", gotReq)
	}

	var result jobsearchdomain.JobSearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.ID != "r1" || len(result.Jobs) != 1 {
		t.Errorf("response mismatch: %+v", result)
	}
}

func TestSearchJobsRouteDefaults(t *testing.T) {
	var gotReq jobsearchdomain.SearchRequest
	jobSvc := &MockJobSearchService{
		SearchFunc: func(ctx context.Context, req jobsearchdomain.SearchRequest) (jobsearchdomain.JobSearchResult, error) {
			gotReq = req
			return jobsearchdomain.JobSearchResult{ID: "r1"}, nil
		},
	}
	engine := newTestEngine(jobSvc, &MockLanguageService{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/search?query=go", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotReq.Page != 1 || gotReq.ResultsPerPage != 10 {
		t.Errorf("defaults not applied: %+v", gotReq)
	}
}

func TestSearchJobsRouteMissingQuery(t *testing.T) {
	engine := newTestEngine(&MockJobSearchService{}, &MockLanguageService{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/search", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body responses.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Code != string(platformerrors.ErrorTypeValidation) {
		t.Errorf("code = %q, want VALIDATION", body.Code)
	}
}

func TestSearchJobsRouteErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found maps to 404",
			err:            platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "no jobs found matching the criteria", nil),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "upstream 4xx mirrors provider status",
			err:            platformerrors.NewUpstreamError(429, "slow down", "error searching jobs"),
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "UPSTREAM_CLIENT",
		},
		{
			name:           "upstream 5xx maps to 502",
			err:            platformerrors.NewUpstreamError(500, "boom", "error searching jobs"),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "UPSTREAM_SERVER",
		},
		{
			name:           "unreachable provider maps to 503",
			err:            platformerrors.NewError(platformerrors.LayerUpstream, platformerrors.ErrorTypeUpstreamUnavailable, "provider unreachable", nil),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "UPSTREAM_UNAVAILABLE",
		},
		{
			name:           "persistence failure maps to 500",
			err:            platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypePersistence, "persist search result", nil),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "PERSISTENCE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobSvc := &MockJobSearchService{
				SearchFunc: func(ctx context.Context, req jobsearchdomain.SearchRequest) (jobsearchdomain.JobSearchResult, error) {
					return jobsearchdomain.JobSearchResult{}, tt.err
				},
			}
			engine := newTestEngine(jobSvc, &MockLanguageService{})

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/search?query=go", nil))

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
			var body responses.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Code != tt.expectedCode {
				t.Errorf("code = %q, want %q", body.Code, tt.expectedCode)
			}
		})
	}
}

func TestDeleteSearchResultRoute(t *testing.T) {
	var deleted string
	jobSvc := &MockJobSearchService{
		DeleteByIDFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	engine := newTestEngine(jobSvc, &MockLanguageService{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/jobs/r1", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if deleted != "r1" {
		t.Errorf("deleted id = %q, want r1", deleted)
	}
}

func TestJobDetailsRoute(t *testing.T) {
	jobSvc := &MockJobSearchService{
		JobDetailsFunc: func(ctx context.Context, jobID string) (jobsearchdomain.Job, error) {
			return jobsearchdomain.Job{JobID: jobID, Title: "Engineer"}, nil
		},
	}
	engine := newTestEngine(jobSvc, &MockLanguageService{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/details/job-7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var job jobsearchdomain.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if job.JobID != "job-7" {
		t.Errorf("job mismatch: %+v", job)
	}
}

func TestDetectLanguageRoute(t *testing.T) {
	payload := `{"languageCodes": [{"code": "fr", "confidence": 0.98}]}`
	langSvc := &MockLanguageService{
		DetectAndStoreFunc: func(ctx context.Context, text string) (json.RawMessage, error) {
			if text != "bonjour" {
				t.Errorf("text = %q, want bonjour", text)
			}
			return json.RawMessage(payload), nil
		},
	}
	engine := newTestEngine(&MockJobSearchService{}, langSvc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/language/detect", strings.NewReader(`{"text": "bonjour"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	// The route echoes the provider payload byte for byte.
	if rec.Body.String() != payload {
		t.Errorf("body = %s, want %s", rec.Body.String(), payload)
	}
}

func TestDetectLanguageRouteValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing text field", body: `{}`},
		{name: "blank text", body: `{"text": "   "}`},
		{name: "malformed json", body: `{"text": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(&MockJobSearchService{}, &MockLanguageService{})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/language/detect", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			engine.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGetDetectionRoute(t *testing.T) {
	langSvc := &MockLanguageService{
		GetDetectionByIDFunc: func(ctx context.Context, id string) (languagedomain.LanguageDetection, error) {
			if id != "d1" {
				return languagedomain.LanguageDetection{}, platformerrors.NewError(
					platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "not found", nil)
			}
			return languagedomain.LanguageDetection{
				ID:       "d1",
				Language: languagedomain.DetectedLanguage{Code: "fr", Name: "French"},
			}, nil
		},
	}
	engine := newTestEngine(&MockJobSearchService{}, langSvc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/language/detections/d1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/language/detections/d2", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
