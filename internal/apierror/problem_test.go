package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestProblemDetailsJSON(t *testing.T) {
	retryAfter := 30
	problem := &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "Field validation failed",
		Instance:    "/api/v1/events/12",
		RequestID:   "req-abc123",
		UserMessage: "Please fix the errors",
		RetryAfter:  &retryAfter,
		Errors: []FieldError{
			{Field: "intensity", Message: "must be between 1 and 5", Code: "out_of_range"},
			{Field: "timestamp", Message: "is required", Code: "required"},
		},
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	want := map[string]interface{}{
		"type":         TypeValidation,
		"title":        TitleValidation,
		"status":       float64(http.StatusBadRequest),
		"detail":       "Field validation failed",
		"instance":     "/api/v1/events/12",
		"request_id":   "req-abc123",
		"user_message": "Please fix the errors",
		"retry_after":  float64(30),
	}
	for key, value := range want {
		if result[key] != value {
			t.Errorf("Expected %s=%v, got %v", key, value, result[key])
		}
	}

	errs, ok := result["errors"].([]interface{})
	if !ok || len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %v", result["errors"])
	}
}

func TestProblemDetailsJSONOmitsEmpty(t *testing.T) {
	problem := &ProblemDetails{
		Type:   TypeInternal,
		Title:  TitleInternal,
		Status: http.StatusInternalServerError,
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	for _, field := range []string{"detail", "instance", "request_id", "user_message", "retry_after", "errors"} {
		if _, exists := result[field]; exists {
			t.Errorf("Expected field %q to be omitted when empty", field)
		}
	}
	for _, field := range []string{"type", "title", "status"} {
		if _, exists := result[field]; !exists {
			t.Errorf("Expected required field %q to be present", field)
		}
	}
}

func TestWriteProblem(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events/9", nil)

	WriteProblem(c, NewNotFoundError("req-1", "behavior event", "9"))

	if got := w.Header().Get("Content-Type"); got != ContentTypeProblemJSON {
		t.Errorf("Expected Content-Type=%q, got %q", ContentTypeProblemJSON, got)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status=%d, got %d", http.StatusNotFound, w.Code)
	}
	if !c.IsAborted() {
		t.Error("Expected handler chain to be aborted")
	}

	var result ProblemDetails
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response body: %v", err)
	}
	if result.Instance != "/api/v1/events/9" {
		t.Errorf("Expected instance to default to the request path, got %q", result.Instance)
	}
}

func TestWriteProblemRetryAfter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteProblem(c, NewRateLimitError("req-456", 120))

	if got := w.Header().Get("Retry-After"); got != "120" {
		t.Errorf("Expected Retry-After header=%q, got %q", "120", got)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	WriteProblem(c, NewInternalError("req-789"))

	if got := w.Header().Get("Retry-After"); got != "" {
		t.Errorf("Expected no Retry-After header, got %q", got)
	}
}

func TestNewValidationErrorKeepsAllFields(t *testing.T) {
	problem := NewValidationError("req-abc", []FieldError{
		{Field: "type", Message: "is required", Code: "required"},
		{Field: "intensity", Message: "must be between 1 and 5", Code: "out_of_range"},
		{Field: "duration", Message: "must be a positive number of minutes", Code: "out_of_range"},
	})

	if problem.Type != TypeValidation || problem.Status != http.StatusBadRequest {
		t.Errorf("Unexpected type/status: %q/%d", problem.Type, problem.Status)
	}
	if len(problem.Errors) != 3 {
		t.Errorf("Expected 3 field errors, got %d", len(problem.Errors))
	}
}

func TestNewInternalErrorHidesDetails(t *testing.T) {
	problem := NewInternalError("req-xyz")

	if problem.Detail != "An unexpected error occurred" {
		t.Errorf("Expected generic detail, got %q", problem.Detail)
	}
	if problem.UserMessage == "" {
		t.Error("Expected user_message to be set")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		problem *ProblemDetails
		typ     string
		status  int
	}{
		{"not found", NewNotFoundError("r", "behavior event", "4"), TypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("r", `trigger type "Doorbell" already exists`), TypeConflict, http.StatusConflict},
		{"bad request", NewBadRequestError("r", "invalid JSON", "Invalid request"), TypeBadRequest, http.StatusBadRequest},
		{"invalid id", NewInvalidIDError("r", "abc"), TypeInvalidID, http.StatusBadRequest},
		{"rate limit", NewRateLimitError("r", 60), TypeRateLimit, http.StatusTooManyRequests},
		{"unavailable", NewServiceUnavailableError("r", 5), TypeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.problem.Type != tt.typ {
				t.Errorf("Expected type=%q, got %q", tt.typ, tt.problem.Type)
			}
			if tt.problem.Status != tt.status {
				t.Errorf("Expected status=%d, got %d", tt.status, tt.problem.Status)
			}
			if tt.problem.RequestID != "r" {
				t.Errorf("Expected request_id=r, got %q", tt.problem.RequestID)
			}
		})
	}

	if got := NewNotFoundError("r", "behavior event", "4").Detail; got != "behavior event with ID '4' was not found" {
		t.Errorf("Unexpected detail: %q", got)
	}
	if p := NewInvalidIDError("r", "abc"); len(p.Errors) != 1 || p.Errors[0].Field != "id" {
		t.Errorf("Expected one id field error, got %v", p.Errors)
	}
}

func TestProblemDetailsError(t *testing.T) {
	p1 := &ProblemDetails{Title: TitleValidation, Detail: "Custom error message"}
	if p1.Error() != "Custom error message" {
		t.Errorf("Expected Error()=%q, got %q", "Custom error message", p1.Error())
	}

	p2 := &ProblemDetails{Title: TitleValidation}
	if p2.Error() != TitleValidation {
		t.Errorf("Expected Error()=%q, got %q", TitleValidation, p2.Error())
	}
}

func TestGetRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("request_id", "ctx-req-123")
	if got := GetRequestID(c); got != "ctx-req-123" {
		t.Errorf("Expected request_id=%q, got %q", "ctx-req-123", got)
	}

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest("GET", "/test", nil)
	c2.Request.Header.Set("X-Request-ID", "header-req-456")
	if got := GetRequestID(c2); got != "header-req-456" {
		t.Errorf("Expected request_id from header=%q, got %q", "header-req-456", got)
	}

	c3, _ := gin.CreateTestContext(httptest.NewRecorder())
	c3.Request = httptest.NewRequest("GET", "/test", nil)
	if got := GetRequestID(c3); got != "" {
		t.Errorf("Expected empty request_id, got %q", got)
	}
}
