package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewUpstreamErrorClassification(t *testing.T) {
	tests := []struct {
		status       int
		expectedType ErrorType
	}{
		{status: 400, expectedType: ErrorTypeUpstreamClient},
		{status: 404, expectedType: ErrorTypeUpstreamClient},
		{status: 429, expectedType: ErrorTypeUpstreamClient},
		{status: 500, expectedType: ErrorTypeUpstreamServer},
		{status: 503, expectedType: ErrorTypeUpstreamServer},
	}

	for _, tt := range tests {
		err := NewUpstreamError(tt.status, "body", "msg")
		if err.Type != tt.expectedType {
			t.Errorf("status %d classified as %s, want %s", tt.status, err.Type, tt.expectedType)
		}
		if err.UpstreamStatus != tt.status || err.UpstreamBody != "body" {
			t.Errorf("upstream metadata not kept: %+v", err)
		}
	}
}

func TestHTTPStatusMirrorsUpstreamClient(t *testing.T) {
	err := NewUpstreamError(429, "", "rate limited")
	if got := err.HTTPStatus(); got != 429 {
		t.Errorf("HTTPStatus = %d, want 429", got)
	}

	// Server-side provider failures never leak the provider status.
	err = NewUpstreamError(500, "", "boom")
	if got := err.HTTPStatus(); got != http.StatusBadGateway {
		t.Errorf("HTTPStatus = %d, want 502", got)
	}
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  int
	}{
		{errorType: ErrorTypeNotFound, expected: http.StatusNotFound},
		{errorType: ErrorTypeEmptyResult, expected: http.StatusNotFound},
		{errorType: ErrorTypeValidation, expected: http.StatusBadRequest},
		{errorType: ErrorTypeUpstreamServer, expected: http.StatusBadGateway},
		{errorType: ErrorTypeDeserialization, expected: http.StatusBadGateway},
		{errorType: ErrorTypeUpstreamUnavailable, expected: http.StatusServiceUnavailable},
		{errorType: ErrorTypeConfiguration, expected: http.StatusInternalServerError},
		{errorType: ErrorTypePersistence, expected: http.StatusInternalServerError},
		{errorType: ErrorTypeInternal, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := ErrorTypeToHTTPStatus(tt.errorType); got != tt.expected {
			t.Errorf("%s maps to %d, want %d", tt.errorType, got, tt.expected)
		}
	}
}

func TestAsErrorPreservesClassification(t *testing.T) {
	inner := NewUpstreamError(404, `{"message":"no such job"}`, "error getting job details")
	wrapped := AsError(LayerDomain, fmt.Errorf("call failed: %w", inner), "job details")

	if wrapped.Type != ErrorTypeUpstreamClient {
		t.Errorf("type = %s, want UPSTREAM_CLIENT", wrapped.Type)
	}
	if wrapped.Layer != LayerDomain {
		t.Errorf("layer = %s, want domain", wrapped.Layer)
	}
	if wrapped.UpstreamStatus != 404 || wrapped.UpstreamBody == "" {
		t.Errorf("upstream metadata lost: %+v", wrapped)
	}

	var platformErr *PlatformError
	if !errors.As(wrapped, &platformErr) {
		t.Fatal("wrapped error must stay a PlatformError")
	}
}

func TestAsErrorUnknownErrorBecomesInternal(t *testing.T) {
	wrapped := AsError(LayerRepository, errors.New("connection reset"), "load result")
	if wrapped.Type != ErrorTypeInternal {
		t.Errorf("type = %s, want INTERNAL", wrapped.Type)
	}
	if AsError(LayerRepository, nil, "noop") != nil {
		t.Error("nil in must be nil out")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewError(LayerDomain, ErrorTypeNotFound, "missing", nil)

	if !IsErrorType(err, ErrorTypeNotFound) {
		t.Error("direct match failed")
	}
	if !IsErrorType(fmt.Errorf("outer: %w", err), ErrorTypeNotFound) {
		t.Error("wrapped match failed")
	}
	if IsErrorType(err, ErrorTypeValidation) {
		t.Error("mismatched type reported true")
	}
	if IsErrorType(nil, ErrorTypeNotFound) {
		t.Error("nil reported true")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeNotFound) {
		t.Error("plain error reported true")
	}
}
