package handlers

import (
	"context"
	"encoding/json"

	domain "search-gateway/internal/domain/language"
)

// LanguageHandler invokes domain logic for language detection use cases.
type LanguageHandler struct {
	service domain.Service
}

// NewLanguageHandler wires dependencies for language routes.
func NewLanguageHandler(service domain.Service) *LanguageHandler {
	return &LanguageHandler{
		service: service,
	}
}

// Detect executes the detect-and-store use case. The raw provider payload is
// returned, not the stored entity.
func (h *LanguageHandler) Detect(ctx context.Context, text string) (json.RawMessage, error) {
	return h.service.DetectAndStore(ctx, text)
}

// GetDetectionByID fetches a stored detection.
func (h *LanguageHandler) GetDetectionByID(ctx context.Context, id string) (domain.LanguageDetection, error) {
	return h.service.GetDetectionByID(ctx, id)
}

// GetAllDetections lists every stored detection.
func (h *LanguageHandler) GetAllDetections(ctx context.Context) ([]domain.LanguageDetection, error) {
	return h.service.GetAllDetections(ctx)
}
