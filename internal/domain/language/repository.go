package language

import "context"

// Repository exposes the result-store contract for language detections.
type Repository interface {
	Save(ctx context.Context, detection LanguageDetection) (LanguageDetection, error)
	FindByID(ctx context.Context, id string) (LanguageDetection, error)
	FindAll(ctx context.Context) ([]LanguageDetection, error)
}
