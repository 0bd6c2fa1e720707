package language

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domain "search-gateway/internal/domain/language"
	"search-gateway/internal/infrastructure/metrics"
	"search-gateway/internal/platformerrors"
)

// InMemoryRepository is a thread-safe detection store useful for demos/tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.LanguageDetection
	order   []string
}

var _ domain.Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository builds an empty store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string]domain.LanguageDetection),
	}
}

// Save assigns a fresh identifier and stores the detection.
func (r *InMemoryRepository) Save(ctx context.Context, detection domain.LanguageDetection) (domain.LanguageDetection, error) {
	detection.ID = uuid.NewString()

	r.mu.Lock()
	r.entries[detection.ID] = detection
	r.order = append(r.order, detection.ID)
	r.mu.Unlock()

	metrics.RecordResultPersisted("language_detection")
	return detection, nil
}

// FindByID returns the stored detection or NOT_FOUND.
func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (domain.LanguageDetection, error) {
	r.mu.RLock()
	detection, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return domain.LanguageDetection{}, notFound(id)
	}
	return detection, nil
}

// FindAll returns every stored detection in insertion order.
func (r *InMemoryRepository) FindAll(ctx context.Context) ([]domain.LanguageDetection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	detections := make([]domain.LanguageDetection, 0, len(r.order))
	for _, id := range r.order {
		detections = append(detections, r.entries[id])
	}
	return detections, nil
}

func notFound(id string) *platformerrors.PlatformError {
	return platformerrors.NewError(
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("language detection not found with id %s", id),
		nil,
	)
}
