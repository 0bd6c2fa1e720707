package language

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"search-gateway/internal/platformerrors"
)

// Service sequences detection, top-candidate persistence and payload
// pass-through. DetectAndStore deliberately returns the original provider
// payload rather than the stored entity.
type Service interface {
	DetectAndStore(ctx context.Context, text string) (json.RawMessage, error)
	GetDetectionByID(ctx context.Context, id string) (LanguageDetection, error)
	GetAllDetections(ctx context.Context) ([]LanguageDetection, error)
}

type providerCandidates struct {
	LanguageCodes []providerCandidate `json:"languageCodes"`
}

type providerCandidate struct {
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
}

type service struct {
	client Client
	repo   Repository
	log    zerolog.Logger
}

// NewService wires the language service with its collaborators.
func NewService(client Client, repo Repository, log zerolog.Logger) Service {
	return &service{
		client: client,
		repo:   repo,
		log:    log.With().Str("component", "language-service").Logger(),
	}
}

// DetectAndStore calls the provider and persists the first (highest
// confidence, provider ordered) candidate. The full raw payload is returned
// to the caller regardless of how many candidates existed; an empty candidate
// list skips persistence entirely and still returns the payload unchanged.
func (s *service) DetectAndStore(ctx context.Context, text string) (json.RawMessage, error) {
	s.log.Info().Int("text_length", len(text)).Msg("detecting language")

	raw, err := s.client.Detect(ctx, text)
	if err != nil {
		return nil, platformerrors.AsError(platformerrors.LayerDomain, err, "detect language upstream")
	}

	var payload providerCandidates
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeDeserialization,
			"malformed language detection payload",
			err,
		)
	}

	if len(payload.LanguageCodes) == 0 {
		s.log.Warn().Msg("no language codes in provider response, skipping persistence")
		return raw, nil
	}

	top := payload.LanguageCodes[0]
	detection := LanguageDetection{
		Text:       text,
		DetectedAt: time.Now().UTC(),
		Confidence: top.Confidence,
		Language: DetectedLanguage{
			Code: top.Code,
			Name: LanguageName(top.Code),
		},
	}

	stored, err := s.repo.Save(ctx, detection)
	if err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypePersistence,
			"persist language detection",
			err,
		)
	}

	s.log.Info().
		Str("detection_id", stored.ID).
		Str("code", top.Code).
		Float64("confidence", top.Confidence).
		Msg("language detection persisted")
	return raw, nil
}

func (s *service) GetDetectionByID(ctx context.Context, id string) (LanguageDetection, error) {
	detection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LanguageDetection{}, platformerrors.AsError(platformerrors.LayerDomain, err, "get language detection")
	}
	return detection, nil
}

func (s *service) GetAllDetections(ctx context.Context) ([]LanguageDetection, error) {
	detections, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, platformerrors.AsError(platformerrors.LayerDomain, err, "list language detections")
	}
	return detections, nil
}
