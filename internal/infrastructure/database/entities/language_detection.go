package entities

import "time"

// LanguageDetection models the persisted representation of a detection.
type LanguageDetection struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Text         string    `gorm:"type:text;not null"`
	DetectedAt   time.Time `gorm:"not null"`
	Confidence   float64   `gorm:"not null"`
	LanguageCode string    `gorm:"type:text;not null"`
	LanguageName string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (LanguageDetection) TableName() string {
	return "language_detections"
}
