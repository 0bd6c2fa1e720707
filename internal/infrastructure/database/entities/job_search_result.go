package entities

import "time"

// JobSearchResult models the persisted representation of a search outcome.
// Jobs and metadata keep their canonical JSON shape in jsonb columns; rows are
// written once and never updated.
type JobSearchResult struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	Query          string    `gorm:"type:text;not null"`
	Location       string    `gorm:"type:text"`
	Page           int       `gorm:"not null"`
	ResultsPerPage int       `gorm:"not null"`
	SearchedAt     time.Time `gorm:"not null"`
	Jobs           JSONB     `gorm:"not null"`
	Metadata       JSONB
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (JobSearchResult) TableName() string {
	return "job_search_results"
}
