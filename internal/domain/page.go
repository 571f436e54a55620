package domain

import (
	"time"

	"pagecraft/internal/domain/specjson"
)

// PageStatus enumerates page lifecycle states.
type PageStatus string

const (
	PageStatusPublished PageStatus = "published"
)

// PageMetadata records how a page was produced.
type PageMetadata struct {
	Provider  string `json:"provider,omitempty"`
	Attempts  int    `json:"attempts"`
	Repaired  bool   `json:"repaired"`
	Country   string `json:"country,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Page is a generated landing page owned by a user.
type Page struct {
	ID           string                  `json:"id"`
	UserID       string                  `json:"userId"`
	BusinessName string                  `json:"businessName"`
	Answers      WizardAnswers           `json:"answers"`
	Spec         *specjson.GeneratedSpec `json:"spec,omitempty"`
	Status       PageStatus              `json:"status"`
	Metadata     PageMetadata            `json:"metadata"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}
