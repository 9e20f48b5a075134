package domain

import (
	"time"

	"github.com/google/uuid"
)

// Anchor represents a Stellar anchor: an entity that issues assets on
// the network, identified by its unique Stellar account address.
type Anchor struct {
	ID             uuid.UUID `json:"id"`
	StellarAccount string    `json:"stellarAccount"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Website        string    `json:"website,omitempty"`
	LogoURL        string    `json:"logoUrl,omitempty"`

	// Operational metrics, updated independently of the profile fields.
	TrustScore       float64 `json:"trustScore"`
	TransactionCount int64   `json:"transactionCount"`
	TotalVolumeUSD   float64 `json:"totalVolumeUsd"`
	SuccessRate      float64 `json:"successRate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnchorInput represents input for creating an anchor
type AnchorInput struct {
	StellarAccount string `json:"stellarAccount" validate:"required,stellar_account"`
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Description    string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Website        string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL        string `json:"logoUrl,omitempty" validate:"omitempty,url"`
}

// AnchorMetricsInput represents a partial metrics update. Every field
// is optional; nil means "leave unchanged", which is not the same as
// zero.
type AnchorMetricsInput struct {
	TrustScore       *float64 `json:"trustScore,omitempty" validate:"omitempty,gte=0,lte=1"`
	TransactionCount *int64   `json:"transactionCount,omitempty" validate:"omitempty,gte=0"`
	TotalVolumeUSD   *float64 `json:"totalVolumeUsd,omitempty" validate:"omitempty,gte=0"`
	SuccessRate      *float64 `json:"successRate,omitempty" validate:"omitempty,gte=0,lte=1"`
}
