package domain

import (
	"time"

	"github.com/google/uuid"
)

// Asset represents an asset issued by an anchor
type Asset struct {
	ID          uuid.UUID `json:"id"`
	AnchorID    uuid.UUID `json:"anchorId"`
	Code        string    `json:"code"`
	Issuer      string    `json:"issuer,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AssetInput represents input for creating an asset
type AssetInput struct {
	Code        string `json:"code" validate:"required,min=1,max=12,alphanum"`
	Issuer      string `json:"issuer,omitempty" validate:"omitempty,stellar_account"`
	DisplayName string `json:"displayName,omitempty" validate:"omitempty,max=100"`
	IsVerified  bool   `json:"isVerified,omitempty"`
}
