package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stellarinsights/stellarinsights/api/internal/domain"
	"github.com/stellarinsights/stellarinsights/api/internal/pkg/database"
	apperrors "github.com/stellarinsights/stellarinsights/api/internal/pkg/errors"
	"github.com/stellarinsights/stellarinsights/api/internal/validator"
)

const assetColumns = `id, anchor_id, code, issuer, display_name, is_verified, created_at`

// AssetRepository handles asset data operations in PostgreSQL
type AssetRepository struct {
	db      *database.PostgresDB
	anchors *AnchorRepository
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *database.PostgresDB, anchors *AnchorRepository) *AssetRepository {
	return &AssetRepository{db: db, anchors: anchors}
}

// Create inserts a new asset owned by an anchor. The owning anchor is
// enforced by the foreign key; inserting against a missing anchor
// classifies as NotFound and leaves no row behind.
func (r *AssetRepository) Create(ctx context.Context, anchorID uuid.UUID, input *domain.AssetInput) (*domain.Asset, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO assets (id, anchor_id, code, issuer, display_name, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + assetColumns

	row := r.db.Pool.QueryRow(ctx, query,
		uuid.New(),
		anchorID,
		input.Code,
		input.Issuer,
		input.DisplayName,
		input.IsVerified,
	)

	asset, err := scanAsset(row)
	if err != nil {
		return nil, classify(err)
	}

	return asset, nil
}

// ListByAnchor retrieves the assets owned by an anchor, ordered by
// creation time. An anchor with no assets yields an empty slice; a
// missing anchor yields NotFound.
func (r *AssetRepository) ListByAnchor(ctx context.Context, anchorID uuid.UUID) ([]domain.Asset, error) {
	exists, err := r.anchors.Exists(ctx, anchorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("anchor")
	}

	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE anchor_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Pool.Query(ctx, query, anchorID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, *asset)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return assets, nil
}

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var asset domain.Asset
	err := row.Scan(
		&asset.ID,
		&asset.AnchorID,
		&asset.Code,
		&asset.Issuer,
		&asset.DisplayName,
		&asset.IsVerified,
		&asset.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}
