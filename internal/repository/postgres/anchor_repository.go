package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stellarinsights/stellarinsights/api/internal/domain"
	"github.com/stellarinsights/stellarinsights/api/internal/pkg/database"
	apperrors "github.com/stellarinsights/stellarinsights/api/internal/pkg/errors"
	"github.com/stellarinsights/stellarinsights/api/internal/validator"
)

const anchorColumns = `id, stellar_account, name, description, website, logo_url,
	trust_score, transaction_count, total_volume_usd, success_rate,
	created_at, updated_at`

// AnchorRepository handles anchor data operations in PostgreSQL
type AnchorRepository struct {
	db *database.PostgresDB
}

// NewAnchorRepository creates a new anchor repository
func NewAnchorRepository(db *database.PostgresDB) *AnchorRepository {
	return &AnchorRepository{db: db}
}

// Create inserts a new anchor. Uniqueness of the Stellar account is
// arbitrated by the storage constraint, never by a check-then-insert:
// of two concurrent creations with the same account exactly one wins
// and the other observes a Conflict.
func (r *AnchorRepository) Create(ctx context.Context, input *domain.AnchorInput) (*domain.Anchor, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO anchors (id, stellar_account, name, description, website, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + anchorColumns

	row := r.db.Pool.QueryRow(ctx, query,
		uuid.New(),
		input.StellarAccount,
		input.Name,
		input.Description,
		input.Website,
		input.LogoURL,
	)

	anchor, err := scanAnchor(row)
	if err != nil {
		return nil, classify(err)
	}

	return anchor, nil
}

// List retrieves all anchors ordered by creation time
func (r *AnchorRepository) List(ctx context.Context) ([]domain.Anchor, error) {
	query := `
		SELECT ` + anchorColumns + `
		FROM anchors
		ORDER BY created_at, id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	anchors := []domain.Anchor{}
	for rows.Next() {
		anchor, err := scanAnchor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan anchor: %w", err)
		}
		anchors = append(anchors, *anchor)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return anchors, nil
}

// GetByID retrieves an anchor by ID
func (r *AnchorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Anchor, error) {
	query := `
		SELECT ` + anchorColumns + `
		FROM anchors
		WHERE id = $1
	`

	anchor, err := scanAnchor(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("anchor")
		}
		return nil, classify(err)
	}

	return anchor, nil
}

// GetByStellarAccount retrieves the anchor owning a Stellar account.
// The account is unique by invariant; finding more than one row is a
// data-integrity fault, not a miss.
func (r *AnchorRepository) GetByStellarAccount(ctx context.Context, account string) (*domain.Anchor, error) {
	query := `
		SELECT ` + anchorColumns + `
		FROM anchors
		WHERE stellar_account = $1
	`

	rows, err := r.db.Pool.Query(ctx, query, account)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var anchors []*domain.Anchor
	for rows.Next() {
		anchor, err := scanAnchor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan anchor: %w", err)
		}
		anchors = append(anchors, anchor)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	switch len(anchors) {
	case 0:
		return nil, apperrors.NotFound("anchor")
	case 1:
		return anchors[0], nil
	default:
		return nil, apperrors.Integrity(
			fmt.Sprintf("%d anchors share stellar account %s", len(anchors), account))
	}
}

// UpdateMetrics merges the supplied metric fields into the anchor row.
// Absent fields are left untouched; updated_at always advances. The
// merge happens in a single statement, so repeated application of the
// same payload is idempotent.
func (r *AnchorRepository) UpdateMetrics(ctx context.Context, id uuid.UUID, input *domain.AnchorMetricsInput) (*domain.Anchor, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		UPDATE anchors
		SET trust_score = COALESCE($2, trust_score),
		    transaction_count = COALESCE($3, transaction_count),
		    total_volume_usd = COALESCE($4, total_volume_usd),
		    success_rate = COALESCE($5, success_rate),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + anchorColumns

	row := r.db.Pool.QueryRow(ctx, query,
		id,
		input.TrustScore,
		input.TransactionCount,
		input.TotalVolumeUSD,
		input.SuccessRate,
	)

	anchor, err := scanAnchor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("anchor")
		}
		return nil, classify(err)
	}

	return anchor, nil
}

// Exists checks whether an anchor exists
func (r *AnchorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM anchors WHERE id = $1)`

	var exists bool
	if err := r.db.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, classify(err)
	}

	return exists, nil
}

func scanAnchor(row pgx.Row) (*domain.Anchor, error) {
	var anchor domain.Anchor
	err := row.Scan(
		&anchor.ID,
		&anchor.StellarAccount,
		&anchor.Name,
		&anchor.Description,
		&anchor.Website,
		&anchor.LogoURL,
		&anchor.TrustScore,
		&anchor.TransactionCount,
		&anchor.TotalVolumeUSD,
		&anchor.SuccessRate,
		&anchor.CreatedAt,
		&anchor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &anchor, nil
}
