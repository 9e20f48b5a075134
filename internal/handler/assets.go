package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stellarinsights/stellarinsights/api/internal/domain"
	"github.com/stellarinsights/stellarinsights/api/internal/middleware"
)

// AssetStore is the asset persistence surface the handler depends on.
type AssetStore interface {
	Create(ctx context.Context, anchorID uuid.UUID, input *domain.AssetInput) (*domain.Asset, error)
	ListByAnchor(ctx context.Context, anchorID uuid.UUID) ([]domain.Asset, error)
}

// AssetsHandler handles asset endpoints
type AssetsHandler struct {
	store  AssetStore
	logger *zap.Logger
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(store AssetStore, logger *zap.Logger) *AssetsHandler {
	return &AssetsHandler{
		store:  store,
		logger: logger,
	}
}

// ListAnchorAssets handles GET /api/anchors/:id/assets
func (h *AssetsHandler) ListAnchorAssets(c *fiber.Ctx) error {
	anchorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid anchor ID")
	}

	assets, err := h.store.ListByAnchor(c.Context(), anchorID)
	if err != nil {
		return respondError(c, h.logger, err, "list anchor assets")
	}
	return c.JSON(assets)
}

// CreateAnchorAsset handles POST /api/anchors/:id/assets
func (h *AssetsHandler) CreateAnchorAsset(c *fiber.Ctx) error {
	anchorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid anchor ID")
	}

	var input domain.AssetInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	asset, err := h.store.Create(c.Context(), anchorID, &input)
	if err != nil {
		return respondError(c, h.logger, err, "create anchor asset")
	}

	middleware.RecordAssetCreated()
	return c.Status(fiber.StatusCreated).JSON(asset)
}
