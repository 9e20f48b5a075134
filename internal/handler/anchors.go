package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stellarinsights/stellarinsights/api/internal/domain"
	"github.com/stellarinsights/stellarinsights/api/internal/middleware"
)

// AnchorStore is the anchor persistence surface the handler depends on.
type AnchorStore interface {
	Create(ctx context.Context, input *domain.AnchorInput) (*domain.Anchor, error)
	List(ctx context.Context) ([]domain.Anchor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Anchor, error)
	GetByStellarAccount(ctx context.Context, account string) (*domain.Anchor, error)
	UpdateMetrics(ctx context.Context, id uuid.UUID, input *domain.AnchorMetricsInput) (*domain.Anchor, error)
}

// AnchorsHandler handles anchor endpoints
type AnchorsHandler struct {
	store  AnchorStore
	logger *zap.Logger
}

// NewAnchorsHandler creates a new anchors handler
func NewAnchorsHandler(store AnchorStore, logger *zap.Logger) *AnchorsHandler {
	return &AnchorsHandler{
		store:  store,
		logger: logger,
	}
}

// ListAnchors handles GET /api/anchors
func (h *AnchorsHandler) ListAnchors(c *fiber.Ctx) error {
	anchors, err := h.store.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "list anchors")
	}
	return c.JSON(anchors)
}

// CreateAnchor handles POST /api/anchors
func (h *AnchorsHandler) CreateAnchor(c *fiber.Ctx) error {
	var input domain.AnchorInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	anchor, err := h.store.Create(c.Context(), &input)
	if err != nil {
		return respondError(c, h.logger, err, "create anchor")
	}

	middleware.RecordAnchorCreated()
	return c.Status(fiber.StatusCreated).JSON(anchor)
}

// GetAnchor handles GET /api/anchors/:id
func (h *AnchorsHandler) GetAnchor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid anchor ID")
	}

	anchor, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "get anchor")
	}
	return c.JSON(anchor)
}

// GetAnchorByAccount handles GET /api/anchors/account/:account
func (h *AnchorsHandler) GetAnchorByAccount(c *fiber.Ctx) error {
	anchor, err := h.store.GetByStellarAccount(c.Context(), c.Params("account"))
	if err != nil {
		return respondError(c, h.logger, err, "get anchor by account")
	}
	return c.JSON(anchor)
}

// UpdateAnchorMetrics handles PUT /api/anchors/:id/metrics
func (h *AnchorsHandler) UpdateAnchorMetrics(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid anchor ID")
	}

	var input domain.AnchorMetricsInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	anchor, err := h.store.UpdateMetrics(c.Context(), id, &input)
	if err != nil {
		return respondError(c, h.logger, err, "update anchor metrics")
	}

	middleware.RecordMetricsUpdated()
	return c.JSON(anchor)
}
