package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stellarinsights/stellarinsights/api/internal/domain"
	apperrors "github.com/stellarinsights/stellarinsights/api/internal/pkg/errors"
)

const testAccount = "GA7YNBW5CBTJZ3ZZOWX3ZNBKD6OE7A7IHUQVWMY62W2ZBG2SGZVOOPVH"

// MockAnchorStore mocks the anchor store for testing.
type MockAnchorStore struct {
	mock.Mock
}

func (m *MockAnchorStore) Create(ctx context.Context, input *domain.AnchorInput) (*domain.Anchor, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anchor), args.Error(1)
}

func (m *MockAnchorStore) List(ctx context.Context) ([]domain.Anchor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Anchor), args.Error(1)
}

func (m *MockAnchorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Anchor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anchor), args.Error(1)
}

func (m *MockAnchorStore) GetByStellarAccount(ctx context.Context, account string) (*domain.Anchor, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anchor), args.Error(1)
}

func (m *MockAnchorStore) UpdateMetrics(ctx context.Context, id uuid.UUID, input *domain.AnchorMetricsInput) (*domain.Anchor, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anchor), args.Error(1)
}

func setupAnchorsTestApp(store *MockAnchorStore) *fiber.App {
	app := fiber.New()
	h := NewAnchorsHandler(store, zap.NewNop())

	app.Get("/api/anchors", h.ListAnchors)
	app.Post("/api/anchors", h.CreateAnchor)
	app.Get("/api/anchors/account/:account", h.GetAnchorByAccount)
	app.Get("/api/anchors/:id", h.GetAnchor)
	app.Put("/api/anchors/:id/metrics", h.UpdateAnchorMetrics)

	return app
}

func doJSONRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func testAnchor(id uuid.UUID) *domain.Anchor {
	return &domain.Anchor{
		ID:             id,
		StellarAccount: testAccount,
		Name:           "Acme Anchor",
	}
}

func TestListAnchors(t *testing.T) {
	t.Run("returns bare array", func(t *testing.T) {
		store := new(MockAnchorStore)
		anchors := []domain.Anchor{*testAnchor(uuid.New()), *testAnchor(uuid.New())}
		store.On("List", mock.Anything).Return(anchors, nil)

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[[]domain.Anchor](t, resp)
		assert.Len(t, got, 2)
		store.AssertExpectations(t)
	})

	t.Run("empty store yields empty array not null", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("List", mock.Anything).Return([]domain.Anchor{}, nil)

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(raw))
	})

	t.Run("storage failure yields 500 with generic body", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("List", mock.Anything).Return(nil,
			apperrors.Unavailable("storage unavailable").WithError(assert.AnError))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors", nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		got := decodeBody[ErrorResponse](t, resp)
		assert.Equal(t, "An internal error occurred", got.Message)
	})
}

func TestCreateAnchor(t *testing.T) {
	t.Run("created anchor returned with 201", func(t *testing.T) {
		store := new(MockAnchorStore)
		id := uuid.New()
		store.On("Create", mock.Anything, mock.MatchedBy(func(in *domain.AnchorInput) bool {
			return in.StellarAccount == testAccount && in.Name == "Acme Anchor"
		})).Return(testAnchor(id), nil)

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodPost, "/api/anchors",
			domain.AnchorInput{StellarAccount: testAccount, Name: "Acme Anchor"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		got := decodeBody[domain.Anchor](t, resp)
		assert.Equal(t, id, got.ID)
		store.AssertExpectations(t)
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		store := new(MockAnchorStore)
		app := setupAnchorsTestApp(store)

		req := httptest.NewRequest(http.MethodPost, "/api/anchors", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		store.AssertNotCalled(t, "Create")
	})

	t.Run("validation failure yields 400", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.Validation("stellarAccount is invalid"))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodPost, "/api/anchors",
			domain.AnchorInput{StellarAccount: "garbage", Name: "Acme Anchor"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate account yields 409", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("Create", mock.Anything, mock.Anything).Return(nil,
			apperrors.Conflict("anchor with this Stellar account already exists"))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodPost, "/api/anchors",
			domain.AnchorInput{StellarAccount: testAccount, Name: "Acme Anchor"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		got := decodeBody[ErrorResponse](t, resp)
		assert.Equal(t, "Conflict", got.Error)
	})
}

func TestGetAnchor(t *testing.T) {
	t.Run("existing anchor", func(t *testing.T) {
		store := new(MockAnchorStore)
		id := uuid.New()
		store.On("GetByID", mock.Anything, id).Return(testAnchor(id), nil)

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors/"+id.String(), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[domain.Anchor](t, resp)
		assert.Equal(t, id, got.ID)
	})

	t.Run("invalid id yields 400", func(t *testing.T) {
		store := new(MockAnchorStore)
		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		store.AssertNotCalled(t, "GetByID")
	})

	t.Run("missing anchor yields 404", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("GetByID", mock.Anything, mock.Anything).Return(nil, apperrors.NotFound("anchor"))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetAnchorByAccount(t *testing.T) {
	t.Run("existing account", func(t *testing.T) {
		store := new(MockAnchorStore)
		id := uuid.New()
		store.On("GetByStellarAccount", mock.Anything, testAccount).Return(testAnchor(id), nil)

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors/account/"+testAccount, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[domain.Anchor](t, resp)
		assert.Equal(t, testAccount, got.StellarAccount)
	})

	t.Run("unknown account yields 404", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("GetByStellarAccount", mock.Anything, mock.Anything).Return(nil, apperrors.NotFound("anchor"))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors/account/"+testAccount, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("duplicate accounts yield 500 without internal detail", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("GetByStellarAccount", mock.Anything, mock.Anything).Return(nil,
			apperrors.Integrity("2 anchors share stellar account "+testAccount))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodGet, "/api/anchors/account/"+testAccount, nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		// The data-integrity diagnosis stays in the log, never in the body
		got := decodeBody[ErrorResponse](t, resp)
		assert.Equal(t, "An internal error occurred", got.Message)
		assert.NotContains(t, got.Message, testAccount)
	})
}

func TestUpdateAnchorMetrics(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		store := new(MockAnchorStore)
		id := uuid.New()
		updated := testAnchor(id)
		updated.TrustScore = 0.92

		store.On("UpdateMetrics", mock.Anything, id, mock.MatchedBy(func(in *domain.AnchorMetricsInput) bool {
			return in.TrustScore != nil && *in.TrustScore == 0.92 && in.TransactionCount == nil
		})).Return(updated, nil)

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodPut, "/api/anchors/"+id.String()+"/metrics",
			fiber.Map{"trustScore": 0.92})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[domain.Anchor](t, resp)
		assert.Equal(t, 0.92, got.TrustScore)
		store.AssertExpectations(t)
	})

	t.Run("invalid id yields 400", func(t *testing.T) {
		store := new(MockAnchorStore)
		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodPut, "/api/anchors/nope/metrics",
			fiber.Map{"trustScore": 0.92})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		store.AssertNotCalled(t, "UpdateMetrics")
	})

	t.Run("missing anchor yields 404", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("UpdateMetrics", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.NotFound("anchor"))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodPut, "/api/anchors/"+uuid.NewString()+"/metrics",
			fiber.Map{"trustScore": 0.92})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("out of range metric yields 400", func(t *testing.T) {
		store := new(MockAnchorStore)
		store.On("UpdateMetrics", mock.Anything, mock.Anything, mock.Anything).Return(nil,
			apperrors.Validation("trustScore must be between 0 and 1"))

		resp := doJSONRequest(t, setupAnchorsTestApp(store), http.MethodPut, "/api/anchors/"+uuid.NewString()+"/metrics",
			fiber.Map{"trustScore": 1.5})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
