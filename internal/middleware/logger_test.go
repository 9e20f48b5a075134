package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthSkipper(t *testing.T) {
	app := fiber.New()

	skipped := make(map[string]bool)
	app.Get("/*", func(c *fiber.Ctx) error {
		skipped[c.Path()] = HealthSkipper(c)
		return c.SendStatus(200)
	})

	probes := []string{"/health", "/livez", "/readyz", "/version", "/metrics"}
	for _, path := range probes {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.True(t, skipped[path], "expected %s to be skipped", path)
	}

	_, err := app.Test(httptest.NewRequest("GET", "/api/anchors", nil))
	require.NoError(t, err)
	assert.False(t, skipped["/api/anchors"])
}
