package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig configures the CORS middleware
type CORSConfig struct {
	// AllowOrigins is a list of allowed origins
	AllowOrigins []string
	// AllowMethods is a list of allowed methods
	AllowMethods []string
	// AllowHeaders is a list of allowed headers
	AllowHeaders []string
	// ExposeHeaders is a list of headers to expose
	ExposeHeaders []string
	// MaxAge indicates how long the results of a preflight request can be cached
	MaxAge int
}

// DefaultCORSConfig returns a permissive config allowing any origin.
// The API serves public read-heavy dashboard traffic.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodOptions,
			fiber.MethodHead,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Request-ID",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
		},
		MaxAge: 86400, // 24 hours
	}
}

// CORSMiddleware creates a CORS middleware
type CORSMiddleware struct {
	config CORSConfig
}

// NewCORSMiddleware creates a new CORS middleware
func NewCORSMiddleware(config CORSConfig) *CORSMiddleware {
	return &CORSMiddleware{
		config: config,
	}
}

// Handler returns the CORS handler
func (m *CORSMiddleware) Handler() fiber.Handler {
	allowMethods := strings.Join(m.config.AllowMethods, ", ")
	allowHeaders := strings.Join(m.config.AllowHeaders, ", ")
	exposeHeaders := strings.Join(m.config.ExposeHeaders, ", ")

	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")

		allowOrigin := ""
		if len(m.config.AllowOrigins) == 1 && m.config.AllowOrigins[0] == "*" {
			allowOrigin = "*"
		} else {
			for _, o := range m.config.AllowOrigins {
				if o == origin || o == "*" {
					allowOrigin = origin
					break
				}
				// Support wildcard subdomains (e.g., *.example.com)
				if strings.HasPrefix(o, "*.") {
					domain := o[1:]
					if strings.HasSuffix(origin, domain) {
						allowOrigin = origin
						break
					}
				}
			}
		}

		// Not allowed origin
		if allowOrigin == "" && origin != "" {
			return c.Next()
		}

		c.Set("Access-Control-Allow-Origin", allowOrigin)

		if exposeHeaders != "" {
			c.Set("Access-Control-Expose-Headers", exposeHeaders)
		}

		// Handle preflight request
		if c.Method() == fiber.MethodOptions {
			c.Set("Access-Control-Allow-Methods", allowMethods)
			c.Set("Access-Control-Allow-Headers", allowHeaders)

			if m.config.MaxAge > 0 {
				c.Set("Access-Control-Max-Age", strconv.Itoa(m.config.MaxAge))
			}

			c.Set("Content-Length", "0")
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
