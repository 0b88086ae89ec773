package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fibercors "github.com/gofiber/fiber/v2/middleware/cors"

	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// OriginPolicy decides which cross-origin callers may issue credentialed
// requests. Matching is by prefix, which deliberately admits any port on the
// trusted development hosts.
type OriginPolicy struct {
	prefixes []string
}

// NewOriginPolicy builds a policy from trusted origin prefixes.
func NewOriginPolicy(prefixes []string) *OriginPolicy {
	return &OriginPolicy{prefixes: prefixes}
}

// Allow reports whether the declared origin may call this service. An absent
// origin means a same-origin or non-browser request and is always allowed.
func (p *OriginPolicy) Allow(origin string) bool {
	if origin == "" {
		return true
	}
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}

// OriginGate rejects requests from untrusted origins before any routing.
// Running ahead of the CORS middleware makes preflight and actual requests
// share the same decision.
func OriginGate(policy *OriginPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if origin := c.Get(fiber.HeaderOrigin); !policy.Allow(origin) {
			return apperrors.NewForbidden("Not allowed by CORS")
		}
		return c.Next()
	}
}

// NewCORS builds the CORS middleware from the origin policy. Credentials are
// only ever granted to origins the policy admits.
func NewCORS(policy *OriginPolicy) fiber.Handler {
	return fibercors.New(fibercors.Config{
		AllowOriginsFunc: policy.Allow,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Authorization,Accept",
		AllowCredentials: true,
	})
}
