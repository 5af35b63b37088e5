package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireSuperAdmin gates the administrative surface.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.Role != domain.RoleSuperAdmin {
			return apperrors.NewForbidden("super admin role required")
		}
		return c.Next()
	}
}
