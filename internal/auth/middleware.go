package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
	apperrors "github.com/Consort-Group-Corp/support-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the authenticated caller as resolved from the bearer token:
// the (userId, role) pair the identity service vouches for.
type Principal struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return apperrors.NewUnauthorized("invalid subject")
	}
	role, err := domain.ParseUserRole(string(claims.Role))
	if err != nil {
		return apperrors.NewUnauthorized("unknown role")
	}

	c.Locals(principalKey, &Principal{UserID: userID, Role: role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
