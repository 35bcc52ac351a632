package middleware

import (
	"mitronet/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// Middleware gates a route on the admin role claim. It runs behind the
// auth middleware and never inspects credentials.
func (m *AdminMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
		}
		if claims.Role != user.RoleAdmin {
			return NewAppError(fiber.StatusForbidden, "Admin access required", nil)
		}
		return c.Next()
	}
}
