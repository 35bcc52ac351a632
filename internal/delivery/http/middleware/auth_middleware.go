package middleware

import (
	"errors"
	"strings"

	"mitronet/internal/session"

	"github.com/gofiber/fiber/v3"
)

const CtxClaimsKey = "session_claims"

type AuthMiddleware struct {
	sessions   *session.Store
	cookieName string
}

func NewAuthMiddleware(sessions *session.Store, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cookieName: cookieName}
}

// Middleware resolves the session cookie to identity claims. API callers
// get a 401; browser form-submitters are sent back to the login page.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(m.cookieName)
		claims, err := m.sessions.Get(c.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				if !WantsJSON(c) {
					return c.Redirect().To("/login")
				}
				return NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
			}
			return NewAppError(fiber.StatusInternalServerError, "", err)
		}

		c.Locals(CtxClaimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the authenticated identity set by the auth
// middleware.
func ClaimsFromCtx(c fiber.Ctx) (session.Claims, bool) {
	claims, ok := c.Locals(CtxClaimsKey).(session.Claims)
	return claims, ok
}

// WantsJSON distinguishes API callers from browser form-submitters.
func WantsJSON(c fiber.Ctx) bool {
	return strings.Contains(c.Get("Accept"), "application/json")
}
