package handler

import (
	"errors"
	"time"

	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/pkg/response"
	"mitronet/internal/session"
	ucauth "mitronet/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc         ucauth.AuthUsecase
	sessions   *session.Store
	cookieName string
	cookieTTL  time.Duration
}

type signupRequest struct {
	FullName string `json:"fullName" form:"fullName"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func NewAuthHandler(uc ucauth.AuthUsecase, sessions *session.Store, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, cookieName: cookieName, cookieTTL: cookieTTL}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}

// RegisterProtectedRoutes attaches the routes that require a session.
func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	_, err := h.uc.Signup(c.Context(), ucauth.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"message": "User created successfully"})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	token, err := h.sessions.Create(c.Context(), session.Claims{
		UserID:   usr.ID,
		FullName: usr.FullName,
		Email:    usr.Email,
		Role:     usr.Role,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Session creation failed", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
	})

	if !middleware.WantsJSON(c) {
		return c.Redirect().To("/loginSuccessful")
	}

	return response.OK(c, fiber.Map{
		"user": fiber.Map{"id": usr.ID, "fullName": usr.FullName, "email": usr.Email},
	})
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	token := c.Cookies(h.cookieName)
	if err := h.sessions.Destroy(c.Context(), token); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Logout failed", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	if !middleware.WantsJSON(c) {
		return c.Redirect().To("/login")
	}

	return response.OK(c, fiber.Map{"message": "Logged out successfully"})
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *ucauth.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Error(), err)
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already exists", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid Email or Password", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
