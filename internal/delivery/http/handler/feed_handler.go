package handler

import (
	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/pkg/response"
	ucfeed "mitronet/internal/usecase/feed"

	"github.com/gofiber/fiber/v3"
)

type FeedHandler struct {
	uc ucfeed.FeedUsecase
}

func NewFeedHandler(uc ucfeed.FeedUsecase) *FeedHandler {
	return &FeedHandler{uc: uc}
}

func (h *FeedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/loginSuccessful", h.Feed)
	r.Get("/postshow", h.Posts)
	r.Get("/createpost", h.Posts)
}

func (h *FeedHandler) Feed(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	view, err := h.uc.Feed(c.Context(), claims.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.OK(c, fiber.Map{
		"user":     view.User,
		"posts":    view.Posts,
		"contacts": view.Contacts,
	})
}

func (h *FeedHandler) Posts(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	view, err := h.uc.Posts(c.Context(), claims.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.OK(c, fiber.Map{
		"user":    view.User,
		"posts":   view.Posts,
		"profile": view.User.Profile,
	})
}
