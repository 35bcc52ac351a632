package handler

import (
	"errors"

	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/pkg/response"
	ucsocial "mitronet/internal/usecase/social"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SocialHandler struct {
	uc ucsocial.SocialUsecase
}

type friendRequest struct {
	UserID string `json:"userId" form:"userId"`
}

func NewSocialHandler(uc ucsocial.SocialUsecase) *SocialHandler {
	return &SocialHandler{uc: uc}
}

func (h *SocialHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/addfriend", h.AddFriend)
	r.Post("/removefriend", h.RemoveFriend)
	r.Get("/connection", h.Connections)
}

func (h *SocialHandler) AddFriend(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	targetID, err := bindFriendTarget(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := h.uc.AddFriend(c.Context(), claims.UserID, targetID); err != nil {
		return mapSocialUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"message": "Friend added successfully"})
}

func (h *SocialHandler) RemoveFriend(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	targetID, err := bindFriendTarget(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := h.uc.RemoveFriend(c.Context(), claims.UserID, targetID); err != nil {
		return mapSocialUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"message": "Friend removed successfully"})
}

func (h *SocialHandler) Connections(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	view, err := h.uc.Connections(c.Context(), claims.UserID)
	if err != nil {
		return mapSocialUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"friends": view.Friends, "allUsers": view.AllUsers})
}

func bindFriendTarget(c fiber.Ctx) (uuid.UUID, error) {
	var req friendRequest
	if err := c.Bind().Body(&req); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(req.UserID)
}

func mapSocialUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucsocial.ErrSelfFriend):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot add yourself as friend", err)
	case errors.Is(err, ucsocial.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
