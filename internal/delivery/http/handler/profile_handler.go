package handler

import (
	"errors"

	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/pkg/response"
	"mitronet/internal/storage"
	ucprofile "mitronet/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc     ucprofile.ProfileUsecase
	images *storage.ImageStore
}

func NewProfileHandler(uc ucprofile.ProfileUsecase, images *storage.ImageStore) *ProfileHandler {
	return &ProfileHandler{uc: uc, images: images}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Get)
	r.Get("/editprofile", h.Get)
	r.Post("/editprofile", h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	view, err := h.uc.Get(c.Context(), claims.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.OK(c, fiber.Map{"user": view.User, "profile": view.Profile})
}

// Update accepts multipart form fields with an optional profileImage file.
func (h *ProfileHandler) Update(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	in := ucprofile.UpdateInput{
		Headline:  c.FormValue("headline"),
		Education: c.FormValue("education"),
		Location:  c.FormValue("location"),
		City:      c.FormValue("city"),
		DOB:       c.FormValue("dob"),
		Contact:   c.FormValue("contact"),
	}

	if fh, err := c.FormFile("profileImage"); err == nil && fh != nil {
		name, err := h.images.Save(fh)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedType) {
				return middleware.NewAppError(fiber.StatusBadRequest, "Only PNG and JPEG images are allowed", err)
			}
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
		in.ProfileImage = name
	}

	p, err := h.uc.Update(c.Context(), claims.UserID, in)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.OK(c, fiber.Map{"message": "Profile updated successfully", "profile": p})
}
