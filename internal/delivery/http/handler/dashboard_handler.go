package handler

import (
	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/pkg/response"
	ucadmin "mitronet/internal/usecase/admin"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc ucadmin.AdminUsecase
}

func NewDashboardHandler(uc ucadmin.AdminUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Dashboard)
}

func (h *DashboardHandler) Dashboard(c fiber.Ctx) error {
	users, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.OK(c, fiber.Map{"users": users})
}
