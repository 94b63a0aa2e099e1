package handler

import (
	"go-admin-console/internal/middleware"
	"go-admin-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenus returns the navigation entries the current user may see
// GET /api/v1/menus
func (h *MenuHandler) GetMenus(c *fiber.Ctx) error {
	menus, err := h.menuService.MenusForUser(middleware.CurrentUser(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve menus"})
	}
	return c.JSON(menus)
}
