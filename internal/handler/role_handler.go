package handler

import (
	"errors"
	"strconv"

	"go-admin-console/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// parseID parses the numeric :id route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// isBusinessRejection reports whether err is an expected business-rule
// rejection rather than an infrastructure failure
func isBusinessRejection(err error) bool {
	return errors.Is(err, service.ErrRoleNameExists) ||
		errors.Is(err, service.ErrDefaultRoleExists) ||
		errors.Is(err, service.ErrRoleInUse)
}

// CreateRole handles role creation
// POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req service.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	if err := h.roleService.CreateRole(&req); err != nil {
		if isBusinessRejection(err) {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create role"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "message": "Role created"})
}

// UpdateRole handles partial role updates
// PATCH /api/v1/roles/:id
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid role ID"})
	}

	var req service.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	ok, err := h.roleService.UpdateRole(id, &req)
	if err != nil {
		if isBusinessRejection(err) {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update role"})
	}
	if !ok {
		// Zero affected rows is a logical failure, not a server error
		return c.JSON(fiber.Map{"success": false, "message": "Role update failed"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Role updated"})
}

// DeleteRole soft-deletes a role with no account bindings
// DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid role ID"})
	}

	ok, err := h.roleService.DeleteRole(id)
	if err != nil {
		if isBusinessRejection(err) {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete role"})
	}
	if !ok {
		return c.JSON(fiber.Map{"success": false, "message": "Role delete failed"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Role deleted"})
}

// GetRole returns a single role, or null when absent
// GET /api/v1/roles/:id
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid role ID"})
	}

	role, err := h.roleService.GetRole(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch role"})
	}
	return c.JSON(role)
}

// GetRoles returns a paginated role list envelope
// GET /api/v1/roles?pageNumber&pageSize&name&status
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	req := service.RoleListRequest{
		PageNumber: c.QueryInt("pageNumber"),
		PageSize:   c.QueryInt("pageSize"),
		Name:       c.Query("name"),
	}
	if raw := c.Query("status"); raw != "" {
		if status, err := strconv.Atoi(raw); err == nil {
			req.Status = &status
		}
	}

	resp, err := h.roleService.ListRoles(&req)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	return c.JSON(resp)
}
