package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/STS-Engineer/customer-backend/internal/models"
	"github.com/STS-Engineer/customer-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GroupHandler handles all group-related HTTP requests: the nested list
// view, CRUD on group rows, and the complete group detail view.
//
// Related: FR-001 (Group Management), FR-004 (Nested Customer View)
type GroupHandler struct {
	groups *repository.GroupRepository
	logger *zap.Logger
}

// NewGroupHandler creates a new instance of GroupHandler with an initialized repository.
func NewGroupHandler(logger *zap.Logger) *GroupHandler {
	return &GroupHandler{
		groups: repository.NewGroupRepository(),
		logger: logger,
	}
}

// List responds to GET /api/groups with every group and its units in
// summary projection, ordered by group name.
func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groups.ListWithUnits(c.Context())
	if err != nil {
		return serverError(c, h.logger, "fetching groups", err)
	}

	return c.JSON(groups)
}

// Create responds to POST /api/groups.
//
// Required body field: groupe_name. Validation runs before any store access;
// a missing name is rejected without touching the database.
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in models.GroupInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(in.GroupeName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Group name is required")
	}

	group, err := h.groups.Create(c.Context(), &in)
	if err != nil {
		return serverError(c, h.logger, "creating group", err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// Update responds to PUT /api/groups/:id.
//
// Required body field: groupe_name. Responds 404 when the group does not exist.
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	groupID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	var in models.GroupInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(in.GroupeName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Group name is required")
	}

	group, err := h.groups.Update(c.Context(), groupID, &in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Group not found")
		}
		return serverError(c, h.logger, "updating group", err)
	}

	return c.JSON(group)
}

// Delete responds to DELETE /api/groups/:id.
//
// The repository removes the group's units and the group row in a single
// transaction; a missing group rolls everything back and yields a 404. On
// success the response confirms the cascade and echoes the deleted row.
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	groupID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	group, err := h.groups.Delete(c.Context(), groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Group not found")
		}
		return serverError(c, h.logger, "deleting group", err)
	}

	return c.JSON(models.DeletedGroup{
		Message:      "Group and associated units deleted successfully",
		DeletedGroup: *group,
	})
}

// Complete responds to GET /api/groups/:id/complete with one group and its
// units in full projection, each carrying its responsible person.
func (h *GroupHandler) Complete(c *fiber.Ctx) error {
	groupID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	complete, err := h.groups.GetComplete(c.Context(), groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Group not found")
		}
		return serverError(c, h.logger, "fetching complete group", err)
	}

	return c.JSON(complete)
}
