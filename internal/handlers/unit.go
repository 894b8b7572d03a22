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

// UnitHandler handles all unit-related HTTP requests.
//
// Related: FR-002 (Unit Management)
type UnitHandler struct {
	units  *repository.UnitRepository
	logger *zap.Logger
}

// NewUnitHandler creates a new instance of UnitHandler with an initialized repository.
func NewUnitHandler(logger *zap.Logger) *UnitHandler {
	return &UnitHandler{
		units:  repository.NewUnitRepository(),
		logger: logger,
	}
}

// GetByID responds to GET /api/units/:id with the full unit projection,
// including the owning group's name and the responsible person (or null).
func (h *UnitHandler) GetByID(c *fiber.Ctx) error {
	unitID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid unit ID")
	}

	unit, err := h.units.GetByID(c.Context(), unitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Unit not found")
		}
		return serverError(c, h.logger, "fetching unit details", err)
	}

	return c.JSON(unit)
}

// Create responds to POST /api/units.
//
// Required body fields: groupe_id and unit_name; everything else is optional
// and stored as null when absent. Boolean flags are normalized by the input
// type before they reach the repository.
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var in models.UnitInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if in.GroupeID == 0 || strings.TrimSpace(in.UnitName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Group ID and unit name are required")
	}

	unit, err := h.units.Create(c.Context(), &in)
	if err != nil {
		return serverError(c, h.logger, "creating unit", err)
	}

	return c.Status(fiber.StatusCreated).JSON(unit)
}

// Update responds to PUT /api/units/:id.
//
// Required body field: unit_name. Responds 404 when the unit does not exist.
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	unitID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid unit ID")
	}

	var in models.UnitUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(in.UnitName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Unit name is required")
	}

	unit, err := h.units.Update(c.Context(), unitID, &in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Unit not found")
		}
		return serverError(c, h.logger, "updating unit", err)
	}

	return c.JSON(unit)
}
