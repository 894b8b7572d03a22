package handlers

import (
	"errors"
	"strconv"

	"github.com/STS-Engineer/customer-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PersonHandler handles contact-person HTTP requests.
//
// Related: FR-003 (Contact Directory)
type PersonHandler struct {
	persons *repository.PersonRepository
	logger  *zap.Logger
}

// NewPersonHandler creates a new instance of PersonHandler with an initialized repository.
func NewPersonHandler(logger *zap.Logger) *PersonHandler {
	return &PersonHandler{
		persons: repository.NewPersonRepository(),
		logger:  logger,
	}
}

// ByDomain responds to GET /api/persons/by-domain?domain=<domain> with every
// person whose email ends in "@<domain>", ordered by first then last name.
//
// The domain query parameter is required.
func (h *PersonHandler) ByDomain(c *fiber.Ctx) error {
	domain := c.Query("domain")
	if domain == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Domain parameter is required")
	}

	persons, err := h.persons.ListByEmailDomain(c.Context(), domain)
	if err != nil {
		return serverError(c, h.logger, "fetching persons by domain", err)
	}

	return c.JSON(persons)
}

// GetByID responds to GET /api/persons/:id.
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	personID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	person, err := h.persons.GetByID(c.Context(), personID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Person not found")
		}
		return serverError(c, h.logger, "fetching person", err)
	}

	return c.JSON(person)
}
