package handlers

import (
	"antar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusForKind maps the domain error taxonomy to HTTP statuses.
var statusForKind = map[services.ErrorKind]int{
	services.KindValidation:         fiber.StatusBadRequest,
	services.KindEmptyCart:          fiber.StatusBadRequest,
	services.KindInvalidState:       fiber.StatusBadRequest,
	services.KindNotFound:           fiber.StatusNotFound,
	services.KindForbidden:          fiber.StatusForbidden,
	services.KindPaymentNotVerified: fiber.StatusPaymentRequired,
	services.KindConflict:           fiber.StatusConflict,
	services.KindUpstream:           fiber.StatusBadGateway,
	services.KindInternal:           fiber.StatusInternalServerError,
}

// respondDomainError writes a JSON error response carrying the stable
// error kind alongside the human-readable message.
func respondDomainError(c *fiber.Ctx, err error) error {
	kind := services.KindOf(err)
	status, ok := statusForKind[kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"kind":  string(kind),
		"error": err.Error(),
	})
}

// currentUserID pulls the authenticated user's ID out of the request
// context, set there by the JWT middleware.
func currentUserID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("user_id").(string)
	return userID, ok && userID != ""
}

// currentRole pulls the authenticated user's role out of the request
// context.
func currentRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals("role").(string)
	return role, ok && role != ""
}
