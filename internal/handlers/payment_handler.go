package handlers

import (
	"fmt"
	"log"

	"antar/internal/middleware"
	"antar/internal/models"
	"antar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments", middleware.RequireRoles(models.RoleCustomer))
	paymentRoutes.Post("/", h.HandleCreatePayment)
	paymentRoutes.Post("/:id/capture", h.HandleCapturePayment)
	paymentRoutes.Get("/", h.HandleListPayments)
}

// CreatePaymentRequest represents the request body for opening a payment.
type CreatePaymentRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Provider    string `json:"provider" validate:"required,oneof=paypal payhere"`
}

// HandleCreatePayment opens a payment record for the calling customer.
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-payment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	payment, err := h.service.CreatePayment(customerID, req.AmountCents, req.Provider)
	if err != nil {
		log.Printf("Error creating payment for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// HandleCapturePayment marks a created payment as completed.
func (h *PaymentHandler) HandleCapturePayment(c *fiber.Ctx) error {
	paymentID := c.Params("id")
	payment, err := h.service.CapturePayment(paymentID)
	if err != nil {
		log.Printf("Error capturing payment %s: %v", paymentID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(payment)
}

// HandleListPayments lists the calling customer's payments.
func (h *PaymentHandler) HandleListPayments(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	payments, err := h.service.ListPayments(customerID)
	if err != nil {
		log.Printf("Error listing payments for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(payments)
}
