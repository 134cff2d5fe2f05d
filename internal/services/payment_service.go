package services

import (
	"strings"

	"antar/internal/models"
	"antar/internal/repositories"

	"github.com/google/uuid"
)

// PaymentService handles payment records and the verification gate
// consulted before order placement. Provider interaction is reduced to
// a capture step; the real capture call lives with the provider client.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
	}
}

// CreatePayment opens a payment record in the created state.
func (s *PaymentService) CreatePayment(customerID string, amountCents int64, provider string) (*models.Payment, error) {
	if amountCents <= 0 {
		return nil, NewDomainError(KindValidation, "payment amount must be positive")
	}
	if provider != models.ProviderPayPal && provider != models.ProviderPayHere {
		return nil, NewDomainError(KindValidation, "unknown payment provider %s", provider)
	}

	payment := &models.Payment{
		CustomerID:        customerID,
		AmountCents:       amountCents,
		Status:            models.PaymentCreated,
		Provider:          provider,
		ProviderPaymentID: uuid.New().String(),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not create payment for customer %s", customerID)
	}
	return payment, nil
}

// CapturePayment marks a created payment as completed, the state the
// verification gate requires.
func (s *PaymentService) CapturePayment(paymentID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, WrapDomainError(KindNotFound, err, "payment %s not found", paymentID)
		}
		return nil, WrapDomainError(KindUpstream, err, "could not load payment %s", paymentID)
	}
	if payment.Status != models.PaymentCreated {
		return nil, NewDomainError(KindInvalidState, "payment %s is %s, only created payments can be captured", paymentID, payment.Status)
	}

	if err := s.paymentRepo.UpdateStatus(paymentID, models.PaymentCompleted); err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not capture payment %s", paymentID)
	}
	payment.Status = models.PaymentCompleted
	return payment, nil
}

// ListPayments returns all payments made by a customer.
func (s *PaymentService) ListPayments(customerID string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not list payments for customer %s", customerID)
	}
	return payments, nil
}

// IsPaymentVerified reports whether a completed, not-yet-consumed
// payment exists for the customer with the exact amount. Amounts are
// integer cents, so the match is exact by construction.
func (s *PaymentService) IsPaymentVerified(customerID string, amountCents int64) (bool, error) {
	payment, err := s.paymentRepo.FindVerified(customerID, amountCents)
	if err != nil {
		return false, WrapDomainError(KindUpstream, err, "could not check payment for customer %s", customerID)
	}
	return payment != nil, nil
}

// ConsumePayment attaches the order to the matching verified payment so
// the same payment cannot satisfy a second placement.
func (s *PaymentService) ConsumePayment(customerID string, amountCents int64, orderID string) error {
	payment, err := s.paymentRepo.FindVerified(customerID, amountCents)
	if err != nil {
		return WrapDomainError(KindUpstream, err, "could not find payment to consume for customer %s", customerID)
	}
	if payment == nil {
		return NewDomainError(KindPaymentNotVerified, "no verified payment of %d cents for customer %s", amountCents, customerID)
	}
	if err := s.paymentRepo.AttachOrder(payment.ID, orderID); err != nil {
		return WrapDomainError(KindUpstream, err, "could not consume payment %s", payment.ID)
	}
	return nil
}
