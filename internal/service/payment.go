package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/storefront/internal/model"
)

// ErrPaymentUnavailable means the payment backend is disabled or
// unreachable. Payments never fall back to the local store.
var ErrPaymentUnavailable = errors.New("payment backend unavailable")

// PaymentError wraps any failure during payment processing. It is
// always surfaced to the caller, never recovered locally.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %v", e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// PaymentService is the one orchestrator without a local transition:
// correctness here must never be faked by a mock, so every failure
// propagates.
type PaymentService struct {
	remote Remote
	router *Router
}

func NewPaymentService(remote Remote, router *Router) *PaymentService {
	return &PaymentService{remote: remote, router: router}
}

// ProcessPayment runs the payment command against the remote provider
func (s *PaymentService) ProcessPayment(ctx context.Context, data map[string]any) (model.PaymentResult, error) {
	return s.execute(ctx, model.PaymentCommandPayment, data)
}

// CreateSubscription runs the recurring-payment setup command
func (s *PaymentService) CreateSubscription(ctx context.Context, data map[string]any) (model.PaymentResult, error) {
	return s.execute(ctx, model.PaymentCommandCreateSubscription, data)
}

// Verify runs the payment verification command
func (s *PaymentService) Verify(ctx context.Context, data map[string]any) (model.PaymentResult, error) {
	return s.execute(ctx, model.PaymentCommandVerify, data)
}

func (s *PaymentService) execute(ctx context.Context, command string, data map[string]any) (model.PaymentResult, error) {
	if !s.router.BackendEnabled() {
		return model.PaymentResult{}, &PaymentError{Err: ErrPaymentUnavailable}
	}
	if !s.router.UseRemote(ctx) {
		return model.PaymentResult{}, &PaymentError{Err: ErrPaymentUnavailable}
	}

	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["reference"]; !ok {
		data["reference"] = uuid.NewString()
	}

	req := model.PaymentRequest{Command: command, Data: data}
	var result model.PaymentResult
	if err := s.remote.Post(ctx, "/api/payment", req, &result); err != nil {
		return model.PaymentResult{}, &PaymentError{Err: err}
	}
	if !result.Status {
		return result, &PaymentError{Err: errors.New(result.Error)}
	}
	return result, nil
}
