package bookingflow

import (
	"context"
	"errors"

	"shujia/models"
	"shujia/services/marketplace"
	"shujia/services/session"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPaymentController implements PaymentController.
type DefaultPaymentController struct {
	Store     session.Store
	Client    marketplace.Client
	Validator *Validator
	Logger    *zap.Logger
}

func NewPaymentController(store session.Store, client marketplace.Client, v *Validator, logger *zap.Logger) *DefaultPaymentController {
	return &DefaultPaymentController{
		Store:     store,
		Client:    client,
		Validator: v,
		Logger:    logger,
	}
}

// resolveServices issues one lookup per cart entry, all concurrent, and
// aggregates the results in cart order regardless of completion order. Any
// single failure aborts the whole resolution.
func (c *DefaultPaymentController) resolveServices(ctx context.Context, items []models.CartItem) ([]models.HomeService, error) {
	g, ctx := errgroup.WithContext(ctx)
	services := make([]models.HomeService, len(items))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			svc, err := c.Client.ServiceBySlug(ctx, item.Slug)
			if err != nil {
				return err
			}
			services[i] = *svc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.Logger.Error("payment flow: service resolution failed", zap.Error(err))
		return nil, NewResolutionError(err)
	}
	return services, nil
}

func serviceIDs(services []models.HomeService) []int {
	ids := make([]int, len(services))
	for i, svc := range services {
		ids[i] = svc.ID
	}
	return ids
}

// loadBookingData tolerates an absent record at load time; the submission
// schema still catches anything the assembled payload cannot do without.
func (c *DefaultPaymentController) loadBookingData(ctx context.Context, sessionID string) (*models.BookingFormData, error) {
	form, err := c.Store.BookingData(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (c *DefaultPaymentController) Enter(ctx context.Context, sessionID string) (*PaymentView, *models.Transition, error) {
	items, redirect, err := loadCart(ctx, c.Store, c.Logger, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if redirect != nil {
		return nil, redirect, nil
	}

	booking, err := c.loadBookingData(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	services, err := c.resolveServices(ctx, items)
	if err != nil {
		return nil, nil, err
	}

	return &PaymentView{
		BookingData: booking,
		Services:    services,
		ServiceIDs:  serviceIDs(services),
		Quote:       Quote(services),
	}, nil, nil
}

func (c *DefaultPaymentController) Submit(ctx context.Context, sessionID string, proof *models.ProofFile) (*models.Transition, Violations, error) {
	items, redirect, err := loadCart(ctx, c.Store, c.Logger, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if redirect != nil {
		return redirect, nil, nil
	}

	booking, err := c.loadBookingData(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	// service_ids is always derived from the resolved list, never hand-edited.
	services, err := c.resolveServices(ctx, items)
	if err != nil {
		return nil, nil, err
	}

	submission := models.PaymentSubmission{
		Proof:      proof,
		ServiceIDs: serviceIDs(services),
	}
	if violations := c.Validator.ValidatePayment(submission); len(violations) > 0 {
		return nil, violations, nil
	}

	receipt, err := c.Client.SubmitBookingTransaction(ctx, marketplace.BookingTransaction{
		Proof:      submission.Proof,
		Booking:    booking,
		ServiceIDs: submission.ServiceIDs,
	})
	if err != nil {
		// Session state is left intact so the user can retry with the same
		// cart, form fields and file selection.
		c.Logger.Error("payment flow: transaction submission failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, nil, NewSubmissionError(err)
	}

	if receipt.BookingTrxID == "" {
		c.Logger.Error("payment flow: transaction response missing booking_trx_id",
			zap.String("sessionID", sessionID))
	}

	if err := c.Store.ClearBookingState(ctx, sessionID); err != nil {
		// The transaction went through; a stale session must not strand the
		// user on the payment page.
		c.Logger.Error("payment flow: failed to clear session after success",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	c.Logger.Info("payment flow: transaction confirmed",
		zap.String("sessionID", sessionID),
		zap.String("bookingTrxID", receipt.BookingTrxID))
	return models.ConfirmationTransition(receipt.BookingTrxID, receipt.Email), nil, nil
}
