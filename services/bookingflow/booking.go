package bookingflow

import (
	"context"
	"errors"
	"time"

	"shujia/models"
	"shujia/services/session"

	"go.uber.org/zap"
)

// DefaultBookingController implements BookingController.
type DefaultBookingController struct {
	Store     session.Store
	Validator *Validator
	Logger    *zap.Logger
	// Now is the clock used for the "tomorrow" schedule default.
	Now func() time.Time
}

func NewBookingController(store session.Store, v *Validator, logger *zap.Logger) *DefaultBookingController {
	return &DefaultBookingController{
		Store:     store,
		Validator: v,
		Logger:    logger,
		Now:       time.Now,
	}
}

// loadCart applies the cart-presence guard shared by both steps. A missing,
// corrupt or empty cart yields an entry transition, not an error.
func loadCart(ctx context.Context, store session.Store, logger *zap.Logger, sessionID string) ([]models.CartItem, *models.Transition, error) {
	items, err := store.Cart(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		logger.Debug("booking flow: no cart for session, redirecting to entry",
			zap.String("sessionID", sessionID))
		return nil, models.EntryTransition(), nil
	}
	if err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		logger.Debug("booking flow: empty cart for session, redirecting to entry",
			zap.String("sessionID", sessionID))
		return nil, models.EntryTransition(), nil
	}
	return items, nil, nil
}

func (c *DefaultBookingController) Enter(ctx context.Context, sessionID string) (*models.BookingFormData, *models.Transition, error) {
	_, redirect, err := loadCart(ctx, c.Store, c.Logger, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if redirect != nil {
		return nil, redirect, nil
	}

	form, err := c.Store.BookingData(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		fresh := models.NewBookingFormData(c.Now())
		return &fresh, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if form.ScheduleAt == "" {
		form.ScheduleAt = c.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}
	return form, nil, nil
}

func (c *DefaultBookingController) Submit(ctx context.Context, sessionID string, form models.BookingFormData) (*models.Transition, Violations, error) {
	_, redirect, err := loadCart(ctx, c.Store, c.Logger, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if redirect != nil {
		return redirect, nil, nil
	}

	if violations := c.Validator.ValidateBookingForm(form); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := c.Store.SaveBookingData(ctx, sessionID, form); err != nil {
		return nil, nil, err
	}

	c.Logger.Info("booking flow: booking data saved",
		zap.String("sessionID", sessionID),
		zap.String("scheduleAt", form.ScheduleAt))
	return models.PaymentTransition(), nil, nil
}
