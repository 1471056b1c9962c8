package handlers

import (
	"errors"
	"io"
	"net/http"

	"shujia/models"
	"shujia/services/bookingflow"
	"shujia/services/session"
	"shujia/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxProofBytes caps the uploaded payment proof at 8 MiB.
const maxProofBytes = 8 << 20

// FlowHandler exposes the checkout flow over HTTP: session minting, the cart
// surface, and the booking and payment steps.
type FlowHandler struct {
	Store   session.Store
	Booking bookingflow.BookingController
	Payment bookingflow.PaymentController
	Logger  *zap.Logger
}

func NewFlowHandler(store session.Store, booking bookingflow.BookingController, payment bookingflow.PaymentController, logger *zap.Logger) *FlowHandler {
	return &FlowHandler{
		Store:   store,
		Booking: booking,
		Payment: payment,
		Logger:  logger,
	}
}

// StartSessionHandler mints a session ID and optionally seeds the cart.
func (h *FlowHandler) StartSessionHandler(c *gin.Context) {
	var input struct {
		Cart []models.CartItem `json:"cart"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	sessionID := uuid.New().String()
	if len(input.Cart) > 0 {
		if err := h.Store.SaveCart(c.Request.Context(), sessionID, input.Cart); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to seed cart", err.Error())
			return
		}
	}

	h.Logger.Info("flow: session started",
		zap.String("sessionID", sessionID),
		zap.Int("cartItems", len(input.Cart)))
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// GetCartHandler returns the session's cart; an unseeded session reads as empty.
func (h *FlowHandler) GetCartHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	items, err := h.Store.Cart(c.Request.Context(), sessionID)
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"data": []models.CartItem{}})
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// UpdateCartHandler replaces the session's cart wholesale.
func (h *FlowHandler) UpdateCartHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var input struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Store.SaveCart(c.Request.Context(), sessionID, input.Items); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": input.Items})
}

// EnterBookingHandler loads the booking step: the saved or freshly defaulted
// form, or a transition back to entry when the cart guard trips.
func (h *FlowHandler) EnterBookingHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	form, transition, err := h.Booking.Enter(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking step", err.Error())
		return
	}
	if transition != nil {
		c.JSON(http.StatusOK, gin.H{"transition": transition})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":      form,
		"cities":    models.Cities,
		"timeSlots": models.StartTimeSlots,
	})
}

// SubmitBookingHandler validates and persists the booking form.
func (h *FlowHandler) SubmitBookingHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var form models.BookingFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	transition, violations, err := h.Booking.Submit(c.Request.Context(), sessionID, form)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit booking form", err.Error())
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transition": transition})
}

// EnterPaymentHandler resolves the cart into services and quotes the totals.
func (h *FlowHandler) EnterPaymentHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	view, transition, err := h.Payment.Enter(c.Request.Context(), sessionID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	if transition != nil {
		c.JSON(http.StatusOK, gin.H{"transition": transition})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}

// SubmitPaymentHandler accepts the multipart proof upload and finalizes the
// booking transaction.
func (h *FlowHandler) SubmitPaymentHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	proof, err := h.readProof(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid proof upload", err.Error())
		return
	}

	transition, violations, err := h.Payment.Submit(c.Request.Context(), sessionID, proof)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transition": transition})
}

// readProof extracts the optional "proof" file part. Absence is not an error
// here; the payment schema reports it as a violation instead.
func (h *FlowHandler) readProof(c *gin.Context) (*models.ProofFile, error) {
	header, err := c.FormFile("proof")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if header.Size > maxProofBytes {
		return nil, errors.New("proof file exceeds the 8 MiB limit")
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxProofBytes))
	if err != nil {
		return nil, err
	}

	return &models.ProofFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// respondFlowError maps remote-call failures to 502 and everything else to 500.
func (h *FlowHandler) respondFlowError(c *gin.Context, err error) {
	var flowErr *bookingflow.FlowError
	if errors.As(err, &flowErr) {
		utils.JSONError(c, http.StatusBadGateway, flowErr.Code, flowErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
