package api

import (
	"errors"
	"net/http"

	reqdto "agent-portal/internal/handler/dto/request"
	resdto "agent-portal/internal/handler/dto/response"
	"agent-portal/internal/handler/middleware"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkoutCommands: checkoutCommands}
}

// @Summary Validate checkout
// @Description Check every cart line has a named guest. A passing validation returns a confirmation token.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ValidationResponse
// @Failure 422 {object} resdto.Envelope
// @Router /api/checkout/validate [post]
func (h *CheckoutHandler) Validate(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.checkoutCommands.Validate(c.Request.Context(), accessToken)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, resdto.Fail("Cart is empty"))
			return
		}
		respondUpstreamError(c, err, "Failed to validate checkout")
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}

// @Summary Submit checkout
// @Description Consume the confirmation token and place the booking upstream exactly once.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitCheckoutRequest true "Confirmation token"
// @Success 200 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Failure 422 {object} resdto.Envelope
// @Router /api/checkout [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SubmitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Fail("Invalid request format"))
		return
	}

	confirmationToken, err := uuid.Parse(req.ConfirmationToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.Fail("Invalid confirmation token"))
		return
	}

	invoice, err := h.checkoutCommands.Submit(c.Request.Context(), accessToken, confirmationToken)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoPendingConfirmation):
			c.JSON(http.StatusConflict, resdto.Fail("No checkout awaiting confirmation"))
		case errors.Is(err, errs.ErrConfirmationMismatch):
			c.JSON(http.StatusConflict, resdto.Fail("Confirmation token does not match"))
		case errors.Is(err, errs.ErrCheckoutAlreadyRunning):
			c.JSON(http.StatusConflict, resdto.Fail("Checkout is already in progress"))
		default:
			respondEnvelopeError(c, err, "Checkout failed")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Booking confirmed", resdto.FromInvoiceData(invoice)))
}

// @Summary Cancel checkout
// @Description Discard any pending confirmation for this agent.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Router /api/checkout [delete]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.checkoutCommands.Cancel(c.Request.Context(), accessToken); err != nil {
		if errors.Is(err, errs.ErrNoPendingConfirmation) {
			c.JSON(http.StatusConflict, resdto.Fail("No checkout awaiting confirmation"))
			return
		}
		respondEnvelopeError(c, err, "Failed to cancel checkout")
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Checkout cancelled", nil))
}
