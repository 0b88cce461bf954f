package api

import (
	"errors"
	"net/http"

	reqdto "agent-portal/internal/handler/dto/request"
	resdto "agent-portal/internal/handler/dto/response"
	"agent-portal/internal/handler/middleware"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/usecase/commands"
	"agent-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartQueries  queries.CartQueries
	cartCommands commands.CartCommands
}

func NewCartHandler(cartQueries queries.CartQueries, cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartQueries:  cartQueries,
		cartCommands: cartCommands,
	}
}

// @Summary Cart view
// @Description Current cart with per-line nights, resolved prices and promo entitlements
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param currency query string false "Display currency"
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartQueries.View(c.Request.Context(), accessToken, c.Query("currency"))
	if err != nil {
		respondUpstreamError(c, err, "Failed to load cart")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} map[string]string
// @Router /api/cart/lines/{id} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.cartCommands.RemoveLine(c.Request.Context(), accessToken, c.Param("id")); err != nil {
		respondEnvelopeError(c, err, "Failed to remove room from cart")
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Room removed from cart", nil))
}

// @Summary Update line notes
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Param request body reqdto.UpdateNotesRequest true "Notes"
// @Success 200 {object} resdto.Envelope
// @Router /api/cart/lines/{id}/notes [put]
func (h *CartHandler) UpdateNotes(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Fail("Invalid request format"))
		return
	}

	if err := h.cartCommands.UpdateNotes(c.Request.Context(), accessToken, c.Param("id"), req.Notes); err != nil {
		respondEnvelopeError(c, err, "Failed to update notes")
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Notes updated", nil))
}

// @Summary Select line guest
// @Description Assign a guest as the named room occupant of one cart line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Param request body reqdto.SelectGuestRequest true "Guest"
// @Success 200 {object} resdto.Envelope
// @Router /api/cart/lines/{id}/guest [put]
func (h *CartHandler) SelectGuest(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SelectGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Fail("Invalid request format"))
		return
	}

	err := h.cartCommands.SelectGuest(c.Request.Context(), accessToken, c.Param("id"), req.Guest)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidGuest) {
			c.JSON(http.StatusBadRequest, resdto.Fail("A real guest must be selected"))
			return
		}
		respondEnvelopeError(c, err, "Failed to assign guest")
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Guest assigned", nil))
}

// respondUpstreamError maps gateway failures for plain read endpoints.
func respondUpstreamError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrUpstreamRejected):
		c.JSON(http.StatusBadGateway, gin.H{"error": upstreamMessage(err, fallback)})
	case errors.Is(err, errs.ErrUpstreamTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": fallback})
	case errors.Is(err, errs.ErrUpstreamUnreachable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fallback})
	case errors.Is(err, errs.ErrUpstreamBadResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondEnvelopeError converts command failures into the uniform failure
// envelope so the UI never sees an unhandled rejection.
func respondEnvelopeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrUpstreamRejected):
		c.JSON(http.StatusBadGateway, resdto.Fail(upstreamMessage(err, fallback)))
	case errors.Is(err, errs.ErrUpstreamTimeout),
		errors.Is(err, errs.ErrUpstreamUnreachable),
		errors.Is(err, errs.ErrUpstreamBadResponse):
		c.JSON(http.StatusBadGateway, resdto.Fail(fallback))
	case errors.Is(err, errs.ErrCartLineNotFound):
		c.JSON(http.StatusNotFound, resdto.Fail("Cart line not found"))
	default:
		c.JSON(http.StatusInternalServerError, resdto.Fail(fallback))
	}
}

// upstreamMessage passes the upstream rejection text through verbatim when
// it exists; the fallback is the per-action generic string.
func upstreamMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if msg := err.Error(); msg != "" && msg != errs.ErrUpstreamRejected.Error() {
		return msg
	}
	return fallback
}
