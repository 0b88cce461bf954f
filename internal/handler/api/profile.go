package api

import (
	"net/http"

	reqdto "agent-portal/internal/handler/dto/request"
	resdto "agent-portal/internal/handler/dto/response"
	"agent-portal/internal/handler/middleware"
	"agent-portal/internal/usecase/commands"
	"agent-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileQueries queries.ProfileQueries
	cartCommands   commands.CartCommands
}

func NewProfileHandler(profileQueries queries.ProfileQueries, cartCommands commands.CartCommands) *ProfileHandler {
	return &ProfileHandler{
		profileQueries: profileQueries,
		cartCommands:   cartCommands,
	}
}

// @Summary Contact details
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ContactView
// @Router /api/contact [get]
func (h *ProfileHandler) GetContact(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.profileQueries.Contact(c.Request.Context(), accessToken)
	if err != nil {
		respondUpstreamError(c, err, "Failed to load contact details")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Save contact details
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveContactRequest true "Contact details"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /api/contact [post]
func (h *ProfileHandler) SaveContact(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Fail("Invalid request format"))
		return
	}

	if err := h.cartCommands.SaveContact(c.Request.Context(), accessToken, req.ToDomain()); err != nil {
		respondEnvelopeError(c, err, "Failed to save contact details")
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Contact details saved", nil))
}

// @Summary Notifications
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.NotificationView
// @Router /api/notifications [get]
func (h *ProfileHandler) Notifications(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.profileQueries.Notifications(c.Request.Context(), accessToken)
	if err != nil {
		respondUpstreamError(c, err, "Failed to load notifications")
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Booking history
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingHistoryItem
// @Router /api/bookings [get]
func (h *ProfileHandler) Bookings(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.profileQueries.Bookings(c.Request.Context(), accessToken)
	if err != nil {
		respondUpstreamError(c, err, "Failed to load booking history")
		return
	}

	c.JSON(http.StatusOK, items)
}
