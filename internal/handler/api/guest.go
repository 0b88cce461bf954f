package api

import (
	"errors"
	"net/http"

	"agent-portal/internal/domain/guest"
	reqdto "agent-portal/internal/handler/dto/request"
	resdto "agent-portal/internal/handler/dto/response"
	"agent-portal/internal/handler/middleware"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/usecase/commands"
	"agent-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestQueries  queries.GuestQueries
	guestCommands commands.GuestCommands
}

func NewGuestHandler(guestQueries queries.GuestQueries, guestCommands commands.GuestCommands) *GuestHandler {
	return &GuestHandler{
		guestQueries:  guestQueries,
		guestCommands: guestCommands,
	}
}

// @Summary Guest list
// @Description Display rows plus the names selectable as room occupants
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.GuestListResponse
// @Failure 401 {object} map[string]string
// @Router /api/guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.guestQueries.List(c.Request.Context(), accessToken)
	if err != nil {
		respondUpstreamError(c, err, "Failed to load guests")
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestListView(view))
}

// @Summary Add guests
// @Description Add a batch of structured guests. Any duplicate blocks the whole batch.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddGuestsRequest true "Guest batch"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Router /api/guests [post]
func (h *GuestHandler) Add(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Fail("Invalid request format"))
		return
	}

	batch, err := req.ToDomain()
	if err != nil {
		switch {
		case errors.Is(err, guest.ErrInvalidChildAge):
			c.JSON(http.StatusUnprocessableEntity, resdto.Fail("Child age must be between 1 and 15"))
		case errors.Is(err, guest.ErrEmptyName):
			c.JSON(http.StatusUnprocessableEntity, resdto.Fail("Guest name is required"))
		default:
			c.JSON(http.StatusUnprocessableEntity, resdto.Fail("Invalid guest data"))
		}
		return
	}

	if err := h.guestCommands.Add(c.Request.Context(), accessToken, batch); err != nil {
		var dup *commands.DuplicateGuestError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, resdto.FailWith("Duplicate guests", gin.H{"duplicates": dup.Names}))
			return
		}
		respondEnvelopeError(c, err, "Failed to add guests")
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Guests added", nil))
}

// @Summary Remove guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RemoveGuestRequest true "Guest to remove"
// @Success 200 {object} resdto.Envelope
// @Router /api/guests [delete]
func (h *GuestHandler) Remove(c *gin.Context) {
	accessToken, ok := middleware.GetAccessToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.RemoveGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Fail("Invalid request format"))
		return
	}

	if err := h.guestCommands.Remove(c.Request.Context(), accessToken, req.Guest); err != nil {
		if errors.Is(err, errs.ErrInvalidGuest) {
			c.JSON(http.StatusBadRequest, resdto.Fail("Guest name is required"))
			return
		}
		respondEnvelopeError(c, err, "Failed to remove guest")
		return
	}

	c.JSON(http.StatusOK, resdto.Ok("Guest removed", nil))
}
