package api

import (
	"errors"
	"net/http"

	reqdto "agent-portal/internal/handler/dto/request"
	resdto "agent-portal/internal/handler/dto/response"
	"agent-portal/internal/pkg/config"
	"agent-portal/internal/pkg/cookie"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Agent login
// @Description Proxy login to the upstream booking API and re-issue the access token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Failure 504 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// The login proxy maps transport failures to distinct statuses so
		// the client can tell an unreachable upstream from a slow one.
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, errs.ErrUpstreamUnreachable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Booking service unavailable",
			})
		case errors.Is(err, errs.ErrUpstreamTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Booking service timed out",
			})
		case errors.Is(err, errs.ErrUpstreamBadResponse):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Booking service returned an unreadable response",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, session.AccessToken, h.cookieCfg.LoginMaxAgeSecs)
	c.JSON(http.StatusOK, resdto.FromSession(session))
}

// @Summary Refresh access token
// @Description Re-issue the access token cookie using the current one as proof
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.AccessTokenResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/refresh-token [get]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	current := cookie.GetAccessToken(c)
	if current == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Access token required",
		})
		return
	}

	session, err := h.authCommands.Refresh(c.Request.Context(), current)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUpstreamRejected):
			cookie.ClearAccessToken(c, h.cookieCfg)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired",
			})
		case errors.Is(err, errs.ErrUpstreamTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Booking service timed out",
			})
		case errors.Is(err, errs.ErrUpstreamUnreachable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Booking service unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, session.AccessToken, h.cookieCfg.RefreshMaxAgeSecs)
	c.JSON(http.StatusOK, resdto.AccessTokenResponse{AccessToken: session.AccessToken})
}

// @Summary Current access token
// @Description Echo the access token currently held in the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.AccessTokenResponse
// @Router /api/auth/access-token [get]
func (h *AuthHandler) AccessToken(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.AccessTokenResponse{
		AccessToken: cookie.GetAccessToken(c),
	})
}
