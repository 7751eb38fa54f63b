package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/middleware"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
)

const oauthStateCookie = "oauth_state"

// OAuthHandler drives the browser-redirect handshake with external identity
// providers. It only ever sees the generic OAuthProvider capability; which
// providers exist is decided by configuration at startup.
type OAuthHandler struct {
	oauthService portssvc.OAuthSvcFacade
	authService  portssvc.AuthSvcFacade
	cfg          *config.Config
}

// NewOAuthHandler creates a new OAuthHandler.
func NewOAuthHandler(oauthService portssvc.OAuthSvcFacade, authService portssvc.AuthSvcFacade, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{oauthService: oauthService, authService: authService, cfg: cfg}
}

// registerOAuthRoutes sets up the provider redirect routes.
func registerOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewOAuthHandler(services.OAuth, services.Auth, cfg)

	oauth := r.Group("/api/oauth")
	{
		oauth.GET("/:provider", h.Redirect)
		oauth.GET("/:provider/callback", h.Callback)
		oauth.POST("/logout", h.Logout)
	}
}

// Redirect godoc
// @Summary Start an OAuth login with the named provider
// @Description Redirects the browser to the provider's consent screen with a CSRF state.
// @Tags oauth
// @Param provider path string true "Provider name (google, github)"
// @Success 302
// @Failure 404 {object} dto.Response "Unknown or unconfigured provider"
// @Router /oauth/{provider} [get]
func (h *OAuthHandler) Redirect(c *gin.Context) {
	provider, ok := h.oauthService.Provider(c.Param("provider"))
	if !ok {
		respondError(c, apperrors.NewNotFoundError("Provider not found"))
		return
	}

	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// The state round-trips through a short-lived cookie so the callback can
	// reject forged requests.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusFound, provider.AuthCodeURL(state))
}

// Callback godoc
// @Summary Complete an OAuth login
// @Description Exchanges the authorization code, bridges the profile to a local account and redirects to the frontend with a token.
// @Tags oauth
// @Param provider path string true "Provider name (google, github)"
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 302
// @Router /oauth/{provider}/callback [get]
func (h *OAuthHandler) Callback(c *gin.Context) {
	provider, ok := h.oauthService.Provider(c.Param("provider"))
	if !ok {
		respondError(c, apperrors.NewNotFoundError("Provider not found"))
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || cookieState == "" || cookieState != c.Query("state") {
		logger.Warn("OAuth state mismatch", slog.String("provider", string(provider.Name())))
		h.redirectLoginError(c)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		h.redirectLoginError(c)
		return
	}

	profile, err := provider.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		logger.Warn("OAuth code exchange failed", slog.String("provider", string(provider.Name())), slog.String("error", err.Error()))
		h.redirectLoginError(c)
		return
	}

	result, err := h.authService.LoginWithProvider(c.Request.Context(), provider.Name(), *profile)
	if err != nil {
		logger.Warn("OAuth account bridge failed", slog.String("provider", string(provider.Name())), slog.String("error", err.Error()))
		h.redirectLoginError(c)
		return
	}

	query := url.Values{}
	query.Set("token", result.Token)
	query.Set("email", result.User.Email)
	query.Set("name", profile.DisplayName)
	c.Redirect(http.StatusFound, h.cfg.FrontendBaseURL+"/auth/callback?"+query.Encode())
}

// Logout godoc
// @Summary Acknowledge a logout
// @Description Sessions are client-held, so logout is a stateless acknowledgement; the client discards its token.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /oauth/logout [post]
func (h *OAuthHandler) Logout(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// redirectLoginError sends the browser back to the frontend login page. The
// failure reason stays in the server log; the query flag is all the frontend
// needs to show a generic message.
func (h *OAuthHandler) redirectLoginError(c *gin.Context) {
	c.Redirect(http.StatusFound, h.cfg.FrontendBaseURL+"/auth/login?error=true")
}
