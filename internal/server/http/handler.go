package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

const cookiePath = "/api"

type SessionService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.UserPublic, error)
	Login(ctx context.Context, in services.LoginInput) (*services.LoginResult, error)
	CompleteTwoFactor(ctx context.Context, in services.TwoFactorInput) (*services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) (string, error)
	CurrentUser(ctx context.Context, accessToken string) (*models.UserPublic, error)
}

type ResetService interface {
	ForgotPassword(ctx context.Context, in services.ForgotInput) (string, error)
	ResetPassword(ctx context.Context, in services.ResetInput) (string, error)
}

type Handler struct {
	sessions     SessionService
	resets       ResetService
	cookieSecure bool
	refreshTTL   time.Duration
}

type loginResponse struct {
	ID         string `json:"id"`
	Secret     string `json:"secret,omitempty"`
	OTPAuthURL string `json:"otpauth_url,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register mounts the routes on g.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/two-factor", h.twoFactor)
	g.GET("/user", h.user)
	g.POST("/refresh", h.refresh)
	g.DELETE("/logout", h.logout)
	g.POST("/forgot", h.forgot)
	g.POST("/reset", h.reset)
}

func (h *Handler) register(c *gin.Context) {
	var in services.RegisterInput
	if !bind(c, &in) {
		return
	}

	user, err := h.sessions.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) login(c *gin.Context) {
	var in services.LoginInput
	if !bind(c, &in) {
		return
	}

	res, err := h.sessions.Login(c.Request.Context(), in)
	if err != nil {
		// unknown account and wrong password look the same to the caller
		if errors.Is(err, common.ErrorNotFound) {
			err = common.ErrInvalidCredentials
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{ID: res.UserID, Secret: res.Secret, OTPAuthURL: res.EnrollmentURI})
}

func (h *Handler) twoFactor(c *gin.Context) {
	var in services.TwoFactorInput
	if !bind(c, &in) {
		return
	}

	pair, err := h.sessions.CompleteTwoFactor(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, tokenResponse{Token: pair.AccessToken})
}

func (h *Handler) user(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		writeError(c, common.ErrUnauthenticated)
		return
	}

	user, err := h.sessions.CurrentUser(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) refresh(c *gin.Context) {
	token, _ := c.Cookie(common.RefreshTokenCookieName)

	pair, err := h.sessions.Refresh(c.Request.Context(), token)
	if err != nil {
		// a rejected token will never work again
		if errors.Is(err, common.ErrUnauthenticated) {
			h.clearRefreshCookie(c)
		}
		writeError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, tokenResponse{Token: pair.AccessToken})
}

func (h *Handler) logout(c *gin.Context) {
	token, _ := c.Cookie(common.RefreshTokenCookieName)
	h.clearRefreshCookie(c)

	msg, err := h.sessions.Logout(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, messageResponse{Message: msg})
}

func (h *Handler) forgot(c *gin.Context) {
	var in services.ForgotInput
	if !bind(c, &in) {
		return
	}

	msg, err := h.resets.ForgotPassword(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) reset(c *gin.Context) {
	var in services.ResetInput
	if !bind(c, &in) {
		return
	}

	msg, err := h.resets.ResetPassword(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.RefreshTokenCookieName, token, int(h.refreshTTL.Seconds()), cookiePath, "", h.cookieSecure, true)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.RefreshTokenCookieName, "", -1, cookiePath, "", h.cookieSecure, true)
}

// bind decodes the JSON body into dst and answers 400 when it cannot.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return false
	}
	return true
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
