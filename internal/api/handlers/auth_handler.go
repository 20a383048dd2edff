package handlers

import (
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/api/middleware"
	"github.com/alligatorO15/wed-planner/internal/config"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	refreshTokenCookie = "refresh_token"
	refreshTokenPath   = "/api/v1/auth"
)

type AuthHandler struct {
	authService service.AuthService
	config      *config.Config
}

func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input models.UserRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response, err := h.authService.Register(c.Request.Context(), &input)
	if err != nil {
		if err == service.ErrUserExists {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setRefreshTokenCookie(c, response.RefreshToken)
	response.RefreshToken = "" //затираем из json ответа

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input models.UserLogin
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setRefreshTokenCookie(c, response.RefreshToken)
	response.RefreshToken = ""

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	// берем refresh token из httpOnly cookie
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token not found"})
		return
	}

	response, err := h.authService.RefreshTokens(c.Request.Context(), refreshToken)
	if err != nil {
		if err == service.ErrInvalidToken || err == service.ErrTokenExpired || err == service.ErrTokenRevoked {
			h.clearRefreshTokenCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setRefreshTokenCookie(c, response.RefreshToken)
	response.RefreshToken = ""

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err == nil && refreshToken != "" {
		_ = h.authService.Logout(c.Request.Context(), refreshToken)
	}

	h.clearRefreshTokenCookie(c)

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.authService.LogoutAll(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out from all devices"})
}

// устанавливает refresh token в httpOnly cookie
func (h *AuthHandler) setRefreshTokenCookie(c *gin.Context, token string) {
	secure := h.config.Env == "production"
	maxAge := int(h.config.RefreshTokenExpiration.Seconds())

	c.SetCookie(
		refreshTokenCookie,
		token,
		maxAge,
		refreshTokenPath, // браузер шлет куку только на auth-эндпоинты
		"",
		secure, // по https только в проде
		true,   // httpOnly, из javascript недоступен
	)
}

// удаляет refresh token cookie
func (h *AuthHandler) clearRefreshTokenCookie(c *gin.Context) {
	secure := h.config.Env == "production"

	c.SetCookie(
		refreshTokenCookie,
		"",
		-1,
		refreshTokenPath,
		"",
		secure,
		true,
	)
}
