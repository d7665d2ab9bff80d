package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/app"
	"spendtrack/internal/config"
	"spendtrack/internal/pkg/sessiontoken"
	"spendtrack/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
	session     config.SessionConfig
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, session: session}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, err := h.authService.Register(app.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, app.ErrUsernameExists):
			response.Error(c, http.StatusConflict, "Username already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	response.Message(c, http.StatusCreated, "Registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Same response as a wrong password; the login surface never says
		// which part of the input was bad.
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.authService.Login(app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidCredential) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	ttl := time.Duration(h.session.TTLMinute) * time.Minute
	token, err := sessiontoken.Generate(h.session.Secret, ttl, user.ID, user.Username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	h.setSessionCookie(c, token, int(ttl.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"username": user.Username,
	})
}

// Logout clears the cookie unconditionally; logging out without a session is
// not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logout successful")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, value, maxAge, "/", "", h.session.SecureCookie, true)
}
