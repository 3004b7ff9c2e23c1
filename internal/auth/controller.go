package auth

import (
	"fmt"
	"net/http"

	"alumni-connect-api/internal/apperr"
	"alumni-connect-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService AuthServicePort
	Profiles    ProfileLookup
	LS          LogServicePort
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, "Registration", apperr.FromBind(err, msgMissingFields))
		return
	}

	user, err := ac.AuthService.Register(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, "Registration", err)
		return
	}

	uid := uint(user.ID)
	ac.audit(c, logs.SystemLog{
		Service: "auth",
		Action:  logs.ActionRegister,
		Message: fmt.Sprintf("Account created with email %s", user.Email),
		UserID:  &uid,
	}, user)

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, "Login", apperr.FromBind(err, msgMissingCredentials))
		return
	}

	res, err := ac.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status := apperr.StatusOf(err)
		if apperr.Is(err, apperr.KindNotFound) {
			status = http.StatusBadRequest
		}
		apperr.Write(c, status, "Login", err)
		return
	}

	uid := uint(res.User.ID)
	ac.audit(c, logs.SystemLog{
		Service: "auth",
		Action:  logs.ActionLogin,
		Message: fmt.Sprintf("User logged in with email: %s", res.User.Email),
		UserID:  &uid,
	}, gin.H{"email": res.User.Email})

	c.JSON(http.StatusOK, res)
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetInt("userID")
	if userID <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	user, err := ac.Profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		apperr.Respond(c, "Profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) audit(c *gin.Context, entry logs.SystemLog, payload any) {
	if ac.LS == nil {
		return
	}
	if err := ac.LS.Log(c.Request.Context(), entry, payload); err != nil {
		apperr.Logger(c).WithError(err).Warn("Failed to insert log")
	}
}
