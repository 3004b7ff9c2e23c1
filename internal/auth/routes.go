package auth

import (
	"alumni-connect-api/internal/middlewares"
	"alumni-connect-api/internal/token"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, authService AuthServicePort, profiles ProfileLookup, logService LogServicePort, verifier token.Verifier) {
	authController := &AuthController{AuthService: authService, Profiles: profiles, LS: logService}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/me", middlewares.RequireBearer(verifier), authController.Me)
	}
}
