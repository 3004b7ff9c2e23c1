// Package server assembles the HTTP surface from the domain services.
package server

import (
	"net/http"

	"alumni-connect-api/internal/auth"
	"alumni-connect-api/internal/community"
	"alumni-connect-api/internal/middlewares"
	"alumni-connect-api/internal/profile"
	"alumni-connect-api/internal/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const healthMessage = "Alumni Connect Backend is running!"

type Deps struct {
	Log           *logrus.Logger
	AllowedOrigin string

	Auth        auth.AuthServicePort
	Profiles    profile.ProfileServicePort
	Communities community.CommunityServicePort
	Logs        auth.LogServicePort
	Verifier    token.Verifier
}

func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{d.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, healthMessage)
	})

	auth.RegisterRoutes(r, d.Auth, d.Profiles, d.Logs, d.Verifier)
	profile.RegisterRoutes(r, d.Profiles)
	community.RegisterRoutes(r, d.Communities, d.Logs)

	return r
}
