package profile

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, profileService ProfileServicePort) {
	profileController := &ProfileController{ProfileService: profileService}

	r.GET("/profile/:id", profileController.GetProfile)
}
