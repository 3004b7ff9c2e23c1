package community

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, communityService CommunityServicePort, logService LogServicePort) {
	communityController := &CommunityController{CommunityService: communityService, LS: logService}

	communityGroup := r.Group("/communities")
	{
		communityGroup.GET("", communityController.ListCommunities)
		communityGroup.POST("", communityController.CreateCommunity)
	}
}
