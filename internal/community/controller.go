package community

import (
	"context"
	"fmt"
	"net/http"

	"alumni-connect-api/internal/apperr"
	"alumni-connect-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type CommunityServicePort interface {
	ListCommunities(ctx context.Context) ([]Community, error)
	CreateCommunity(ctx context.Context, name, description string) (*Community, error)
}

type LogServicePort interface {
	Log(ctx context.Context, entry logs.SystemLog, payload any) error
}

var _ CommunityServicePort = (*CommunityService)(nil)

type CommunityController struct {
	CommunityService CommunityServicePort
	LS               LogServicePort
}

// GET /communities
func (cc *CommunityController) ListCommunities(c *gin.Context) {
	communities, err := cc.CommunityService.ListCommunities(c.Request.Context())
	if err != nil {
		apperr.Respond(c, "Community", err)
		return
	}

	c.JSON(http.StatusOK, communities)
}

// POST /communities
func (cc *CommunityController) CreateCommunity(c *gin.Context) {
	var req CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, "Community", apperr.FromBind(err, msgNameRequired))
		return
	}

	community, err := cc.CommunityService.CreateCommunity(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		apperr.Respond(c, "Community", err)
		return
	}

	if cc.LS != nil {
		entry := logs.SystemLog{
			Service: "community",
			Action:  logs.ActionCreateCommunity,
			Message: fmt.Sprintf("Community %q created", community.Name),
		}
		if err := cc.LS.Log(c.Request.Context(), entry, community); err != nil {
			apperr.Logger(c).WithError(err).Warn("Failed to insert log")
		}
	}

	c.JSON(http.StatusOK, community)
}
