package profile

import (
	"context"
	"net/http"
	"strconv"

	"alumni-connect-api/internal/apperr"
	"alumni-connect-api/internal/auth"

	"github.com/gin-gonic/gin"
)

type ProfileServicePort interface {
	GetProfile(ctx context.Context, id int) (*auth.ProfileSummary, error)
}

type ProfileController struct {
	ProfileService ProfileServicePort
}

// GET /profile/:id
func (pc *ProfileController) GetProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apperr.Respond(c, "Profile", apperr.NotFound(msgProfileNotFound))
		return
	}

	profile, err := pc.ProfileService.GetProfile(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, "Profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
