package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/internal/middleware"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// Index lists every profile
// GET /profiles/
func (ctrl *ProfileController) Index(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	profiles, err := ctrl.profileService.ListProfiles()
	if err != nil {
		log.Error("Failed to fetch profiles", err)
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Profiles fetched successfully", map[string]interface{}{
		"count": len(profiles),
	})

	render(c, http.StatusOK, "profiles_index.html", "Profiles", gin.H{
		"profiles_list": profiles,
	})
}

// Show renders the profile of one account
// GET /profiles/:username/
func (ctrl *ProfileController) Show(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	username := c.Param("username")

	profile, err := ctrl.profileService.GetProfile(username)
	if err != nil {
		respondWithLookupError(c, log, err, "profile")
		return
	}

	render(c, http.StatusOK, "profile.html", profile.User.Username, gin.H{
		"profile": profile,
	})
}
