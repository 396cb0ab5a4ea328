package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/internal/middleware"
)

type LettingController struct {
	lettingService service.LettingService
}

func NewLettingController(lettingService service.LettingService) *LettingController {
	return &LettingController{
		lettingService: lettingService,
	}
}

// Index lists every letting
// GET /lettings/
func (ctrl *LettingController) Index(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	lettings, err := ctrl.lettingService.ListLettings()
	if err != nil {
		log.Error("Failed to fetch lettings", err)
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Lettings fetched successfully", map[string]interface{}{
		"count": len(lettings),
	})

	render(c, http.StatusOK, "lettings_index.html", "Lettings", gin.H{
		"lettings_list": lettings,
	})
}

// Show renders a single letting
// GET /lettings/:id/
func (ctrl *LettingController) Show(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		log.Warn("Invalid letting ID", map[string]interface{}{
			"id": c.Param("id"),
		})
		apperrors.NotFound(c, "Letting not found")
		return
	}

	letting, err := ctrl.lettingService.GetLetting(uint(id))
	if err != nil {
		respondWithLookupError(c, log, err, "letting")
		return
	}

	log.Info("Letting fetched successfully", map[string]interface{}{
		"letting_id": letting.ID,
	})

	render(c, http.StatusOK, "letting.html", letting.Title, gin.H{
		"title":   letting.Title,
		"address": letting.Address,
	})
}
