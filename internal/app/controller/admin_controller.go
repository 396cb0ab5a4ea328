package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/internal/middleware"
)

// AdminController serves the read-only administration summary.
type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Index renders record counts per kind
// GET /admin/
func (ctrl *AdminController) Index(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	summary, err := ctrl.adminService.GetSummary()
	if err != nil {
		log.Error("Failed to compute admin summary", err)
		apperrors.InternalError(c, "")
		return
	}

	render(c, http.StatusOK, "admin_index.html", "Administration", gin.H{
		"summary": summary,
	})
}
