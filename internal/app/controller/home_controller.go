package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/internal/middleware"
)

// HomeController serves the homepage and the site-wide error pages.
type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index renders the homepage
// GET /
func (ctrl *HomeController) Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", "Home", gin.H{})
}

// SentryDebug fails on purpose so error monitoring can be checked end to end.
// GET /sentry-debug/
func (ctrl *HomeController) SentryDebug(c *gin.Context) {
	divisor := 0
	c.String(http.StatusOK, "%d", 1/divisor)
}

// NotFound renders the 404 page for unknown routes.
func (ctrl *HomeController) NotFound(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	log.Warn("No route matched", nil)

	apperrors.NotFound(c, "")
}

// Recover renders the 500 page after a handler panics.
func (ctrl *HomeController) Recover(c *gin.Context, recovered any) {
	log := middleware.GetLoggerFromContext(c)
	log.Error("Recovered from panic", fmt.Errorf("%v", recovered), map[string]interface{}{
		"path": c.Request.URL.Path,
	})

	apperrors.InternalError(c, "")
	c.Abort()
}
