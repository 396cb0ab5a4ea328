package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
)

// render writes data as the named page, or as JSON when the client asks for
// it. pageTitle only reaches the HTML form.
func render(c *gin.Context, status int, name, pageTitle string, data gin.H) {
	htmlData := gin.H{"page_title": pageTitle}
	for k, v := range data {
		htmlData[k] = v
	}

	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: name,
		HTMLData: htmlData,
		JSONData: data,
	})
}

// respondWithLookupError renders the 404 page for a missed lookup and the
// 500 page for anything else.
func respondWithLookupError(c *gin.Context, log *logger.Logger, err error, kind string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		log.Warn("Record not found", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
	} else {
		log.Error("Failed to fetch record", err, map[string]interface{}{
			"kind": kind,
		})
	}
	apperrors.RespondWithParsedError(c, err, kind)
}
