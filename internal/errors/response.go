package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ErrorResponse is the JSON body of every error page.
type ErrorResponse struct {
	Error   string `json:"error"`   // code from codes.go
	Message string `json:"message"` // user-facing message
}

// Templates rendered for error statuses.
const (
	NotFoundTemplate    = "404.html"
	ServerErrorTemplate = "500.html"
)

// RespondWithError renders the error page for statusCode, or its JSON form
// when the client asks for application/json.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	body := ErrorResponse{
		Error:   errorCode,
		Message: message,
	}

	template := ServerErrorTemplate
	if statusCode == http.StatusNotFound {
		template = NotFoundTemplate
	}

	c.Negotiate(statusCode, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: template,
		HTMLData: gin.H{"error": body.Error, "message": body.Message},
		JSONData: body,
	})
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "The requested page was not found"
	}
	RespondWithError(c, http.StatusNotFound, ResourceNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// RespondWithParsedError picks the status from the parsed code.
func RespondWithParsedError(c *gin.Context, err error, context string) {
	info := ParseError(err, context)
	status := http.StatusInternalServerError
	switch info.Code {
	case ResourceNotFound:
		status = http.StatusNotFound
	case ValidationInvalidInput, ValidationRequired:
		status = http.StatusBadRequest
	case ResourceAlreadyExists, ResourceConflict:
		status = http.StatusConflict
	}
	RespondWithError(c, status, info.Code, info.Message)
}
