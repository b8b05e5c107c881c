package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "pocketpay.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error converts err to its HTTP representation. Anything that is not an
// AppError surfaces as a generic 500 so internal detail never reaches the
// client.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	msg := appErr.Message
	if appErr.Code == http.StatusInternalServerError {
		msg = "internal server error"
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": msg,
		"error":   msg,
	})
}
