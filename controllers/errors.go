// File: /controllers/errors.go
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"comments-api/services"
	"comments-api/utils"

	"github.com/gin-gonic/gin"
)

// respondError writes the status matching a service error kind. Internal
// failures are logged with their cause and answered with the generic message.
func respondError(c *gin.Context, err error) {
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) {
		slog.Error("unexpected error", "error", err, "path", c.Request.URL.Path)
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch {
	case errors.Is(err, services.ErrValidation):
		utils.SendValidationError(c, svcErr.Message)
	case errors.Is(err, services.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, svcErr.Message)
	case errors.Is(err, services.ErrForbidden):
		utils.SendError(c, http.StatusForbidden, svcErr.Message)
	case errors.Is(err, services.ErrConflict):
		utils.SendError(c, http.StatusConflict, svcErr.Message)
	case errors.Is(err, services.ErrUnauthorized):
		utils.SendError(c, http.StatusUnauthorized, svcErr.Message)
	default:
		slog.Error(svcErr.Message, "error", svcErr.Cause(), "path", c.Request.URL.Path)
		utils.SendError(c, http.StatusInternalServerError, svcErr.Message)
	}
}
