package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses.
// Unclassified errors are logged and answered with fallbackMsg so internals do not leak.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
