package handlers

import (
	"errors"
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseUUIDParam uuid из path-параметра, при ошибке сам пишет 400
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError маппинг ошибок сервисов на http-статусы
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrGuestNotFound),
		errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrEntryNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrVendorNotFound),
		errors.Is(err, service.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRSVP),
		errors.Is(err, service.ErrInvalidRSVPCode),
		errors.Is(err, service.ErrGuestNoEmail),
		errors.Is(err, service.ErrEmptyImportFile),
		errors.Is(err, service.ErrBadImportHeader):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
