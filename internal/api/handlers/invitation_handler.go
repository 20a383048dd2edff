package handlers

import (
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/api/middleware"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	invitationService service.InvitationService
}

func NewInvitationHandler(invitationService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

func (h *InvitationHandler) Send(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input models.InvitationSend
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.invitationService.Send(c.Request.Context(), userID, eventID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inv)
}

func (h *InvitationHandler) SendBulk(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input models.InvitationBulkSend
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.invitationService.SendBulk(c.Request.Context(), userID, eventID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *InvitationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	invitations, err := h.invitationService.GetByEventID(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}
