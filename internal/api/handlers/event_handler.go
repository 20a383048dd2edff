package handlers

import (
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/api/middleware"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.EventCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	events, err := h.eventService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input models.EventUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), userID, eventID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), userID, eventID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
