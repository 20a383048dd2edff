package handlers

import (
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

// RSVPHandler публичные эндпоинты для ответа гостя по коду из письма,
// без авторизации
type RSVPHandler struct {
	guestService service.GuestService
}

func NewRSVPHandler(guestService service.GuestService) *RSVPHandler {
	return &RSVPHandler{guestService: guestService}
}

// Get данные гостя по коду, фронт показывает форму ответа
func (h *RSVPHandler) Get(c *gin.Context) {
	code := c.Param("code")

	guest, err := h.guestService.GetByRSVPCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invitation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guest_name":  guest.Name,
		"rsvp_status": guest.RSVPStatus,
		"plus_ones":   guest.PlusOnes,
	})
}

func (h *RSVPHandler) Submit(c *gin.Context) {
	code := c.Param("code")

	var input models.RSVPSubmit
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.guestService.SubmitRSVP(c.Request.Context(), code, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guest_name":  guest.Name,
		"rsvp_status": guest.RSVPStatus,
	})
}
