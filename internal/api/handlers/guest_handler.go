package handlers

import (
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/api/middleware"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestService  service.GuestService
	importService service.GuestImportService
}

func NewGuestHandler(guestService service.GuestService, importService service.GuestImportService) *GuestHandler {
	return &GuestHandler{
		guestService:  guestService,
		importService: importService,
	}
}

func (h *GuestHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input models.GuestCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.guestService.Create(c.Request.Context(), userID, eventID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, guest)
}

func (h *GuestHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	guests, err := h.guestService.GetByEventID(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, guests)
}

func (h *GuestHandler) GetByID(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	guestID, ok := parseUUIDParam(c, "guestId")
	if !ok {
		return
	}

	guest, err := h.guestService.GetByID(c.Request.Context(), userID, eventID, guestID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, guest)
}

func (h *GuestHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	guestID, ok := parseUUIDParam(c, "guestId")
	if !ok {
		return
	}

	var input models.GuestUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.guestService.Update(c.Request.Context(), userID, eventID, guestID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, guest)
}

func (h *GuestHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	guestID, ok := parseUUIDParam(c, "guestId")
	if !ok {
		return
	}

	if err := h.guestService.Delete(c.Request.Context(), userID, eventID, guestID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "guest deleted"})
}

func (h *GuestHandler) CreateFamilyGroup(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input models.FamilyGroupCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.guestService.CreateFamilyGroup(c.Request.Context(), userID, eventID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

func (h *GuestHandler) ListFamilyGroups(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	groups, err := h.guestService.GetFamilyGroups(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *GuestHandler) DeleteFamilyGroup(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "groupId")
	if !ok {
		return
	}

	if err := h.guestService.DeleteFamilyGroup(c.Request.Context(), userID, eventID, groupID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "family group deleted"})
}

func (h *GuestHandler) GetStats(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.guestService.GetStats(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *GuestHandler) GetCostProjection(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	projection, err := h.guestService.GetCostProjection(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}

func (h *GuestHandler) GetAlerts(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	alerts, err := h.guestService.GetAlerts(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// ImportCSV multipart-загрузка csv со списком гостей
func (h *GuestHandler) ImportCSV(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportCSV(c.Request.Context(), userID, eventID, fileHeader.Filename, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GuestHandler) ImportHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	history, err := h.importService.GetHistory(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
