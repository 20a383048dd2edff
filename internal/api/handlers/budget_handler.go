package handlers

import (
	"net/http"

	"github.com/alligatorO15/wed-planner/internal/api/middleware"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	budgetService service.BudgetService
}

func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func (h *BudgetHandler) CreateEntry(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input models.BudgetEntryCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.budgetService.CreateEntry(c.Request.Context(), userID, eventID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *BudgetHandler) ListEntries(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	//?category=catering для детализации одной категории из отчета
	entries, err := h.budgetService.GetEntries(c.Request.Context(), userID, eventID, c.Query("category"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *BudgetHandler) UpdateEntry(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := parseUUIDParam(c, "entryId")
	if !ok {
		return
	}

	var input models.BudgetEntryUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.budgetService.UpdateEntry(c.Request.Context(), userID, eventID, entryID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// RecordPayment платеж по записи, увеличивает paid
func (h *BudgetHandler) RecordPayment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := parseUUIDParam(c, "entryId")
	if !ok {
		return
	}

	var input models.PaymentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.budgetService.RecordPayment(c.Request.Context(), userID, eventID, entryID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *BudgetHandler) DeleteEntry(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := parseUUIDParam(c, "entryId")
	if !ok {
		return
	}

	if err := h.budgetService.DeleteEntry(c.Request.Context(), userID, eventID, entryID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "budget entry deleted"})
}

// GetReport сводка бюджета: категории, здоровье, топ расходов, алерты
func (h *BudgetHandler) GetReport(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.budgetService.GetReport(c.Request.Context(), userID, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
