package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/app"
	"spendtrack/internal/transport/http/middleware"
	"spendtrack/internal/transport/http/response"
)

type ExpenseHandler struct {
	expenseService *app.ExpenseService
}

type createExpenseRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Note     string  `json:"note"`
}

func NewExpenseHandler(expenseService *app.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenses, err := h.expenseService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "List expenses failed")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Amount, category, and date are required")
		return
	}

	id, err := h.expenseService.Create(app.CreateExpenseInput{
		UserID:   userID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Note:     req.Note,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "Amount, category, and date are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Create expense failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense created",
		"id":      id,
	})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid expense id")
		return
	}

	if err := h.expenseService.Delete(userID, uint(id)); err != nil {
		response.Error(c, http.StatusInternalServerError, "Delete expense failed")
		return
	}
	response.Message(c, http.StatusOK, "Expense deleted")
}
