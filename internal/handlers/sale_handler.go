package handlers

import (
	"net/http"
	"strconv"

	"resto-pos/internal/metrics"
	"resto-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type saleRequest struct {
	Lines    []models.SaleLineInput `json:"lines"`
	Currency string                 `json:"currency"`
}

// ProcessSale commits a checkout. The total is recomputed server-side; the
// response carries the assigned sale id, which is also the receipt number.
func (h *Handler) ProcessSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	saleID, err := h.store.RecordSale(req.Lines, req.Currency)
	if err != nil {
		h.respondError(c, err)
		return
	}

	metrics.SalesRecorded.Inc()
	sale, err := h.store.GetTransaction(saleID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sale_id": saleID,
		"total":   sale.TotalAmount,
		"date":    sale.Date,
		"time":    sale.Time,
	})
}

// GetTransactions lists sales with their lines, optionally bounded by
// from/to calendar dates.
func (h *Handler) GetTransactions(c *gin.Context) {
	r, err := parseDateRange(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sales, err := h.store.GetTransactions(r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	if err := h.store.DeleteTransaction(uint(id)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
