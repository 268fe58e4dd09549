package handlers

import (
	"net/http"
	"strconv"

	"resto-pos/internal/receipt"

	"github.com/gin-gonic/gin"
)

type receiptLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"` // extended line value, not unit price
}

type receiptRequest struct {
	Lines         []receiptLine `json:"lines"`
	Total         float64       `json:"total"`
	Currency      string        `json:"currency"`
	ReceiptNumber string        `json:"receipt_number"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Footer        *string       `json:"footer"`
	LinesPerPage  int           `json:"lines_per_page"`
}

// RenderReceipt renders a receipt document from a fully-resolved sale shape.
// It serves both pre-commit previews and re-prints; header fields come from
// the stored settings.
func (h *Handler) RenderReceipt(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	settings, err := h.store.GetSettings()
	if err != nil {
		h.respondError(c, err)
		return
	}

	r := receipt.Receipt{
		RestaurantName: settings.RestaurantName,
		Address:        settings.Address,
		Phone:          settings.Phone,
		ReceiptNumber:  req.ReceiptNumber,
		Date:           req.Date,
		Time:           req.Time,
		Currency:       req.Currency,
		Total:          req.Total,
		Footer:         settings.ReceiptFooter,
		LinesPerPage:   req.LinesPerPage,
	}
	if r.Currency == "" {
		r.Currency = settings.Currency
	}
	if req.Footer != nil {
		r.Footer = *req.Footer
	}
	for _, l := range req.Lines {
		r.Lines = append(r.Lines, receipt.Line{
			Name:     l.Name,
			Quantity: l.Quantity,
			Unit:     l.Unit,
			Amount:   l.Price,
		})
	}

	doc := receipt.Render(r)
	c.JSON(http.StatusOK, gin.H{"pages": doc.Pages, "document": doc.String()})
}

// GetTransactionReceipt re-renders the receipt of a recorded sale.
func (h *Handler) GetTransactionReceipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	sale, err := h.store.GetTransaction(uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}
	settings, err := h.store.GetSettings()
	if err != nil {
		h.respondError(c, err)
		return
	}

	r := receipt.Receipt{
		RestaurantName: settings.RestaurantName,
		Address:        settings.Address,
		Phone:          settings.Phone,
		ReceiptNumber:  strconv.FormatUint(uint64(sale.ID), 10),
		Date:           sale.Date,
		Time:           sale.Time,
		Currency:       sale.Currency,
		Total:          sale.TotalAmount,
		Footer:         settings.ReceiptFooter,
	}
	for _, it := range sale.Items {
		r.Lines = append(r.Lines, receipt.Line{
			Name:     it.ProductName,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Amount:   it.Subtotal,
		})
	}

	doc := receipt.Render(r)
	c.JSON(http.StatusOK, gin.H{"pages": doc.Pages, "document": doc.String()})
}

// GetReceiptQR returns a PNG QR code for a receipt number.
func (h *Handler) GetReceiptQR(c *gin.Context) {
	png, err := receipt.QRCode(c.Param("number"), 0)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
