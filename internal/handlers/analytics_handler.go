package handlers

import (
	"net/http"

	"resto-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// GetAnalytics returns the computed analytics view plus the derived revenue
// growth rate for the report screen.
func (h *Handler) GetAnalytics(c *gin.Context) {
	r, err := parseDateRange(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	analytics, err := h.store.GetAnalytics(r)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_revenue":        analytics.DailyRevenue,
		"top_products":         analytics.TopProducts,
		"product_distribution": analytics.ProductDistribution,
		"summary":              analytics.Summary,
		"growth_rate":          models.GrowthRate(analytics.DailyRevenue),
	})
}
