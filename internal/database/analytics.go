package database

import (
	"time"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"

	"gorm.io/gorm"
)

// topProductLimit bounds the best-sellers list; the distribution view stays
// untruncated.
const topProductLimit = 5

// GetAnalytics computes the full analytics view from the recorded sales.
// When a range is supplied it bounds every bucket identically; without one
// the daily series covers the last 7 calendar days and the remaining views
// are all-time.
func (s *Store) GetAnalytics(r models.DateRange) (*models.Analytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	daily := r
	if r.IsZero() {
		daily = models.DateRange{From: time.Now().AddDate(0, 0, -6)}
	}

	a := &models.Analytics{
		DailyRevenue:        []models.DailyRevenue{},
		TopProducts:         []models.TopProduct{},
		ProductDistribution: []models.ProductShare{},
	}

	err := s.salesInRange(daily).
		Select("date, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS orders").
		Group("date").
		Order("date ASC").
		Scan(&a.DailyRevenue).Error
	if err != nil {
		return nil, apperr.Storage("aggregate daily revenue", err)
	}

	err = s.linesInRange(r).
		Select("product_name AS name, SUM(quantity) AS sales, COALESCE(SUM(subtotal), 0) AS revenue").
		Group("product_name").
		Order("sales DESC").
		Limit(topProductLimit).
		Scan(&a.TopProducts).Error
	if err != nil {
		return nil, apperr.Storage("aggregate top products", err)
	}

	err = s.linesInRange(r).
		Select("product_name AS name, SUM(quantity) AS value").
		Group("product_name").
		Order("value DESC").
		Scan(&a.ProductDistribution).Error
	if err != nil {
		return nil, apperr.Storage("aggregate product distribution", err)
	}

	var summary struct {
		TotalOrders  int64
		TotalRevenue float64
	}
	err = s.salesInRange(r).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&summary).Error
	if err != nil {
		return nil, apperr.Storage("aggregate sales summary", err)
	}

	a.Summary = models.AnalyticsSummary{
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: summary.TotalRevenue,
	}
	// Zero sales must yield 0, never NaN.
	if summary.TotalOrders > 0 {
		a.Summary.AverageOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}

	return a, nil
}

func (s *Store) salesInRange(r models.DateRange) *gorm.DB {
	q := s.db.Model(&models.Sale{})
	if !r.From.IsZero() {
		q = q.Where("date >= ?", r.From.Format("2006-01-02"))
	}
	if !r.To.IsZero() {
		q = q.Where("date <= ?", r.To.Format("2006-01-02"))
	}
	return q
}

func (s *Store) linesInRange(r models.DateRange) *gorm.DB {
	q := s.db.Table("sale_lines")
	if r.IsZero() {
		return q
	}
	q = q.Joins("JOIN sales ON sales.id = sale_lines.sale_id")
	if !r.From.IsZero() {
		q = q.Where("sales.date >= ?", r.From.Format("2006-01-02"))
	}
	if !r.To.IsZero() {
		q = q.Where("sales.date <= ?", r.To.Format("2006-01-02"))
	}
	return q
}
