package database

import (
	"math"
	"strings"
	"time"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"
)

// RecordSale validates the submitted lines, recomputes every subtotal and
// the sale total server-side, and commits the sale header plus all lines as
// one transaction. A client-supplied total is never trusted. The returned id
// doubles as the default receipt number.
func (s *Store) RecordSale(lines []models.SaleLineInput, currency string) (uint, error) {
	if len(lines) == 0 {
		return 0, apperr.Validation("empty sale")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !currencyPattern.MatchString(currency) {
		return 0, apperr.Validation("currency must be a 3-letter code, got %q", currency)
	}

	items := make([]models.SaleLine, 0, len(lines))
	var total float64
	for i, in := range lines {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return 0, apperr.Validation("line %d: product name is required", i+1)
		}
		if in.Quantity <= 0 {
			return 0, apperr.Validation("line %d: quantity must be positive", i+1)
		}
		if !onHalfStep(in.Quantity) {
			return 0, apperr.Validation("line %d: quantity must be a multiple of 0.5", i+1)
		}
		if in.UnitPrice < 0 {
			return 0, apperr.Validation("line %d: unit price cannot be negative", i+1)
		}
		unit := strings.TrimSpace(in.Unit)
		if unit == "" {
			unit = "item"
		}

		subtotal := round2(in.UnitPrice * in.Quantity)
		total = round2(total + subtotal)
		items = append(items, models.SaleLine{
			ProductName: name,
			UnitPrice:   in.UnitPrice,
			Quantity:    in.Quantity,
			Unit:        unit,
			Subtotal:    subtotal,
		})
	}

	now := time.Now()
	sale := models.Sale{
		TotalAmount: total,
		Currency:    currency,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04:05"),
		CreatedAt:   now,
		Items:       items,
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := s.db.Begin()
	if tx.Error != nil {
		return 0, apperr.Storage("begin sale transaction", tx.Error)
	}
	// Create inserts the header and all association rows; any failure rolls
	// the whole sale back so no orphan lines can remain.
	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		return 0, apperr.Storage("record sale", err)
	}

	// The ledger invariant: the persisted header total must equal the sum of
	// the persisted line subtotals. Re-summing the rows inside the transaction
	// catches anything mangled between computation and insert; a mismatch
	// aborts the commit, it is never corrected silently.
	var persisted float64
	err := tx.Model(&models.SaleLine{}).
		Where("sale_id = ?", sale.ID).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&persisted).Error
	if err != nil {
		tx.Rollback()
		return 0, apperr.Storage("verify sale integrity", err)
	}
	if math.Abs(persisted-sale.TotalAmount) > 0.01 {
		tx.Rollback()
		return 0, apperr.Integrity("sale total %.2f does not match line subtotals %.2f", sale.TotalAmount, persisted)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return 0, apperr.Storage("commit sale", err)
	}
	return sale.ID, nil
}

// GetTransactions returns sales with their lines, newest first, optionally
// bounded to a calendar-date range (inclusive on both ends).
func (s *Store) GetTransactions(r models.DateRange) ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := []models.Sale{}
	q := s.db.Preload("Items").Order("id DESC")
	if !r.From.IsZero() {
		q = q.Where("date >= ?", r.From.Format("2006-01-02"))
	}
	if !r.To.IsZero() {
		q = q.Where("date <= ?", r.To.Format("2006-01-02"))
	}
	if err := q.Find(&sales).Error; err != nil {
		return nil, apperr.Storage("list transactions", err)
	}
	return sales, nil
}

// GetTransaction loads one sale with its lines.
func (s *Store) GetTransaction(id uint) (*models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sale models.Sale
	err := s.db.Preload("Items").First(&sale, id).Error
	if err != nil {
		return nil, wrap("get transaction", "transaction not found", err)
	}
	return &sale, nil
}

// DeleteTransaction removes a sale and its lines in one transaction.
func (s *Store) DeleteTransaction(id uint) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := s.db.Begin()
	if tx.Error != nil {
		return apperr.Storage("begin delete transaction", tx.Error)
	}
	if err := tx.Where("sale_id = ?", id).Delete(&models.SaleLine{}).Error; err != nil {
		tx.Rollback()
		return apperr.Storage("delete sale lines", err)
	}
	res := tx.Delete(&models.Sale{}, id)
	if res.Error != nil {
		tx.Rollback()
		return apperr.Storage("delete transaction", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return apperr.NotFound("transaction %d not found", id)
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return apperr.Storage("commit delete transaction", err)
	}
	return nil
}

// onHalfStep reports whether q sits on the 0.5 quantity grid that covers
// both whole-unit and divisible-unit products.
func onHalfStep(q float64) bool {
	scaled := q * 2
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}
