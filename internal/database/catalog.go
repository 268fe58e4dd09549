package database

import (
	"strings"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"
)

// ListProducts returns the whole catalog ordered by name, case-insensitively.
func (s *Store) ListProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := []models.Product{}
	err := s.db.Order("name COLLATE NOCASE ASC").Find(&products).Error
	if err != nil {
		return nil, apperr.Storage("list products", err)
	}
	return products, nil
}

// AddProduct validates and stores a new catalog entry. Names are unique
// case-insensitively; the unit defaults to "item".
func (s *Store) AddProduct(name string, price float64, unit string) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("product name is required")
	}
	if price <= 0 {
		return nil, apperr.Validation("product price must be greater than zero")
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = "item"
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	err := s.db.Model(&models.Product{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		return nil, apperr.Storage("check duplicate product name", err)
	}
	if count > 0 {
		return nil, apperr.Validation("a product named %q already exists", name)
	}

	product := models.Product{Name: name, Price: round2(price), Unit: unit}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, apperr.Storage("add product", err)
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry. Past sales are untouched: sale
// lines hold a text snapshot, not a reference to the product row.
func (s *Store) DeleteProduct(id uint) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := s.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return apperr.Storage("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("product %d not found", id)
	}
	return nil
}
