package database

import (
	"regexp"
	"strings"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
	clockPattern    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// GetSettings returns the singleton settings record seeded at first startup.
func (s *Store) GetSettings() (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var settings models.Settings
	err := s.db.First(&settings, settingsID).Error
	if err != nil {
		return nil, wrap("get settings", "settings record not found", err)
	}
	return &settings, nil
}

// SaveSettings validates and upserts the whole settings record. Partial
// updates are not supported; the caller always submits the full record.
func (s *Store) SaveSettings(settings models.Settings) error {
	settings.Currency = strings.ToUpper(strings.TrimSpace(settings.Currency))
	if settings.Currency == "" {
		settings.Currency = "PKR"
	}
	if !currencyPattern.MatchString(settings.Currency) {
		return apperr.Validation("currency must be a 3-letter code, got %q", settings.Currency)
	}
	if settings.TaxRate != nil && (*settings.TaxRate < 0 || *settings.TaxRate > 100) {
		return apperr.Validation("tax rate must be between 0 and 100")
	}
	if settings.OpeningTime != "" && !clockPattern.MatchString(settings.OpeningTime) {
		return apperr.Validation("opening time must be HH:MM, got %q", settings.OpeningTime)
	}
	if settings.ClosingTime != "" && !clockPattern.MatchString(settings.ClosingTime) {
		return apperr.Validation("closing time must be HH:MM, got %q", settings.ClosingTime)
	}
	if settings.OpeningTime != "" && settings.ClosingTime != "" &&
		settings.OpeningTime >= settings.ClosingTime {
		return apperr.Validation("opening time must be before closing time")
	}

	settings.ID = settingsID

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.db.Save(&settings).Error; err != nil {
		return apperr.Storage("save settings", err)
	}
	return nil
}
