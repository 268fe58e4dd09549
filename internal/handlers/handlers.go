// Package handlers exposes the core operations to the UI collaborator over
// HTTP. Handlers stay thin: parse input, call the store, map errors.
package handlers

import (
	"errors"
	"log/slog"
	"time"

	"resto-pos/internal/apperr"
	"resto-pos/internal/auth"
	"resto-pos/internal/database"
	"resto-pos/internal/mail"
	"resto-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store  *database.Store
	tokens *auth.Manager
	mailer *mail.Mailer
	logger *slog.Logger

	adminUser string
	adminHash []byte
}

func New(store *database.Store, tokens *auth.Manager, mailer *mail.Mailer, logger *slog.Logger, adminUser string, adminHash []byte) *Handler {
	return &Handler{
		store:     store,
		tokens:    tokens,
		mailer:    mailer,
		logger:    logger,
		adminUser: adminUser,
		adminHash: adminHash,
	}
}

// respondError maps the error taxonomy to HTTP without leaking storage
// internals: the client sees the kind and message, the cause goes to the log.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := apperr.StatusCode(err)
	kind := apperr.KindOf(err)

	message := "something went wrong"
	var e *apperr.Error
	if errors.As(err, &e) && kind != apperr.KindStorage {
		message = e.Message
	}

	if status >= 500 {
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	} else {
		h.logger.Warn("request rejected", "path", c.FullPath(), "error", err)
	}

	c.JSON(status, gin.H{"error": message, "kind": kind})
}

// parseDateRange reads optional from/to query params as calendar dates.
func parseDateRange(c *gin.Context) (models.DateRange, error) {
	var r models.DateRange
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return r, apperr.Validation("from must be YYYY-MM-DD, got %q", from)
		}
		r.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return r, apperr.Validation("to must be YYYY-MM-DD, got %q", to)
		}
		r.To = t
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, apperr.Validation("to must not be before from")
	}
	return r, nil
}
