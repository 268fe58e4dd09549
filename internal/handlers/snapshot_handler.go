package handlers

import (
	"encoding/base64"
	"net/http"

	"resto-pos/internal/metrics"

	"github.com/gin-gonic/gin"
)

// ExportSnapshot returns the whole store as a base64 blob so backups travel
// safely inside JSON.
func (h *Handler) ExportSnapshot(c *gin.Context) {
	data, err := h.store.ExportSnapshot()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": base64.StdEncoding.EncodeToString(data),
		"size": len(data),
	})
}

type importRequest struct {
	Data string `json:"data"`
}

// ImportSnapshot restores the store from an exported blob. The store itself
// guarantees backup-before-overwrite and rollback-on-failure.
func (h *Handler) ImportSnapshot(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Snapshot data is not valid base64"})
		return
	}

	if err := h.store.ImportSnapshot(data); err != nil {
		metrics.SnapshotImports.WithLabelValues("failure").Inc()
		h.respondError(c, err)
		return
	}

	metrics.SnapshotImports.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot imported successfully"})
}
