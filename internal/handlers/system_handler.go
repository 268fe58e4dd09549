package handlers

import (
	"net/http"

	"resto-pos/internal/utils"

	"github.com/gin-gonic/gin"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// GetSystemStatus feeds the About screen the install identity and version.
func (h *Handler) GetSystemStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"device_id":      utils.GetDeviceID(),
		"version":        Version,
		"mail_available": h.mailer.Configured(),
	})
}
