package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type supportRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendSupport relays a support request to the configured SMTP recipient.
func (h *Handler) SendSupport(c *gin.Context) {
	var req supportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.mailer.SendSupport(req.Name, req.Email, req.Subject, req.Message); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Support request sent"})
}
