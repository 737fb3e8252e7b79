package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"macromate/internal/models"
)

// Version is reported by the health endpoint.
const Version = "2.0.0"

// HealthHandler reports service status and chatbot statistics.
type HealthHandler struct {
	resolver QueryResolver
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(resolver QueryResolver) *HealthHandler {
	return &HealthHandler{resolver: resolver}
}

// Health returns service status.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	resp := models.HealthResponse{
		Status:           "healthy",
		Timestamp:        time.Now(),
		Version:          Version,
		ChatbotAvailable: h.resolver != nil,
	}
	if h.resolver != nil {
		stats := h.resolver.Statistics()
		resp.ChatbotStats = &stats
	}
	// Unwrapped: monitoring reads status at the top level.
	return c.JSON(resp)
}
