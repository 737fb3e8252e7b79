package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"macromate/internal/metrics"
	"macromate/internal/models"
	"macromate/internal/validation"
)

// QueryResolver answers chatbot queries.
type QueryResolver interface {
	Resolve(ctx context.Context, query string) models.ResolutionResult
	Statistics() models.ResolverStatistics
}

// ChatbotHandler serves the FAQ chatbot.
type ChatbotHandler struct {
	resolver QueryResolver
}

// NewChatbotHandler creates a chatbot handler. A nil resolver makes the
// endpoint answer 503.
func NewChatbotHandler(resolver QueryResolver) *ChatbotHandler {
	return &ChatbotHandler{resolver: resolver}
}

// Chat resolves a query.
func (h *ChatbotHandler) Chat(c fiber.Ctx) error {
	if h.resolver == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "Chatbot is not initialized. Please check server logs.")
	}

	var body models.ChatbotRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateQuery(body.Query); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	query := strings.TrimSpace(body.Query)
	res := h.resolver.Resolve(c.Context(), query)
	metrics.RecordQueryLookup(metrics.LookupLabel(res))

	return jsonSuccess(c, models.ChatbotResponse{
		Query:        query,
		Response:     res.Text,
		Type:         res.Kind,
		Sources:      res.Source,
		ElapsedMS:    res.ElapsedMS,
		Confidence:   res.Confidence,
		Cached:       res.Cached,
		MatchedTopic: res.MatchedTopic,
		RequestID:    requestid.FromContext(c),
		Timestamp:    time.Now(),
	})
}
