package models

import "time"

// ChatbotRequest is the body of POST /api/chatbot.
type ChatbotRequest struct {
	Query string `json:"query"`
}

// ChatbotResponse contains a resolved chatbot answer.
type ChatbotResponse struct {
	Query        string         `json:"query"`
	Response     string         `json:"response"`
	Type         ResolutionKind `json:"type"`
	Sources      string         `json:"sources"`
	ElapsedMS    float64        `json:"processing_time_ms"`
	Confidence   float64        `json:"confidence"`
	Cached       bool           `json:"cached"`
	MatchedTopic string         `json:"matched_topic,omitempty"`
	RequestID    string         `json:"request_id,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status           string              `json:"status"`
	Timestamp        time.Time           `json:"timestamp"`
	Version          string              `json:"version"`
	ChatbotAvailable bool                `json:"chatbot_available"`
	ChatbotStats     *ResolverStatistics `json:"chatbot_stats"`
}
