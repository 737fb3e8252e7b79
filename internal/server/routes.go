package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"macromate/internal/fitness"
	"macromate/internal/handlers"
	"macromate/internal/handlers/api"
)

// Dependencies are the optional components behind the routes. A nil field
// disables the endpoints that need it; they answer 503 instead.
type Dependencies struct {
	Resolver   api.QueryResolver
	Predictor  fitness.Predictor
	Recognizer api.FoodRecognizer
	DB         handlers.Pinger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Dependencies) {
	// Initialize handlers
	probeHandler := handlers.NewProbeHandler(deps.DB)
	chatbotHandler := api.NewChatbotHandler(deps.Resolver)
	healthHandler := api.NewHealthHandler(deps.Resolver)
	calculatorHandler := api.NewCalculatorHandler(deps.Predictor)
	foodHandler := api.NewFoodHandler(deps.Recognizer)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Post("/chatbot", chatbotHandler.Chat)

	calc := apiGroup.Group("/calculate")
	calc.Post("/bmi", calculatorHandler.BMI)
	calc.Post("/calories", calculatorHandler.Calories)
	calc.Post("/macros", calculatorHandler.Macros)
	calc.Post("/bodyfat", calculatorHandler.BodyFat)

	apiGroup.Post("/predict/food", foodHandler.Predict)
}
