package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"macromate/internal/models"
)

// MaxImageBytes bounds uploaded food photos.
const MaxImageBytes = 10 << 20

// FoodRecognizer classifies a food photo.
type FoodRecognizer interface {
	Recognize(ctx context.Context, image []byte) (models.FoodPrediction, error)
}

// FoodHandler serves food photo recognition.
type FoodHandler struct {
	recognizer FoodRecognizer
}

// NewFoodHandler creates a food handler. A nil recognizer makes the endpoint
// answer 503.
func NewFoodHandler(recognizer FoodRecognizer) *FoodHandler {
	return &FoodHandler{recognizer: recognizer}
}

// Predict handles POST /api/predict/food with a multipart "image" field.
func (h *FoodHandler) Predict(c fiber.Ctx) error {
	if h.recognizer == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "Food recognition is not available")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "No image file provided")
	}
	if fh.Size > MaxImageBytes {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, "image is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "failed to read image")
	}
	defer f.Close()

	image, err := io.ReadAll(io.LimitReader(f, MaxImageBytes))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "failed to read image")
	}
	if len(image) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "No image file provided")
	}

	prediction, err := h.recognizer.Recognize(c.Context(), image)
	if err != nil {
		slog.Error("food prediction failed", "error", err)
		return jsonError(c, fiber.StatusBadGateway, "Prediction failed")
	}
	return jsonSuccess(c, prediction)
}
