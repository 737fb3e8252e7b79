package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"macromate/internal/fitness"
	"macromate/internal/models"
	"macromate/internal/validation"
)

// CalculatorHandler serves the health calculators.
type CalculatorHandler struct {
	predictor fitness.Predictor
}

// NewCalculatorHandler creates a calculator handler. A nil predictor makes
// the body-fat endpoint answer 503.
func NewCalculatorHandler(predictor fitness.Predictor) *CalculatorHandler {
	return &CalculatorHandler{predictor: predictor}
}

// decode parses and validates a JSON body into dst, writing the error
// response itself when it returns false.
func decode(c fiber.Ctx, dst any) (bool, error) {
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return false, jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateStruct(dst); !valid {
		return false, jsonError(c, fiber.StatusBadRequest, msg)
	}
	return true, nil
}

func calculationError(c fiber.Ctx, err error) error {
	if errors.Is(err, fitness.ErrInvalidMeasurement) {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	slog.Error("calculation failed", "path", c.Path(), "error", err)
	return jsonError(c, fiber.StatusInternalServerError, "calculation failed")
}

// BMI handles POST /api/calculate/bmi.
func (h *CalculatorHandler) BMI(c fiber.Ctx) error {
	var req models.BMIRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}

	result, err := fitness.BMI(req)
	if err != nil {
		return calculationError(c, err)
	}
	result.CalculationDate = time.Now()
	return jsonSuccess(c, result)
}

// Calories handles POST /api/calculate/calories.
func (h *CalculatorHandler) Calories(c fiber.Ctx) error {
	var req models.CalorieRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}

	result, err := fitness.Calories(req)
	if err != nil {
		return calculationError(c, err)
	}
	result.CalculationDate = time.Now()
	return jsonSuccess(c, result)
}

// Macros handles POST /api/calculate/macros.
func (h *CalculatorHandler) Macros(c fiber.Ctx) error {
	var req models.MacroRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}

	result, err := fitness.Macros(req.Weight.Float64(), req.Calories.Int())
	if err != nil {
		return calculationError(c, err)
	}
	return jsonSuccess(c, result)
}

// BodyFat handles POST /api/calculate/bodyfat.
func (h *CalculatorHandler) BodyFat(c fiber.Ctx) error {
	if h.predictor == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "Body fat model is not loaded. Please check server logs.")
	}

	var req models.BodyFatRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}

	result, err := fitness.BodyFat(h.predictor, req)
	if err != nil {
		return calculationError(c, err)
	}
	result.CalculationDate = time.Now()
	return jsonSuccess(c, result)
}
