package fitness

import (
	"errors"
	"fmt"
	"strings"

	"macromate/internal/models"
)

var (
	ErrFeatureCount   = errors.New("feature count does not match model")
	ErrFeatureOrder   = errors.New("model features are not in the expected order")
	ErrNoBodyFatModel = errors.New("body fat model is not loaded")
)

// BodyFatFeatures is the input order of body-fat predictors. Values are
// metric: years, kg and cm.
var BodyFatFeatures = []string{"Age", "Weight", "Height", "Neck", "Abdomen", "Forearm", "Wrist"}

// DefaultBodyFatMAE is the published mean absolute error of the shipped model.
const DefaultBodyFatMAE = 3.133

// Body-fat estimates are clamped to this range (percent).
const (
	MinBodyFat = 3.0
	MaxBodyFat = 50.0
)

// Predictor estimates body-fat percentage from BodyFatFeatures values.
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// LinearModel is an intercept plus a weighted sum of features, the form a
// ridge regression reduces to at inference time.
type LinearModel struct {
	intercept    float64
	coefficients []float64
	mae          float64
}

// NewLinearModel builds a LinearModel from its file form. The model's
// features must be BodyFatFeatures in order (case-insensitive).
func NewLinearModel(spec *models.LinearModelSpec) (*LinearModel, error) {
	if spec == nil {
		return nil, ErrNoBodyFatModel
	}
	if len(spec.Coefficients) != len(BodyFatFeatures) {
		return nil, fmt.Errorf("%w: %d coefficients, want %d", ErrFeatureCount, len(spec.Coefficients), len(BodyFatFeatures))
	}
	if len(spec.Features) > 0 {
		if len(spec.Features) != len(BodyFatFeatures) {
			return nil, fmt.Errorf("%w: %d features, want %d", ErrFeatureCount, len(spec.Features), len(BodyFatFeatures))
		}
		for i, f := range spec.Features {
			if !strings.EqualFold(f, BodyFatFeatures[i]) {
				return nil, fmt.Errorf("%w: got %q at %d, want %q", ErrFeatureOrder, f, i, BodyFatFeatures[i])
			}
		}
	}

	mae := spec.MAE
	if mae <= 0 {
		mae = DefaultBodyFatMAE
	}
	return &LinearModel{
		intercept:    spec.Intercept,
		coefficients: append([]float64(nil), spec.Coefficients...),
		mae:          mae,
	}, nil
}

// Predict returns intercept + Σ coefficient·feature.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.coefficients) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(features), len(m.coefficients))
	}
	y := m.intercept
	for i, x := range features {
		y += m.coefficients[i] * x
	}
	return y, nil
}

// MAE returns the model's mean absolute error in percentage points.
func (m *LinearModel) MAE() float64 {
	return m.mae
}

type bodyFatBand struct {
	upper          float64
	category       string
	color          string
	status         string
	recommendation string
}

var bodyFatBands = []bodyFatBand{
	{6, "Essential Fat", "text-blue-600 bg-blue-100", "essential",
		"This is extremely low body fat. Essential fat only - consult a healthcare provider."},
	{14, "Athletes", "text-green-600 bg-green-100", "athlete",
		"Excellent! Athletic body fat range. Great for performance and aesthetics."},
	{18, "Fitness", "text-green-500 bg-green-50", "fitness",
		"Great! You have a fit and healthy body fat percentage."},
	{25, "Average", "text-yellow-600 bg-yellow-100", "average",
		"Average body fat range. Consider regular exercise to improve fitness."},
	{MaxBodyFat + 1, "Above Average", "text-orange-600 bg-orange-100", "high",
		"Consider a combination of diet and exercise to reduce body fat percentage."},
}

var (
	essentialFatRisks = []string{"Hormone disruption", "Weakened immune system", "Loss of muscle mass"}
	highBodyFatRisks  = []string{"Cardiovascular disease", "Type 2 diabetes", "High blood pressure"}
)

// BodyFat estimates body-fat percentage with p and classifies it. Imperial
// requests are converted to metric before prediction.
func BodyFat(p Predictor, req models.BodyFatRequest) (models.BodyFatResult, error) {
	if p == nil {
		return models.BodyFatResult{}, ErrNoBodyFatModel
	}
	age, weight := req.Age.Float64(), req.Weight.Float64()
	lengths := []float64{req.Height.Float64(), req.Neck.Float64(), req.Abdomen.Float64(), req.Forearm.Float64(), req.Wrist.Float64()}
	if !positive(append([]float64{age, weight}, lengths...)...) {
		return models.BodyFatResult{}, ErrInvalidMeasurement
	}

	if isImperial(req.Unit) {
		weight *= kgPerLb
		for i := range lengths {
			lengths[i] *= cmPerInch
		}
	}

	features := append([]float64{age, weight}, lengths...)
	raw, err := p.Predict(features)
	if err != nil {
		return models.BodyFatResult{}, fmt.Errorf("failed to predict body fat: %w", err)
	}
	pct := min(max(raw, MinBodyFat), MaxBodyFat)

	band := bodyFatBands[len(bodyFatBands)-1]
	for _, b := range bodyFatBands {
		if pct < b.upper {
			band = b
			break
		}
	}

	risks := []string{}
	switch band.status {
	case "essential":
		risks = append(risks, essentialFatRisks...)
	case "high":
		risks = append(risks, highBodyFatRisks...)
	}

	mae := DefaultBodyFatMAE
	if m, ok := p.(interface{ MAE() float64 }); ok {
		mae = m.MAE()
	}

	fatMass := pct / 100 * weight
	return models.BodyFatResult{
		BodyFatPercentage: round1(pct),
		Category:          band.category,
		CategoryColor:     band.color,
		HealthStatus:      band.status,
		Recommendation:    band.recommendation,
		BodyComposition: models.BodyComposition{
			TotalWeight:  round1(weight),
			FatMass:      round1(fatMass),
			LeanBodyMass: round1(weight - fatMass),
		},
		RiskFactors: risks,
		MAE:         mae,
	}, nil
}
