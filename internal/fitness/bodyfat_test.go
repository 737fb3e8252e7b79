package fitness

import (
	"errors"
	"math"
	"testing"

	"macromate/data"
	"macromate/internal/config"
	"macromate/internal/models"
)

type fixedPredictor struct {
	value float64
	err   error
	got   []float64
}

func (p *fixedPredictor) Predict(features []float64) (float64, error) {
	p.got = features
	return p.value, p.err
}

var sampleBodyFat = models.BodyFatRequest{
	Age: 35, Weight: 80, Height: 178, Neck: 38, Abdomen: 90, Forearm: 28, Wrist: 18,
}

func TestBodyFat_Categories(t *testing.T) {
	tests := []struct {
		name         string
		predicted    float64
		wantPct      float64
		wantCategory string
		wantRisks    int
	}{
		{"clamped low", 1.2, 3.0, "Essential Fat", 3},
		{"athlete", 10, 10.0, "Athletes", 0},
		{"fitness lower bound", 14, 14.0, "Fitness", 0},
		{"average", 21.44, 21.4, "Average", 0},
		{"above average", 30, 30.0, "Above Average", 3},
		{"clamped high", 72, 50.0, "Above Average", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BodyFat(&fixedPredictor{value: tt.predicted}, sampleBodyFat)
			if err != nil {
				t.Fatalf("BodyFat() error = %v", err)
			}
			if got.BodyFatPercentage != tt.wantPct {
				t.Errorf("BodyFat() pct = %v, want %v", got.BodyFatPercentage, tt.wantPct)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("BodyFat() category = %q, want %q", got.Category, tt.wantCategory)
			}
			if len(got.RiskFactors) != tt.wantRisks {
				t.Errorf("BodyFat() risks = %v, want %d entries", got.RiskFactors, tt.wantRisks)
			}
			if got.MAE != DefaultBodyFatMAE {
				t.Errorf("BodyFat() mae = %v, want %v", got.MAE, DefaultBodyFatMAE)
			}
		})
	}
}

func TestBodyFat_Composition(t *testing.T) {
	got, err := BodyFat(&fixedPredictor{value: 15}, sampleBodyFat)
	if err != nil {
		t.Fatalf("BodyFat() error = %v", err)
	}
	want := models.BodyComposition{TotalWeight: 80, FatMass: 12, LeanBodyMass: 68}
	if got.BodyComposition != want {
		t.Errorf("BodyFat() composition = %+v, want %+v", got.BodyComposition, want)
	}
}

func TestBodyFat_ImperialFeatures(t *testing.T) {
	p := &fixedPredictor{value: 20}
	req := models.BodyFatRequest{Age: 40, Weight: 176, Height: 70, Neck: 15, Abdomen: 36, Forearm: 11, Wrist: 7, Unit: "imperial"}

	if _, err := BodyFat(p, req); err != nil {
		t.Fatalf("BodyFat() error = %v", err)
	}
	want := []float64{40, 176 * 0.453592, 70 * 2.54, 15 * 2.54, 36 * 2.54, 11 * 2.54, 7 * 2.54}
	if len(p.got) != len(want) {
		t.Fatalf("features = %v, want %v", p.got, want)
	}
	for i := range want {
		if math.Abs(p.got[i]-want[i]) > 1e-9 {
			t.Errorf("feature[%d] (%s) = %v, want %v", i, BodyFatFeatures[i], p.got[i], want[i])
		}
	}
}

func TestBodyFat_Errors(t *testing.T) {
	if _, err := BodyFat(nil, sampleBodyFat); !errors.Is(err, ErrNoBodyFatModel) {
		t.Errorf("BodyFat(nil) error = %v, want %v", err, ErrNoBodyFatModel)
	}

	bad := sampleBodyFat
	bad.Wrist = 0
	if _, err := BodyFat(&fixedPredictor{}, bad); !errors.Is(err, ErrInvalidMeasurement) {
		t.Errorf("BodyFat() error = %v, want %v", err, ErrInvalidMeasurement)
	}

	boom := errors.New("boom")
	if _, err := BodyFat(&fixedPredictor{err: boom}, sampleBodyFat); !errors.Is(err, boom) {
		t.Errorf("BodyFat() error = %v, want wrapped %v", err, boom)
	}
}

func TestLinearModel(t *testing.T) {
	m, err := NewLinearModel(&models.LinearModelSpec{
		Features:     BodyFatFeatures,
		Intercept:    1,
		Coefficients: []float64{1, 0, 0, 0, 0.5, 0, -1},
		MAE:          2.5,
	})
	if err != nil {
		t.Fatalf("NewLinearModel() error = %v", err)
	}

	got, err := m.Predict([]float64{30, 80, 180, 40, 90, 30, 18})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got != 58 {
		t.Errorf("Predict() = %v, want 58", got)
	}
	if m.MAE() != 2.5 {
		t.Errorf("MAE() = %v, want 2.5", m.MAE())
	}

	if _, err := m.Predict([]float64{1, 2}); !errors.Is(err, ErrFeatureCount) {
		t.Errorf("Predict(short) error = %v, want %v", err, ErrFeatureCount)
	}
}

func TestNewLinearModel_Validation(t *testing.T) {
	seven := []float64{1, 1, 1, 1, 1, 1, 1}
	tests := []struct {
		name    string
		spec    *models.LinearModelSpec
		wantErr error
	}{
		{"nil", nil, ErrNoBodyFatModel},
		{"short coefficients", &models.LinearModelSpec{Coefficients: []float64{1}}, ErrFeatureCount},
		{"feature count", &models.LinearModelSpec{Features: []string{"Age"}, Coefficients: seven}, ErrFeatureCount},
		{"feature order", &models.LinearModelSpec{
			Features:     []string{"Weight", "Age", "Height", "Neck", "Abdomen", "Forearm", "Wrist"},
			Coefficients: seven,
		}, ErrFeatureOrder},
		{"unnamed features", &models.LinearModelSpec{Coefficients: seven}, nil},
		{"lowercase names", &models.LinearModelSpec{
			Features:     []string{"age", "weight", "height", "neck", "abdomen", "forearm", "wrist"},
			Coefficients: seven,
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinearModel(tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewLinearModel() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuiltInBodyFatModel(t *testing.T) {
	spec, err := config.ParseLinearModel(data.BodyFatModel)
	if err != nil {
		t.Fatalf("ParseLinearModel() error = %v", err)
	}
	m, err := NewLinearModel(spec)
	if err != nil {
		t.Fatalf("NewLinearModel() error = %v", err)
	}

	got, err := BodyFat(m, sampleBodyFat)
	if err != nil {
		t.Fatalf("BodyFat() error = %v", err)
	}
	if got.BodyFatPercentage < MinBodyFat || got.BodyFatPercentage > MaxBodyFat {
		t.Errorf("BodyFat() pct = %v, outside clamp range", got.BodyFatPercentage)
	}
	if got.MAE != DefaultBodyFatMAE {
		t.Errorf("BodyFat() mae = %v, want %v", got.MAE, DefaultBodyFatMAE)
	}
}
