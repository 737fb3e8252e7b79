package fitness

import (
	"context"
	"errors"
	"testing"

	"macromate/internal/models"
)

var foodClasses = []string{"idli", "pizza", "upma", "mystery_dish"}

type fixedClassifier struct {
	probs []float64
	err   error
}

func (c fixedClassifier) Classify(context.Context, []byte) ([]float64, error) {
	return c.probs, c.err
}

func TestShapeFoodPrediction_Recognized(t *testing.T) {
	got, err := ShapeFoodPrediction([]float64{0.05, 0.85, 0.06, 0.04}, foodClasses, 0.8)
	if err != nil {
		t.Fatalf("ShapeFoodPrediction() error = %v", err)
	}
	if got.Status != models.FoodRecognized || got.Food != "pizza" {
		t.Errorf("status/food = %q/%q, want recognized/pizza", got.Status, got.Food)
	}
	if got.Confidence != 85.0 {
		t.Errorf("confidence = %v, want 85", got.Confidence)
	}
	if got.Macros == nil || got.Macros.Calories != 285 {
		t.Errorf("macros = %+v, want pizza macros", got.Macros)
	}

	wantTop := []string{"pizza", "upma", "idli"}
	if len(got.Top3) != 3 {
		t.Fatalf("top3 = %+v", got.Top3)
	}
	for i, name := range wantTop {
		if got.Top3[i].Name != name {
			t.Errorf("top3[%d] = %q, want %q", i, got.Top3[i].Name, name)
		}
	}
}

func TestShapeFoodPrediction_Unknown(t *testing.T) {
	got, err := ShapeFoodPrediction([]float64{0.5, 0.3, 0.15, 0.05}, foodClasses, 0.8)
	if err != nil {
		t.Fatalf("ShapeFoodPrediction() error = %v", err)
	}
	if got.Status != models.FoodUnknown || got.BestGuess != "idli" {
		t.Errorf("status/guess = %q/%q, want unknown/idli", got.Status, got.BestGuess)
	}
	if got.Macros != nil {
		t.Errorf("macros = %+v, want nil", got.Macros)
	}
	if got.Confidence != 50.0 || got.Suggestion == "" {
		t.Errorf("prediction = %+v", got)
	}
}

func TestShapeFoodPrediction_UnlistedFood(t *testing.T) {
	got, err := ShapeFoodPrediction([]float64{0, 0, 0.05, 0.95}, foodClasses, 0.8)
	if err != nil {
		t.Fatalf("ShapeFoodPrediction() error = %v", err)
	}
	if got.Macros == nil || got.Macros.Serving != "1 serving" || got.Macros.Calories != 0 {
		t.Errorf("macros = %+v, want placeholder serving", got.Macros)
	}
}

func TestShapeFoodPrediction_Errors(t *testing.T) {
	if _, err := ShapeFoodPrediction([]float64{1}, nil, 0.8); !errors.Is(err, ErrNoClasses) {
		t.Errorf("error = %v, want %v", err, ErrNoClasses)
	}
	if _, err := ShapeFoodPrediction([]float64{1}, foodClasses, 0.8); !errors.Is(err, ErrPredictionLength) {
		t.Errorf("error = %v, want %v", err, ErrPredictionLength)
	}
}

func TestFoodRecognizer(t *testing.T) {
	if _, err := NewFoodRecognizer(fixedClassifier{}, nil, 0); !errors.Is(err, ErrNoClasses) {
		t.Errorf("NewFoodRecognizer() error = %v, want %v", err, ErrNoClasses)
	}

	r, err := NewFoodRecognizer(fixedClassifier{probs: []float64{0.1, 0.1, 0.79, 0.01}}, foodClasses, 0)
	if err != nil {
		t.Fatalf("NewFoodRecognizer() error = %v", err)
	}
	got, err := r.Recognize(context.Background(), []byte("jpeg"))
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if got.Status != models.FoodUnknown {
		t.Errorf("status = %q, want unknown below default threshold", got.Status)
	}

	boom := errors.New("model server down")
	r, _ = NewFoodRecognizer(fixedClassifier{err: boom}, foodClasses, 0.8)
	if _, err := r.Recognize(context.Background(), nil); !errors.Is(err, boom) {
		t.Errorf("Recognize() error = %v, want wrapped %v", err, boom)
	}
}
