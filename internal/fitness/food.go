package fitness

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"macromate/internal/models"
)

var (
	ErrNoClasses        = errors.New("classifier has no class names")
	ErrPredictionLength = errors.New("prediction length does not match class names")
)

// DefaultFoodConfidenceThreshold is the probability a prediction needs to be
// reported as recognized.
const DefaultFoodConfidenceThreshold = 0.80

// Classifier returns one probability per class for an encoded image.
type Classifier interface {
	Classify(ctx context.Context, image []byte) ([]float64, error)
}

// FoodMacroTable is the nutrition of one serving per recognisable dish.
var FoodMacroTable = map[string]models.FoodMacros{
	"bisi_bele_bath":       {Calories: 320, Protein: 8, Carbs: 52, Fat: 9, Serving: "1 bowl (250g)"},
	"burger":               {Calories: 540, Protein: 25, Carbs: 45, Fat: 28, Serving: "1 burger (220g)"},
	"chicken_65":           {Calories: 280, Protein: 22, Carbs: 12, Fat: 17, Serving: "1 plate (150g)"},
	"chicken_biryani":      {Calories: 450, Protein: 20, Carbs: 55, Fat: 16, Serving: "1 plate (300g)"},
	"chicken_curry":        {Calories: 240, Protein: 24, Carbs: 8, Fat: 13, Serving: "1 bowl (200g)"},
	"curd_rice":            {Calories: 180, Protein: 5, Carbs: 32, Fat: 4, Serving: "1 bowl (200g)"},
	"egg_omelette":         {Calories: 154, Protein: 13, Carbs: 1, Fat: 11, Serving: "2 eggs (100g)"},
	"fish_curry":           {Calories: 220, Protein: 22, Carbs: 7, Fat: 12, Serving: "1 bowl (200g)"},
	"fried_rice":           {Calories: 330, Protein: 8, Carbs: 52, Fat: 10, Serving: "1 plate (250g)"},
	"grilled_chicken":      {Calories: 165, Protein: 31, Carbs: 0, Fat: 4, Serving: "1 breast (100g)"},
	"idli":                 {Calories: 78, Protein: 2, Carbs: 15, Fat: 1, Serving: "2 idlis (100g)"},
	"lemon_rice":           {Calories: 260, Protein: 4, Carbs: 48, Fat: 6, Serving: "1 plate (200g)"},
	"masala_dosa":          {Calories: 220, Protein: 5, Carbs: 35, Fat: 7, Serving: "1 dosa (150g)"},
	"open_pudi_dosa":       {Calories: 180, Protein: 4, Carbs: 28, Fat: 6, Serving: "1 dosa (120g)"},
	"palak_paneer":         {Calories: 260, Protein: 12, Carbs: 10, Fat: 19, Serving: "1 bowl (200g)"},
	"paneer_butter_masala": {Calories: 340, Protein: 14, Carbs: 12, Fat: 26, Serving: "1 bowl (200g)"},
	"pizza":                {Calories: 285, Protein: 12, Carbs: 36, Fat: 10, Serving: "1 slice (100g)"},
	"poori":                {Calories: 296, Protein: 5, Carbs: 40, Fat: 13, Serving: "2 pooris (80g)"},
	"sambar_rice":          {Calories: 240, Protein: 6, Carbs: 45, Fat: 4, Serving: "1 plate (250g)"},
	"set_dosa":             {Calories: 140, Protein: 3, Carbs: 25, Fat: 3, Serving: "2 dosas (100g)"},
	"thatte_idli":          {Calories: 95, Protein: 3, Carbs: 18, Fat: 1, Serving: "1 idli (120g)"},
	"upma":                 {Calories: 200, Protein: 5, Carbs: 35, Fat: 5, Serving: "1 bowl (200g)"},
	"vada":                 {Calories: 180, Protein: 4, Carbs: 20, Fat: 9, Serving: "2 vadas (80g)"},
	"vegetable_pulao":      {Calories: 280, Protein: 6, Carbs: 48, Fat: 7, Serving: "1 plate (250g)"},
}

var unknownFoodMacros = models.FoodMacros{Serving: "1 serving"}

// FoodRecognizer classifies food photos and attaches nutrition for
// confident predictions.
type FoodRecognizer struct {
	classifier Classifier
	classes    []string
	threshold  float64
}

// NewFoodRecognizer creates a FoodRecognizer. A non-positive threshold uses
// DefaultFoodConfidenceThreshold.
func NewFoodRecognizer(c Classifier, classes []string, threshold float64) (*FoodRecognizer, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	if threshold <= 0 {
		threshold = DefaultFoodConfidenceThreshold
	}
	return &FoodRecognizer{classifier: c, classes: classes, threshold: threshold}, nil
}

// Recognize classifies image and shapes the prediction.
func (r *FoodRecognizer) Recognize(ctx context.Context, image []byte) (models.FoodPrediction, error) {
	probs, err := r.classifier.Classify(ctx, image)
	if err != nil {
		return models.FoodPrediction{}, fmt.Errorf("failed to classify image: %w", err)
	}
	return ShapeFoodPrediction(probs, r.classes, r.threshold)
}

// ShapeFoodPrediction turns class probabilities into a FoodPrediction. The
// best class is recognized when its probability reaches threshold; top
// candidates are always reported, most likely first.
func ShapeFoodPrediction(probs []float64, classes []string, threshold float64) (models.FoodPrediction, error) {
	if len(classes) == 0 {
		return models.FoodPrediction{}, ErrNoClasses
	}
	if len(probs) != len(classes) {
		return models.FoodPrediction{}, fmt.Errorf("%w: got %d, want %d", ErrPredictionLength, len(probs), len(classes))
	}

	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return probs[idx[a]] > probs[idx[b]] })

	top := make([]models.FoodCandidate, 0, 3)
	for _, i := range idx[:min(3, len(idx))] {
		top = append(top, models.FoodCandidate{Name: classes[i], Confidence: probs[i]})
	}

	best := idx[0]
	name, conf := classes[best], probs[best]
	if conf >= threshold {
		macros, ok := FoodMacroTable[name]
		if !ok {
			macros = unknownFoodMacros
		}
		return models.FoodPrediction{
			Status:     models.FoodRecognized,
			Food:       name,
			Confidence: round1(conf * 100),
			Macros:     &macros,
			Top3:       top,
		}, nil
	}

	return models.FoodPrediction{
		Status:     models.FoodUnknown,
		Message:    "Low confidence. Food not recognized.",
		BestGuess:  name,
		Confidence: round1(conf * 100),
		Suggestion: "Try taking a clearer photo with better lighting.",
		Top3:       top,
	}, nil
}
