package models

import "time"

// Unit systems
const (
	UnitMetric   = "metric"
	UnitImperial = "imperial"
)

// BMIRequest is the body of POST /api/calculate/bmi.
// Height is cm (or inches), weight is kg (or pounds).
type BMIRequest struct {
	Height Number `json:"height" validate:"required,gt=0"`
	Weight Number `json:"weight" validate:"required,gt=0"`
	Unit   string `json:"unit"`
}

// WeightRange is an inclusive weight interval in kg.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BMIResult is the BMI classification of a person.
type BMIResult struct {
	BMI              float64     `json:"bmi"`
	Category         string      `json:"category"`
	CategoryColor    string      `json:"category_color"`
	HealthStatus     string      `json:"health_status"`
	Recommendation   string      `json:"recommendation"`
	CurrentWeight    float64     `json:"current_weight"`
	IdealWeightRange WeightRange `json:"ideal_weight_range"`
	WeightAdjustment float64     `json:"weight_adjustment"`
	AdjustmentType   string      `json:"adjustment_type"`
	RiskFactors      []string    `json:"risk_factors"`
	CalculationDate  time.Time   `json:"calculation_date"`
}

// CalorieRequest is the body of POST /api/calculate/calories.
type CalorieRequest struct {
	Height        Number  `json:"height" validate:"required,gt=0"`
	Weight        Number  `json:"weight" validate:"required,gt=0"`
	Age           Integer `json:"age" validate:"required,gt=0,lte=120"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
}

// CalorieGoals are daily calorie targets per weekly weight-change goal.
type CalorieGoals struct {
	Maintain    int `json:"maintain"`
	MildLoss    int `json:"mild_loss"`
	WeightLoss  int `json:"weight_loss"`
	ExtremeLoss int `json:"extreme_loss"`
	MildGain    int `json:"mild_gain"`
	WeightGain  int `json:"weight_gain"`
	ExtremeGain int `json:"extreme_gain"`
}

// WeeklyWeightChanges are the kg/week changes behind CalorieGoals.
type WeeklyWeightChanges struct {
	MildLoss    float64 `json:"mild_loss"`
	WeightLoss  float64 `json:"weight_loss"`
	ExtremeLoss float64 `json:"extreme_loss"`
	MildGain    float64 `json:"mild_gain"`
	WeightGain  float64 `json:"weight_gain"`
	ExtremeGain float64 `json:"extreme_gain"`
}

// MacroAmount is one macronutrient's share of a daily target.
type MacroAmount struct {
	Grams      int `json:"grams"`
	Calories   int `json:"calories"`
	Percentage int `json:"percentage"`
}

// MacroSplit is the protein/carbs/fat breakdown of a daily target.
type MacroSplit struct {
	Protein MacroAmount `json:"protein"`
	Carbs   MacroAmount `json:"carbs"`
	Fat     MacroAmount `json:"fat"`
}

// CalorieUserInfo echoes the inputs used for a calorie calculation.
type CalorieUserInfo struct {
	Age    int     `json:"age"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Gender string  `json:"gender"`
	BMI    float64 `json:"bmi"`
}

// CalorieResult contains BMR, TDEE and derived targets.
type CalorieResult struct {
	BMR                 int                 `json:"bmr"`
	TDEE                int                 `json:"tdee"`
	ActivityLevel       string              `json:"activity_level"`
	ActivityMultiplier  float64             `json:"activity_multiplier"`
	Goals               CalorieGoals        `json:"goals"`
	Recommendation      string              `json:"recommendation"`
	RecommendationColor string              `json:"recommendation_color"`
	Macros              MacroSplit          `json:"macros"`
	UserInfo            CalorieUserInfo     `json:"user_info"`
	WeeklyWeightChanges WeeklyWeightChanges `json:"weekly_weight_changes"`
	CalculationDate     time.Time           `json:"calculation_date"`
}

// MacroRequest is the body of POST /api/calculate/macros.
type MacroRequest struct {
	Weight   Number  `json:"weight" validate:"required,gt=0"`
	Calories Integer `json:"calories" validate:"required,gt=0"`
}

// BodyFatRequest is the body of POST /api/calculate/bodyfat.
// Lengths are cm (or inches), weight is kg (or pounds).
type BodyFatRequest struct {
	Age     Number `json:"age" validate:"required,gt=0"`
	Weight  Number `json:"weight" validate:"required,gt=0"`
	Height  Number `json:"height" validate:"required,gt=0"`
	Neck    Number `json:"neck" validate:"required,gt=0"`
	Abdomen Number `json:"abdomen" validate:"required,gt=0"`
	Forearm Number `json:"forearm" validate:"required,gt=0"`
	Wrist   Number `json:"wrist" validate:"required,gt=0"`
	Unit    string `json:"unit"`
}

// BodyComposition splits total weight into fat and lean mass (kg).
type BodyComposition struct {
	TotalWeight  float64 `json:"total_weight"`
	FatMass      float64 `json:"fat_mass"`
	LeanBodyMass float64 `json:"lean_body_mass"`
}

// BodyFatResult is a body-fat estimate with its classification.
type BodyFatResult struct {
	BodyFatPercentage float64         `json:"body_fat_percentage"`
	Category          string          `json:"category"`
	CategoryColor     string          `json:"category_color"`
	HealthStatus      string          `json:"health_status"`
	Recommendation    string          `json:"recommendation"`
	BodyComposition   BodyComposition `json:"body_composition"`
	RiskFactors       []string        `json:"risk_factors"`
	MAE               float64         `json:"mae"`
	CalculationDate   time.Time       `json:"calculation_date"`
}

// LinearModelSpec is the on-disk form of a linear regression model.
type LinearModelSpec struct {
	Features     []string  `yaml:"features"`
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients"`
	MAE          float64   `yaml:"mae"`
}

// FoodMacros is the nutrition of one serving of a recognised dish.
type FoodMacros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Serving  string  `json:"serving"`
}

// FoodCandidate is one of the classifier's top guesses.
type FoodCandidate struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Food prediction statuses
const (
	FoodRecognized = "recognized"
	FoodUnknown    = "unknown"
)

// FoodPrediction is the outcome of classifying a food photo.
type FoodPrediction struct {
	Status     string          `json:"status"`
	Food       string          `json:"food,omitempty"`
	BestGuess  string          `json:"best_guess,omitempty"`
	Confidence float64         `json:"confidence"`
	Macros     *FoodMacros     `json:"macros,omitempty"`
	Message    string          `json:"message,omitempty"`
	Suggestion string          `json:"suggestion,omitempty"`
	Top3       []FoodCandidate `json:"top_3"`
}
