package fitness

import (
	"strings"

	"macromate/internal/models"
)

// KcalPerKg is the energy content of one kilogram of body weight.
const KcalPerKg = 7700.0

// ActivityMultipliers scale BMR to total daily energy expenditure.
var ActivityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

const defaultActivityMultiplier = 1.2

// Daily protein grams per kg of body weight, and the fat share of calories.
const (
	ProteinPerKg = 2.2
	FatShare     = 0.25
)

type calorieAdvice struct {
	text  string
	color string
}

var (
	gainAdvice = calorieAdvice{
		"You probably need to gain weight! Focus on nutrient-dense, calorie-rich foods and consider strength training.",
		"text-blue-600 bg-blue-50 border-blue-200",
	}
	maintainAdvice = calorieAdvice{
		"Your weight appears to be in a healthy range. Focus on maintaining your current weight with balanced nutrition and regular exercise.",
		"text-green-600 bg-green-50 border-green-200",
	}
	loseAdvice = calorieAdvice{
		"You probably need to lose weight. Consider creating a moderate calorie deficit combined with regular physical activity.",
		"text-orange-600 bg-orange-50 border-orange-200",
	}
)

// Calories computes BMR with the Mifflin-St Jeor equation, TDEE for the
// activity level, goal targets and the maintenance macro split. Height is cm
// and weight kg. Gender defaults to male and unknown activity levels use the
// sedentary multiplier.
func Calories(req models.CalorieRequest) (models.CalorieResult, error) {
	height, weight, age := req.Height.Float64(), req.Weight.Float64(), req.Age.Int()
	if !positive(height, weight, float64(age)) {
		return models.CalorieResult{}, ErrInvalidMeasurement
	}

	gender := strings.ToLower(strings.TrimSpace(req.Gender))
	if gender == "" {
		gender = "male"
	}
	activity := strings.ToLower(strings.TrimSpace(req.ActivityLevel))
	if activity == "" {
		activity = "sedentary"
	}
	multiplier, ok := ActivityMultipliers[activity]
	if !ok {
		multiplier = defaultActivityMultiplier
	}

	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	tdee := bmr * multiplier

	perDay := func(kgPerWeek float64) float64 { return KcalPerKg * kgPerWeek / 7 }
	maintain := roundInt(tdee)

	heightM := height / 100
	bmi := weight / (heightM * heightM)
	advice := loseAdvice
	switch {
	case bmi < 18.5:
		advice = gainAdvice
	case bmi < 25.0:
		advice = maintainAdvice
	}

	macros, err := Macros(weight, maintain)
	if err != nil {
		return models.CalorieResult{}, err
	}

	return models.CalorieResult{
		BMR:                roundInt(bmr),
		TDEE:               maintain,
		ActivityLevel:      activity,
		ActivityMultiplier: multiplier,
		Goals: models.CalorieGoals{
			Maintain:    maintain,
			MildLoss:    roundInt(tdee - perDay(0.25)),
			WeightLoss:  roundInt(tdee - perDay(0.5)),
			ExtremeLoss: roundInt(tdee - perDay(1.0)),
			MildGain:    roundInt(tdee + perDay(0.25)),
			WeightGain:  roundInt(tdee + perDay(0.5)),
			ExtremeGain: roundInt(tdee + perDay(1.0)),
		},
		Recommendation:      advice.text,
		RecommendationColor: advice.color,
		Macros:              macros,
		UserInfo: models.CalorieUserInfo{
			Age:    age,
			Height: height,
			Weight: weight,
			Gender: gender,
			BMI:    round1(bmi),
		},
		WeeklyWeightChanges: models.WeeklyWeightChanges{
			MildLoss:    -0.25,
			WeightLoss:  -0.5,
			ExtremeLoss: -1.0,
			MildGain:    0.25,
			WeightGain:  0.5,
			ExtremeGain: 1.0,
		},
	}, nil
}

// Macros splits a daily calorie target: protein by body weight, a fixed fat
// share, carbohydrates for the remainder.
func Macros(weightKg float64, calories int) (models.MacroSplit, error) {
	if !positive(weightKg, float64(calories)) {
		return models.MacroSplit{}, ErrInvalidMeasurement
	}

	proteinGrams := roundInt(weightKg * ProteinPerKg)
	proteinCal := proteinGrams * 4

	fatCal := roundInt(float64(calories) * FatShare)
	fatGrams := roundInt(float64(fatCal) / 9)

	carbCal := calories - proteinCal - fatCal
	carbGrams := roundInt(float64(carbCal) / 4)

	proteinPct := roundInt(float64(proteinCal) / float64(calories) * 100)
	fatPct := int(FatShare * 100)

	return models.MacroSplit{
		Protein: models.MacroAmount{Grams: proteinGrams, Calories: proteinCal, Percentage: proteinPct},
		Carbs:   models.MacroAmount{Grams: carbGrams, Calories: carbCal, Percentage: 100 - proteinPct - fatPct},
		Fat:     models.MacroAmount{Grams: fatGrams, Calories: fatCal, Percentage: fatPct},
	}, nil
}
