package fitness

import (
	"math"

	"macromate/internal/models"
)

type bmiBand struct {
	upper          float64
	category       string
	color          string
	status         string
	recommendation string
}

// Bands are ordered by upper bound; the last one is open-ended.
var bmiBands = []bmiBand{
	{16.0, "Severely Underweight", "text-red-600 bg-red-100", "critical",
		"You probably need to gain weight! Please consult with a healthcare provider immediately."},
	{18.5, "Underweight", "text-blue-600 bg-blue-100", "underweight",
		"You probably need to gain weight! Consider consulting with a nutritionist for a healthy weight gain plan."},
	{25.0, "Normal", "text-green-600 bg-green-100", "normal",
		"Great! Your weight is in the healthy range. Maintain your current lifestyle."},
	{30.0, "Overweight", "text-yellow-600 bg-yellow-100", "overweight",
		"You probably need to lose weight. Consider a balanced diet and regular exercise."},
	{35.0, "Moderately Obese", "text-orange-600 bg-orange-100", "obese1",
		"You probably need to lose weight. Please consider consulting with a healthcare provider for a personalized plan."},
	{40.0, "Severely Obese", "text-red-600 bg-red-100", "obese2",
		"You probably need to lose weight urgently. Please consult with a healthcare provider immediately."},
	{math.Inf(1), "Morbidly Obese", "text-red-700 bg-red-200", "obese3",
		"You probably need to lose weight urgently. Please seek immediate medical attention."},
}

// Healthy BMI range used for the ideal weight range.
const (
	IdealBMIMin = 18.5
	IdealBMIMax = 24.9
)

var (
	excessWeightRisks  = []string{"Type 2 diabetes", "Heart disease", "High blood pressure", "Sleep apnea", "Certain cancers"}
	severeObesityRisks = []string{"Stroke", "Fatty liver disease"}
	underweightRisks   = []string{"Weakened immune system", "Osteoporosis", "Fertility issues", "Delayed wound healing"}
)

func bandFor(bmi float64) bmiBand {
	for _, b := range bmiBands {
		if bmi < b.upper {
			return b
		}
	}
	return bmiBands[len(bmiBands)-1]
}

// BMI classifies a person by body-mass index. Height is in cm and weight in
// kg unless req.Unit is imperial (inches and pounds).
func BMI(req models.BMIRequest) (models.BMIResult, error) {
	heightCM, weight := req.Height.Float64(), req.Weight.Float64()
	if !positive(heightCM, weight) {
		return models.BMIResult{}, ErrInvalidMeasurement
	}

	if isImperial(req.Unit) {
		heightCM *= cmPerInch
		weight *= kgPerLb
	}

	heightM := heightCM / 100
	bmi := weight / (heightM * heightM)
	band := bandFor(bmi)

	idealMin := IdealBMIMin * heightM * heightM
	idealMax := IdealBMIMax * heightM * heightM

	gaining := band.status == "critical" || band.status == "underweight"

	var adjustment float64
	switch {
	case band.status == "normal":
		adjustment = 0
	case gaining:
		adjustment = idealMin - weight
	default:
		adjustment = weight - idealMax
	}

	adjustmentType := "maintain"
	if gaining {
		adjustmentType = "gain"
	} else if adjustment != 0 {
		adjustmentType = "lose"
	}

	risks := []string{}
	switch band.status {
	case "overweight", "obese1":
		risks = append(risks, excessWeightRisks...)
	case "obese2", "obese3":
		risks = append(risks, excessWeightRisks...)
		risks = append(risks, severeObesityRisks...)
	case "critical", "underweight":
		risks = append(risks, underweightRisks...)
	}

	return models.BMIResult{
		BMI:              round1(bmi),
		Category:         band.category,
		CategoryColor:    band.color,
		HealthStatus:     band.status,
		Recommendation:   band.recommendation,
		CurrentWeight:    round1(weight),
		IdealWeightRange: models.WeightRange{Min: round1(idealMin), Max: round1(idealMax)},
		WeightAdjustment: round1(math.Abs(adjustment)),
		AdjustmentType:   adjustmentType,
		RiskFactors:      risks,
	}, nil
}
