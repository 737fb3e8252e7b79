package models

// Catalog names, in search order.
const (
	CatalogExercises    = "exercises"
	CatalogNutrition    = "nutrition"
	CatalogWorkoutPlans = "workout_plans"
)

// Exercise is a row of the exercise catalog.
type Exercise struct {
	Name             string
	Category         string
	Difficulty       string
	Equipment        string
	Description      string
	CaloriesPer30Min float64
	PrimaryMuscles   string
}

// Food is a row of the nutrition catalog.
type Food struct {
	FoodName    string
	Category    string
	ServingSize string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	FiberG      float64
	Benefits    string
}

// WorkoutPlan is a row of the workout-plan catalog.
type WorkoutPlan struct {
	PlanName          string
	Level             string
	DaysPerWeek       float64
	DurationWeeks     float64
	Goal              string
	WorkoutStructure  string
	EquipmentNeeded   string
	AvgWorkoutTimeMin float64
	Description       string
}

// TabularMatch is the rendered answer for the first catalog row matching a query.
type TabularMatch struct {
	Catalog string
	Source  string
	Answer  string
}
