package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"macromate/internal/models"
)

type exerciseRow struct {
	models.Exercise
	fields [3]string
}

func newExerciseRow(e models.Exercise) exerciseRow {
	return exerciseRow{Exercise: e, fields: lowerAll(e.Name, e.Category, e.Description)}
}

type foodRow struct {
	models.Food
	fields [2]string
}

func newFoodRow(f models.Food) foodRow {
	r := foodRow{Food: f}
	r.fields[0] = strings.ToLower(f.FoodName)
	r.fields[1] = strings.ToLower(f.Category)
	return r
}

type planRow struct {
	models.WorkoutPlan
	fields [3]string
}

func newPlanRow(p models.WorkoutPlan) planRow {
	return planRow{WorkoutPlan: p, fields: lowerAll(p.PlanName, p.Goal, p.Level)}
}

func lowerAll(a, b, c string) [3]string {
	return [3]string{strings.ToLower(a), strings.ToLower(b), strings.ToLower(c)}
}

func containsAny(fields []string, query string) bool {
	for _, f := range fields {
		if strings.Contains(f, query) {
			return true
		}
	}
	return false
}

// Search looks for the normalized query in exercises, then nutrition, then
// workout plans. Within a catalog the first row in file order that contains
// the query in one of its searchable fields is rendered.
func (c *Catalogs) Search(normalizedQuery string) (models.TabularMatch, bool) {
	for i := range c.exercises {
		if containsAny(c.exercises[i].fields[:], normalizedQuery) {
			return models.TabularMatch{
				Catalog: models.CatalogExercises,
				Source:  ExercisesFile,
				Answer:  renderExercise(c.exercises[i].Exercise),
			}, true
		}
	}
	for i := range c.foods {
		if containsAny(c.foods[i].fields[:], normalizedQuery) {
			return models.TabularMatch{
				Catalog: models.CatalogNutrition,
				Source:  NutritionFile,
				Answer:  renderFood(c.foods[i].Food),
			}, true
		}
	}
	for i := range c.plans {
		if containsAny(c.plans[i].fields[:], normalizedQuery) {
			return models.TabularMatch{
				Catalog: models.CatalogWorkoutPlans,
				Source:  WorkoutPlansFile,
				Answer:  renderPlan(c.plans[i].WorkoutPlan),
			}, true
		}
	}
	return models.TabularMatch{}, false
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderExercise(e models.Exercise) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", e.Name)
	fmt.Fprintf(&b, "**Category:** %s\n", e.Category)
	fmt.Fprintf(&b, "**Difficulty:** %s\n", e.Difficulty)
	fmt.Fprintf(&b, "**Equipment Needed:** %s\n\n", e.Equipment)
	fmt.Fprintf(&b, "**Description:**\n%s\n\n", e.Description)
	fmt.Fprintf(&b, "**Primary Muscles Worked:** %s\n", e.PrimaryMuscles)
	fmt.Fprintf(&b, "**Calories Burned (30 min):** %s calories\n\n", num(e.CaloriesPer30Min))
	b.WriteString("**Want to learn more?** Ask about workout plans or other exercises!")
	return b.String()
}

func renderFood(f models.Food) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** - Nutritional Information\n\n", f.FoodName)
	fmt.Fprintf(&b, "**Serving Size:** %s\n", f.ServingSize)
	fmt.Fprintf(&b, "**Calories:** %s kcal\n\n", num(f.Calories))
	b.WriteString("**Macronutrients:**\n")
	fmt.Fprintf(&b, "• Protein: %sg\n", num(f.ProteinG))
	fmt.Fprintf(&b, "• Carbohydrates: %sg\n", num(f.CarbsG))
	fmt.Fprintf(&b, "• Fat: %sg\n", num(f.FatG))
	fmt.Fprintf(&b, "• Fiber: %sg\n\n", num(f.FiberG))
	fmt.Fprintf(&b, "**Benefits:**\n%s\n\n", f.Benefits)
	b.WriteString("**Want meal planning help?** Ask me for a meal plan or high protein foods!")
	return b.String()
}

func renderPlan(p models.WorkoutPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", p.PlanName)
	fmt.Fprintf(&b, "**Level:** %s\n", p.Level)
	fmt.Fprintf(&b, "**Days Per Week:** %s\n", num(p.DaysPerWeek))
	fmt.Fprintf(&b, "**Duration:** %s weeks\n", num(p.DurationWeeks))
	fmt.Fprintf(&b, "**Goal:** %s\n\n", p.Goal)
	fmt.Fprintf(&b, "**Workout Structure:**\n%s\n\n", p.WorkoutStructure)
	fmt.Fprintf(&b, "**Equipment Needed:** %s\n", p.EquipmentNeeded)
	fmt.Fprintf(&b, "**Average Workout Time:** %s minutes\n\n", num(p.AvgWorkoutTimeMin))
	fmt.Fprintf(&b, "**Description:**\n%s\n\n", p.Description)
	b.WriteString("**Ready to start?** Ask me for beginner workout tips or nutrition advice!")
	return b.String()
}
