// Package catalog loads the exercise, nutrition and workout-plan tables and
// answers free-text lookups against them.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"macromate/internal/models"
)

// ErrMissingColumns is returned when a catalog header lacks required columns.
var ErrMissingColumns = errors.New("missing required columns")

// File names of the catalogs inside the data directory.
const (
	ExercisesFile    = "exercises.csv"
	NutritionFile    = "nutrition.csv"
	WorkoutPlansFile = "workout_plans.csv"
)

var requiredColumns = map[string][]string{
	ExercisesFile:    {"name", "category", "difficulty", "equipment", "description"},
	NutritionFile:    {"food_name", "category", "calories", "protein_g", "carbs_g", "fat_g"},
	WorkoutPlansFile: {"plan_name", "level", "days_per_week", "goal"},
}

// Catalogs holds the rows of every catalog that loaded successfully.
// It is read-only after Load.
type Catalogs struct {
	exercises []exerciseRow
	foods     []foodRow
	plans     []planRow
	loaded    []string
}

// Load reads the three catalogs from fsys. A missing file is logged and
// skipped. A malformed file is skipped and reported in the returned error,
// which never prevents the other catalogs from being used.
func Load(fsys fs.FS) (*Catalogs, error) {
	c := &Catalogs{}
	var errs []error

	loaders := []struct {
		file string
		load func(*table) error
	}{
		{ExercisesFile, c.loadExercises},
		{NutritionFile, c.loadFoods},
		{WorkoutPlansFile, c.loadPlans},
	}

	for _, l := range loaders {
		t, err := readTable(fsys, l.file)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Catalog %s not found, skipping", l.file)
			continue
		}
		if err == nil {
			err = l.load(t)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to load %s: %w", l.file, err))
			continue
		}
		c.loaded = append(c.loaded, l.file)
		log.Printf("Loaded catalog %s: %d rows", l.file, len(t.rows))
	}

	return c, errors.Join(errs...)
}

// CatalogCount returns how many catalogs loaded.
func (c *Catalogs) CatalogCount() int {
	return len(c.loaded)
}

// Loaded returns the file names of the loaded catalogs in search order.
func (c *Catalogs) Loaded() []string {
	return append([]string(nil), c.loaded...)
}

// table is a parsed CSV file with its header indexed by column name.
type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(fsys fs.FS, name string) (*table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumns)
		}
		return nil, err
	}

	t := &table{columns: make(map[string]int, len(header))}
	for i, col := range header {
		t.columns[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}

	var missing []string
	for _, col := range requiredColumns[name] {
		if _, ok := t.columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	t.rows, err = r.ReadAll()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *table) str(row []string, col string) string {
	i, ok := t.columns[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) num(row []string, col string) (float64, error) {
	s := t.str(row, col)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func (c *Catalogs) loadExercises(t *table) error {
	for i, row := range t.rows {
		cal, err := t.num(row, "calories_per_30min")
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		c.exercises = append(c.exercises, newExerciseRow(models.Exercise{
			Name:             t.str(row, "name"),
			Category:         t.str(row, "category"),
			Difficulty:       t.str(row, "difficulty"),
			Equipment:        t.str(row, "equipment"),
			Description:      t.str(row, "description"),
			CaloriesPer30Min: cal,
			PrimaryMuscles:   t.str(row, "primary_muscles"),
		}))
	}
	return nil
}

func (c *Catalogs) loadFoods(t *table) error {
	for i, row := range t.rows {
		var nums [5]float64
		for j, col := range []string{"calories", "protein_g", "carbs_g", "fat_g", "fiber_g"} {
			v, err := t.num(row, col)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			nums[j] = v
		}
		c.foods = append(c.foods, newFoodRow(models.Food{
			FoodName:    t.str(row, "food_name"),
			Category:    t.str(row, "category"),
			ServingSize: t.str(row, "serving_size"),
			Calories:    nums[0],
			ProteinG:    nums[1],
			CarbsG:      nums[2],
			FatG:        nums[3],
			FiberG:      nums[4],
			Benefits:    t.str(row, "benefits"),
		}))
	}
	return nil
}

func (c *Catalogs) loadPlans(t *table) error {
	for i, row := range t.rows {
		var nums [3]float64
		for j, col := range []string{"days_per_week", "duration_weeks", "avg_workout_time_min"} {
			v, err := t.num(row, col)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			nums[j] = v
		}
		c.plans = append(c.plans, newPlanRow(models.WorkoutPlan{
			PlanName:          t.str(row, "plan_name"),
			Level:             t.str(row, "level"),
			DaysPerWeek:       nums[0],
			DurationWeeks:     nums[1],
			Goal:              t.str(row, "goal"),
			WorkoutStructure:  t.str(row, "workout_structure"),
			EquipmentNeeded:   t.str(row, "equipment_needed"),
			AvgWorkoutTimeMin: nums[2],
			Description:       t.str(row, "description"),
		}))
	}
	return nil
}
