package catalog

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"macromate/data"
	"macromate/internal/models"
)

const (
	exercisesCSV = "name,category,difficulty,equipment,description,calories_per_30min,primary_muscles\n" +
		"Push-ups,Chest,Beginner,None,\"Bodyweight press for chest, shoulders\",135,\"Chest, Triceps\"\n" +
		"Egg Carry,Core,Beginner,None,Balance drill,40,Core\n"
	nutritionCSV = "food_name,category,serving_size,calories,protein_g,carbs_g,fat_g,fiber_g,benefits\n" +
		"Eggs,Protein,2 large,143,13,1,10,0,Complete protein\n" +
		"Oats,Carbs,1 cup,307,11,55,5.5,8,Slow carbs\n"
	plansCSV = "plan_name,level,days_per_week,duration_weeks,goal,workout_structure,equipment_needed,avg_workout_time_min,description\n" +
		"Starter Plan,Beginner,3,8,Build habits,Day 1: A | Day 2: B,None,45,Gentle start\n"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		ExercisesFile:    {Data: []byte(exercisesCSV)},
		NutritionFile:    {Data: []byte(nutritionCSV)},
		WorkoutPlansFile: {Data: []byte(plansCSV)},
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.CatalogCount() != 3 {
		t.Errorf("CatalogCount() = %d, want 3", c.CatalogCount())
	}
	want := []string{ExercisesFile, NutritionFile, WorkoutPlansFile}
	for i, name := range c.Loaded() {
		if name != want[i] {
			t.Errorf("Loaded()[%d] = %q, want %q", i, name, want[i])
		}
	}
}

func TestLoad_MissingFileSkipped(t *testing.T) {
	fsys := testFS()
	delete(fsys, NutritionFile)

	c, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if c.CatalogCount() != 2 {
		t.Errorf("CatalogCount() = %d, want 2", c.CatalogCount())
	}
	if _, ok := c.Search("oats"); ok {
		t.Error("Search(oats) matched a skipped catalog")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing columns", "food_name,calories\nEggs,143\n", ErrMissingColumns},
		{"empty file", "", ErrMissingColumns},
		{"bad number", strings.Replace(nutritionCSV, ",143,", ",lots,", 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testFS()
			fsys[NutritionFile] = &fstest.MapFile{Data: []byte(tt.content)}

			c, err := Load(fsys)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if c.CatalogCount() != 2 {
				t.Errorf("CatalogCount() = %d, want 2", c.CatalogCount())
			}
		})
	}
}

func TestSearch(t *testing.T) {
	c, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name        string
		query       string
		wantOK      bool
		wantCatalog string
		wantSource  string
		wantTitle   string
	}{
		{"exercise by name", "push-ups", true, models.CatalogExercises, ExercisesFile, "**Push-ups**"},
		{"exercise by description", "shoulders", true, models.CatalogExercises, ExercisesFile, "**Push-ups**"},
		{"exercises beat nutrition", "egg", true, models.CatalogExercises, ExercisesFile, "**Egg Carry**"},
		{"nutrition by category", "carbs", true, models.CatalogNutrition, NutritionFile, "**Oats** - Nutritional Information"},
		{"plan by goal", "build habits", true, models.CatalogWorkoutPlans, WorkoutPlansFile, "**Starter Plan**"},
		{"no match", "zumba", false, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Search(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Search(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if got.Catalog != tt.wantCatalog {
				t.Errorf("Search(%q) catalog = %q, want %q", tt.query, got.Catalog, tt.wantCatalog)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Search(%q) source = %q, want %q", tt.query, got.Source, tt.wantSource)
			}
			if !strings.HasPrefix(got.Answer, tt.wantTitle) {
				t.Errorf("Search(%q) answer starts %q, want prefix %q", tt.query, firstLine(got.Answer), tt.wantTitle)
			}
		})
	}
}

func TestSearch_RendersNumbers(t *testing.T) {
	c, _ := Load(testFS())

	got, ok := c.Search("oats")
	if !ok {
		t.Fatal("Search(oats) ok = false")
	}
	for _, want := range []string{"**Calories:** 307 kcal", "• Fat: 5.5g", "**Serving Size:** 1 cup"} {
		if !strings.Contains(got.Answer, want) {
			t.Errorf("answer missing %q:\n%s", want, got.Answer)
		}
	}

	got, _ = c.Search("starter")
	if !strings.Contains(got.Answer, "**Duration:** 8 weeks") {
		t.Errorf("answer missing duration:\n%s", got.Answer)
	}
}

func TestLoad_EmbeddedSamples(t *testing.T) {
	c, err := Load(data.Catalogs)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.CatalogCount() != 3 {
		t.Fatalf("CatalogCount() = %d, want 3", c.CatalogCount())
	}

	got, ok := c.Search("push-ups")
	if !ok || got.Source != ExercisesFile {
		t.Fatalf("Search(push-ups) = %+v, %v", got, ok)
	}
	if !strings.HasPrefix(got.Answer, "**Push-ups**") {
		t.Errorf("answer starts %q, want **Push-ups**", firstLine(got.Answer))
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
