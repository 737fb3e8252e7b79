package knowledge

import (
	"errors"
	"slices"
	"testing"

	"macromate/internal/models"
)

func topic(id string, triggers ...string) models.Topic {
	return models.Topic{ID: id, Triggers: triggers, Response: id + " answer", Confidence: 0.95}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		topics  []models.Topic
		wantErr error
	}{
		{"valid", []models.Topic{topic("a", "x"), topic("b", "y")}, nil},
		{"empty list", nil, nil},
		{"empty id", []models.Topic{topic("", "x")}, ErrEmptyTopicID},
		{"no triggers", []models.Topic{topic("a")}, ErrNoTriggers},
		{"blank trigger", []models.Topic{topic("a", "x", "  ")}, ErrBlankTrigger},
		{"duplicate id", []models.Topic{topic("a", "x"), topic("a", "y")}, ErrDuplicateTopic},
		{"confidence above one", []models.Topic{{ID: "a", Triggers: []string{"x"}, Confidence: 1.5}}, ErrConfidenceRange},
		{"negative confidence", []models.Topic{{ID: "a", Triggers: []string{"x"}, Confidence: -0.1}}, ErrConfidenceRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb, err := New(tt.topics)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() error = %v, want nil", err)
				}
				if kb.Len() != len(tt.topics) {
					t.Errorf("Len() = %d, want %d", kb.Len(), len(tt.topics))
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookup_FirstTopicWins(t *testing.T) {
	kb, err := New([]models.Topic{
		topic("A", "cardio"),
		topic("B", "cardio exercise"),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, ok := kb.Lookup("best cardio exercise")
	if !ok {
		t.Fatal("Lookup() ok = false, want true")
	}
	if got.ID != "A" {
		t.Errorf("Lookup() = %q, want %q", got.ID, "A")
	}

	// Swapping the order swaps the winner.
	kb, _ = New([]models.Topic{
		topic("B", "cardio exercise"),
		topic("A", "cardio"),
	})
	got, _ = kb.Lookup("best cardio exercise")
	if got.ID != "B" {
		t.Errorf("Lookup() after reorder = %q, want %q", got.ID, "B")
	}
}

func TestLookup(t *testing.T) {
	kb, err := New([]models.Topic{
		topic("weight_loss", "lose weight", "weight loss", "fat loss"),
		topic("protein_foods", "protein", "protein foods"),
		topic("water_intake", "Water", "HYDRATION"),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		query  string
		wantID string
		wantOK bool
	}{
		{"how do i lose weight?", "weight_loss", true},
		{"high protein snacks", "protein_foods", true},
		{"how much water", "water_intake", true},
		{"hydration tips", "water_intake", true},
		{"protein for fat loss", "weight_loss", true},
		{"tell me a joke", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := kb.Lookup(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if got.ID != tt.wantID {
				t.Errorf("Lookup(%q) = %q, want %q", tt.query, got.ID, tt.wantID)
			}
		})
	}
}

func TestIDs_InsertionOrder(t *testing.T) {
	kb, err := New([]models.Topic{topic("z", "z"), topic("a", "a"), topic("m", "m")})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := []string{"z", "a", "m"}
	if got := kb.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	in := []models.Topic{topic("a", "Cardio")}
	kb, err := New(in)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	in[0].Triggers[0] = "changed"

	if _, ok := kb.Lookup("cardio"); !ok {
		t.Error("Lookup() affected by mutation of input slice")
	}
}
