package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Number
		wantErr error
	}{
		{"number", `80.5`, 80.5, nil},
		{"integer", `80`, 80, nil},
		{"string", `"80.5"`, 80.5, nil},
		{"padded string", `" 35 "`, 35, nil},
		{"empty string", `""`, 0, nil},
		{"null", `null`, 0, nil},
		{"word", `"eighty"`, 0, ErrNotANumber},
		{"nan", `"NaN"`, 0, ErrNotANumber},
		{"infinity", `"Inf"`, 0, ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Number
			err := json.Unmarshal([]byte(tt.input), &got)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unmarshal(%s) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInteger_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Integer
		wantErr error
	}{
		{"number", `35`, 35, nil},
		{"string", `"35"`, 35, nil},
		{"whole float", `"35.0"`, 35, nil},
		{"empty string", `""`, 0, nil},
		{"fraction", `35.5`, 0, ErrNotWholeNumber},
		{"fraction string", `"35.5"`, 0, ErrNotWholeNumber},
		{"word", `"old"`, 0, ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Integer
			err := json.Unmarshal([]byte(tt.input), &got)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unmarshal(%s) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBodyFatRequest_FormStrings(t *testing.T) {
	body := `{"age":"35","weight":"80","height":"178","neck":"38","abdomen":"90","forearm":"28","wrist":"18"}`

	var req BodyFatRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if req.Age != 35 || req.Abdomen != 90 || req.Wrist != 18 {
		t.Errorf("Unmarshal() = %+v", req)
	}
}
