// Package classifier talks to the food image model server.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"macromate/internal/validation"
)

var (
	ErrInvalidURL     = errors.New("invalid classifier URL")
	ErrUpstreamStatus = errors.New("classifier returned an error status")
	ErrEmptyResponse  = errors.New("classifier returned no probabilities")
	ErrNoClassNames   = errors.New("classifier config has no class names")
)

// maxResponseBytes bounds the model server response read into memory.
const maxResponseBytes = 1 << 20

// Config is the classifier's config.json, written alongside the model at
// training time.
type Config struct {
	ClassNames          []string `json:"class_names"`
	ConfidenceThreshold float64  `json:"confidence_threshold"`
	ImageSize           []int    `json:"image_size"`
}

// LoadConfig reads a classifier config.json.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse classifier config: %w", err)
	}
	if len(cfg.ClassNames) == 0 {
		return nil, ErrNoClassNames
	}
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = 0.80
	}
	if len(cfg.ImageSize) == 0 {
		cfg.ImageSize = []int{224, 224}
	}
	return &cfg, nil
}

// Remote classifies images by posting them to a model server. The server
// answers either {"probabilities": [...]} or the TensorFlow Serving form
// {"predictions": [[...]]}.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote creates a Remote for the model server at url.
func NewRemote(url string, timeout time.Duration) (*Remote, error) {
	if valid, msg := validation.ValidateURL(url); !valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, msg)
	}
	return &Remote{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}, nil
}

type predictResponse struct {
	Probabilities []float64   `json:"probabilities"`
	Predictions   [][]float64 `json:"predictions"`
}

// Classify returns one probability per class for image.
func (r *Remote) Classify(ctx context.Context, image []byte) ([]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("User-Agent", "MacroMate-FoodClassifier/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	probs := out.Probabilities
	if len(probs) == 0 && len(out.Predictions) > 0 {
		probs = out.Predictions[0]
	}
	if len(probs) == 0 {
		return nil, ErrEmptyResponse
	}
	return probs, nil
}
