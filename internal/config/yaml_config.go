package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"macromate/internal/models"
)

// ErrNoTopics is returned when a knowledge file defines no topics.
var ErrNoTopics = errors.New("knowledge file defines no topics")

// KnowledgeFile is the structure of a knowledge YAML file.
type KnowledgeFile struct {
	Topics []models.Topic `yaml:"topics"`
}

// ParseTopics decodes a knowledge YAML document, keeping topic order.
func ParseTopics(data []byte) ([]models.Topic, error) {
	var kf KnowledgeFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}
	if len(kf.Topics) == 0 {
		return nil, ErrNoTopics
	}
	return kf.Topics, nil
}

// LoadTopics reads the knowledge file at path.
// Returns nil without error if the file doesn't exist.
func LoadTopics(path string) ([]models.Topic, error) {
	data, err := readOptional(path)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseTopics(data)
}

// ParseLinearModel decodes a linear model YAML document.
func ParseLinearModel(data []byte) (*models.LinearModelSpec, error) {
	var spec models.LinearModelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}
	return &spec, nil
}

// LoadLinearModel reads the linear model file at path.
// Returns nil without error if the file doesn't exist.
func LoadLinearModel(path string) (*models.LinearModelSpec, error) {
	data, err := readOptional(path)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseLinearModel(data)
}

func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
