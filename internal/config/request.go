package config

import (
	"fmt"
	"os"

	"github.com/planwell/retirement-compare/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadRequest loads a comparison request from a YAML file. Fields absent from
// the file keep the documented defaults, so a minimal file can set only
// annual_income and ages.
func LoadRequest(filename string) (*domain.ComparisonRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	req := domain.DefaultComparisonRequest()
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}
