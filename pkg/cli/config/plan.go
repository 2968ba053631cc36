package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadPlanFromFile loads an invitation plan from a YAML file
func LoadPlanFromFile(path string) (*model.Plan, error) {
	if path == "" {
		return nil, goerr.New("plan file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "plan file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read plan file",
			goerr.V("path", path))
	}

	var plan model.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML plan",
			goerr.V("path", path))
	}

	if err := plan.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid plan",
			goerr.V("path", path))
	}

	return &plan, nil
}
