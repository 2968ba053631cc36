package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadPlanFromFile(t *testing.T) {
	t.Run("Valid plan", func(t *testing.T) {
		path := writeFile(t, "plan.yaml", `
channels:
  - "#projekty"
  - C0123456789
members:
  - U0000000001
  - U0000000002
`)
		plan, err := config.LoadPlanFromFile(path)
		gt.NoError(t, err).Required()
		gt.A(t, plan.Channels).Equal([]string{"#projekty", "C0123456789"})
		gt.A(t, plan.Members).Length(2)
		gt.False(t, plan.AllMembers)
	})

	t.Run("All members", func(t *testing.T) {
		path := writeFile(t, "plan.yaml", "channels: [general]\nall_members: true\n")
		plan, err := config.LoadPlanFromFile(path)
		gt.NoError(t, err).Required()
		gt.True(t, plan.AllMembers)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := config.LoadPlanFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		gt.Error(t, err)
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := config.LoadPlanFromFile("")
		gt.Error(t, err)
	})

	t.Run("Broken YAML", func(t *testing.T) {
		path := writeFile(t, "plan.yaml", "channels: [general\n")
		_, err := config.LoadPlanFromFile(path)
		gt.Error(t, err)
	})

	t.Run("Invalid plan", func(t *testing.T) {
		path := writeFile(t, "plan.yaml", "channels: [general]\n")
		_, err := config.LoadPlanFromFile(path)
		gt.True(t, errors.Is(err, model.ErrInvalidSelection))
	})
}

func TestSelectionPlan(t *testing.T) {
	t.Run("From flags", func(t *testing.T) {
		sel := config.Selection{Channels: []string{"general"}, Members: []string{"U1"}}
		plan, err := sel.Plan()
		gt.NoError(t, err).Required()
		gt.A(t, plan.Channels).Equal([]string{"general"})
		gt.A(t, plan.Members).Equal([]string{"U1"})
	})

	t.Run("From plan file", func(t *testing.T) {
		path := writeFile(t, "plan.yaml", "channels: [ops]\nall_members: true\n")
		sel := config.Selection{PlanFile: path}
		plan, err := sel.Plan()
		gt.NoError(t, err).Required()
		gt.True(t, plan.AllMembers)
	})

	t.Run("Plan file and flags conflict", func(t *testing.T) {
		path := writeFile(t, "plan.yaml", "channels: [ops]\nall_members: true\n")
		sel := config.Selection{PlanFile: path, AllMembers: true}
		_, err := sel.Plan()
		gt.True(t, errors.Is(err, model.ErrInvalidSelection))
	})

	t.Run("No member mode", func(t *testing.T) {
		sel := config.Selection{Channels: []string{"general"}}
		_, err := sel.Plan()
		gt.True(t, errors.Is(err, model.ErrInvalidSelection))
	})

	t.Run("Batch size above the Slack limit", func(t *testing.T) {
		sel := config.Selection{Channels: []string{"general"}, Members: []string{"U1"}, BatchSize: 31}
		_, err := sel.Plan()
		gt.True(t, errors.Is(err, model.ErrInvalidSelection))
	})
}

func TestSlackValidate(t *testing.T) {
	var s config.Slack
	err := s.Validate()
	gt.True(t, errors.Is(err, model.ErrMissingToken))

	_, err = s.Configure()
	gt.True(t, errors.Is(err, model.ErrMissingToken))

	s.Token = "xoxb-test"
	gt.NoError(t, s.Validate())
	svc, err := s.Configure()
	gt.NoError(t, err)
	gt.NotNil(t, svc)
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("Variables are loaded", func(t *testing.T) {
		t.Setenv("SLACKINVITE_TEST_TOKEN", "")
		os.Unsetenv("SLACKINVITE_TEST_TOKEN")

		path := writeFile(t, ".env", "SLACKINVITE_TEST_TOKEN=xoxb-from-file\n")
		gt.NoError(t, config.LoadEnvFile(path))
		gt.Equal(t, "xoxb-from-file", os.Getenv("SLACKINVITE_TEST_TOKEN"))
	})

	t.Run("Existing variables win", func(t *testing.T) {
		t.Setenv("SLACKINVITE_TEST_TOKEN", "xoxb-from-env")

		path := writeFile(t, ".env", "SLACKINVITE_TEST_TOKEN=xoxb-from-file\n")
		gt.NoError(t, config.LoadEnvFile(path))
		gt.Equal(t, "xoxb-from-env", os.Getenv("SLACKINVITE_TEST_TOKEN"))
	})

	t.Run("Missing file is ignored", func(t *testing.T) {
		gt.NoError(t, config.LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})
}

func TestLoggerConfigure(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     config.Logger
		wantErr bool
	}{
		{"Defaults", config.Logger{Level: "info", Format: "auto"}, false},
		{"JSON debug", config.Logger{Level: "debug", Format: "json"}, false},
		{"Console", config.Logger{Level: "warn", Format: "console"}, false},
		{"Unknown format", config.Logger{Level: "info", Format: "xml"}, true},
		{"Unknown level", config.Logger{Level: "verbose", Format: "json"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := tc.cfg.Configure()
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.NotNil(t, logger)
		})
	}
}
