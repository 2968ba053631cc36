package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	slackSvc "github.com/secmon-lab/slackinvite/pkg/service/slack"
	"github.com/slack-go/slack"
	"github.com/urfave/cli/v3"
)

// DefaultEnvFile is loaded before flags are parsed when present
const DefaultEnvFile = ".env"

// Slack holds Slack configuration
type Slack struct {
	Token  string
	APIURL string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot or user token (xoxb-/xoxp-) with users:read, channels:read, groups:read and *:write.invites scopes",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACKINVITE_SLACK_TOKEN", "SLACK_TOKEN"),
			Destination: &s.Token,
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Override the Slack Web API base URL (must end with '/')",
			Category:    "Slack",
			Hidden:      true,
			Sources:     cli.EnvVars("SLACKINVITE_SLACK_API_URL"),
			Destination: &s.APIURL,
		},
	}
}

// Validate fails fast when no token has been supplied
func (s *Slack) Validate() error {
	if !s.IsConfigured() {
		return goerr.Wrap(model.ErrMissingToken, "set --slack-token, SLACKINVITE_SLACK_TOKEN or SLACK_TOKEN")
	}
	return nil
}

// Configure creates the Slack service
func (s *Slack) Configure() (*slackSvc.Service, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var options []slack.Option
	if s.APIURL != "" {
		options = append(options, slack.OptionAPIURL(s.APIURL))
	}
	return slackSvc.New(s.Token, options...), nil
}

// IsConfigured checks if a token is available
func (s *Slack) IsConfigured() bool {
	return s.Token != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", s.Token != ""),
		slog.String("api_url", s.APIURL),
	)
}

// LoadEnvFile loads variables from path (DefaultEnvFile when empty) into the
// process environment. A missing file is not an error and variables that are
// already set are kept.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
