package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Selection holds which members are invited to which channels
type Selection struct {
	Channels   []string
	Members    []string
	AllMembers bool
	PlanFile   string
	Join       bool
	BatchSize  int
}

// Flags returns CLI flags for the invitation selection
func (s *Selection) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "channel",
			Aliases:     []string{"c"},
			Usage:       "Target channel ID or name (repeatable; prefix with # to force name lookup)",
			Category:    "Selection",
			Sources:     cli.EnvVars("SLACKINVITE_CHANNEL"),
			Destination: &s.Channels,
		},
		&cli.StringSliceFlag{
			Name:        "member",
			Aliases:     []string{"m"},
			Usage:       "Member ID to invite (repeatable)",
			Category:    "Selection",
			Destination: &s.Members,
		},
		&cli.BoolFlag{
			Name:        "all-members",
			Usage:       "Invite every active (non-bot, non-deactivated) workspace member",
			Category:    "Selection",
			Destination: &s.AllMembers,
		},
		&cli.StringFlag{
			Name:        "plan",
			Usage:       "YAML file with channels, members and all_members; replaces the flags above",
			Category:    "Selection",
			Sources:     cli.EnvVars("SLACKINVITE_PLAN"),
			Destination: &s.PlanFile,
		},
		&cli.BoolFlag{
			Name:        "join",
			Usage:       "Try to join each channel before inviting (errors are ignored)",
			Category:    "Selection",
			Sources:     cli.EnvVars("SLACKINVITE_JOIN"),
			Destination: &s.Join,
		},
		&cli.IntFlag{
			Name:        "batch-size",
			Usage:       "Members per conversations.invite call (1-30)",
			Category:    "Selection",
			Value:       usecase.InviteBatchSize,
			Sources:     cli.EnvVars("SLACKINVITE_BATCH_SIZE"),
			Destination: &s.BatchSize,
		},
	}
}

// Plan builds the invitation plan from the plan file or the flags
func (s *Selection) Plan() (*model.Plan, error) {
	if s.BatchSize < 0 || s.BatchSize > usecase.InviteBatchSize {
		return nil, goerr.Wrap(model.ErrInvalidSelection, "batch size must be between 1 and 30", goerr.V("batch_size", s.BatchSize))
	}

	if s.PlanFile != "" {
		if len(s.Channels) > 0 || len(s.Members) > 0 || s.AllMembers {
			return nil, goerr.Wrap(model.ErrInvalidSelection, "--plan cannot be combined with --channel, --member or --all-members")
		}
		return LoadPlanFromFile(s.PlanFile)
	}

	plan := &model.Plan{
		Channels:   s.Channels,
		Members:    s.Members,
		AllMembers: s.AllMembers,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// LogValue returns structured log value
func (s Selection) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("channels", s.Channels),
		slog.Int("members", len(s.Members)),
		slog.Bool("all_members", s.AllMembers),
		slog.String("plan", s.PlanFile),
		slog.Bool("join", s.Join),
		slog.Int("batch_size", s.BatchSize),
	)
}
