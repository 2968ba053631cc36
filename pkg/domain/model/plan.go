package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// Plan describes an invitation run loaded from a YAML file
type Plan struct {
	Channels   []string `yaml:"channels"`              // Channel IDs or names (optionally prefixed with '#')
	Members    []string `yaml:"members,omitempty"`     // Member IDs to invite
	AllMembers bool     `yaml:"all_members,omitempty"` // Invite every active workspace member
}

// Validate validates the plan
func (p *Plan) Validate() error {
	if len(p.Channels) == 0 {
		return goerr.Wrap(ErrInvalidSelection, "at least one channel is required")
	}
	for i, ch := range p.Channels {
		if ParseChannelSelector(ch).IsEmpty() {
			return goerr.Wrap(ErrInvalidSelection, "channel entry is empty", goerr.V("index", i))
		}
	}
	if p.AllMembers && len(p.Members) > 0 {
		return goerr.Wrap(ErrInvalidSelection, "members and all_members are mutually exclusive")
	}
	if !p.AllMembers && len(types.MemberIDs(p.Members)) == 0 {
		return goerr.Wrap(ErrInvalidSelection, "either members or all_members is required")
	}
	return nil
}

// Selectors returns the parsed channel selectors in file order
func (p *Plan) Selectors() []ChannelSelector {
	selectors := make([]ChannelSelector, len(p.Channels))
	for i, ch := range p.Channels {
		selectors[i] = ParseChannelSelector(ch)
	}
	return selectors
}
