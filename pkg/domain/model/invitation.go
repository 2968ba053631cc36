package model

import "github.com/secmon-lab/slackinvite/pkg/domain/types"

// Batch is a group of members submitted in a single conversations.invite call
type Batch struct {
	Channel types.ChannelID
	Members []types.MemberID
}

// Outcome records the classified result of submitting one batch
type Outcome struct {
	Batch   Batch
	Channel types.ChannelID
	Status  types.InviteStatus
	Detail  string // Raw Slack error code or remediation text; empty when accepted
}

// InvitationReport collects every outcome of a run in submission order
type InvitationReport struct {
	RunID    types.RunID
	Outcomes []*Outcome
}

// Summary counts outcomes per status
type Summary struct {
	Batches          int `json:"batches"`
	Accepted         int `json:"accepted"`
	AlreadyMember    int `json:"already_member"`
	ChannelNotJoined int `json:"channel_not_joined"`
	OtherError       int `json:"other_error"`
}

// Add appends outcomes to the report
func (r *InvitationReport) Add(outcomes ...*Outcome) {
	r.Outcomes = append(r.Outcomes, outcomes...)
}

// Summary aggregates the report
func (r *InvitationReport) Summary() Summary {
	var s Summary
	for _, o := range r.Outcomes {
		s.Batches++
		switch o.Status {
		case types.InviteStatusAccepted:
			s.Accepted++
		case types.InviteStatusAlreadyMember:
			s.AlreadyMember++
		case types.InviteStatusChannelNotJoined:
			s.ChannelNotJoined++
		default:
			s.OtherError++
		}
	}
	return s
}

// HasFailures reports whether any batch ended without the desired membership
func (r *InvitationReport) HasFailures() bool {
	for _, o := range r.Outcomes {
		if !o.Status.IsSatisfied() {
			return true
		}
	}
	return false
}

// ForChannel returns the outcomes of one channel in order
func (r *InvitationReport) ForChannel(channelID types.ChannelID) []*Outcome {
	var outcomes []*Outcome
	for _, o := range r.Outcomes {
		if o.Channel == channelID {
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}
