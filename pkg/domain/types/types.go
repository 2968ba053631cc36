package types

import (
	"github.com/google/uuid"
)

// MemberID represents a Slack workspace member identifier (e.g. U0123ABCD)
type MemberID string

// String returns the string representation
func (id MemberID) String() string {
	return string(id)
}

// ChannelID represents a Slack channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// ChannelName represents a Slack channel name without the leading '#'
type ChannelName string

// String returns the string representation
func (n ChannelName) String() string {
	return string(n)
}

// RunID identifies one invitation run in logs and reports
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// MemberIDs converts raw strings into member IDs, skipping empty values
func MemberIDs(values []string) []MemberID {
	ids := make([]MemberID, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		ids = append(ids, MemberID(v))
	}
	return ids
}

// MemberIDStrings converts member IDs back into plain strings for API calls
func MemberIDStrings(ids []MemberID) []string {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = string(id)
	}
	return values
}
