package model

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// Channel is a conversation members can be invited to
type Channel struct {
	ID         types.ChannelID
	Name       string
	IsPrivate  bool
	IsArchived bool
}

// ChannelPage is one page of conversations.list
type ChannelPage struct {
	Channels   []*Channel
	NextCursor string
}

// channelIDPattern matches public (C) and private (G) channel IDs
var channelIDPattern = regexp.MustCompile(`^[CG][A-Z0-9]{8,}$`)

// ChannelSelector names a target channel either by ID or by name.
// Exactly one of ID and Name is set.
type ChannelSelector struct {
	ID   types.ChannelID
	Name types.ChannelName
}

// ParseChannelSelector interprets user input as a channel selector.
// A leading '#' forces name mode; otherwise values shaped like a Slack
// channel ID are taken as IDs and everything else as a name.
func ParseChannelSelector(value string) ChannelSelector {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		return ChannelSelector{Name: types.ChannelName(strings.TrimPrefix(value, "#"))}
	}
	if channelIDPattern.MatchString(value) {
		return ChannelSelector{ID: types.ChannelID(value)}
	}
	return ChannelSelector{Name: types.ChannelName(value)}
}

// IsEmpty reports whether neither ID nor Name is set
func (s ChannelSelector) IsEmpty() bool {
	return s.ID == "" && s.Name == ""
}

// String returns the selector as the user would type it
func (s ChannelSelector) String() string {
	if s.ID != "" {
		return s.ID.String()
	}
	return "#" + s.Name.String()
}
