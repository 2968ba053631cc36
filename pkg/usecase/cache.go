package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// DefaultCacheTTL is how long the interactive form reuses directory reads
const DefaultCacheTTL = 5 * time.Minute

const (
	membersKey  = "members"
	channelsKey = "channels"

	channelIDCacheSize = 1024
)

// CachedDirectory memoizes complete member listings for a TTL.
// Partial results (those returned with an error) are never cached.
type CachedDirectory struct {
	directory interfaces.Directory
	members   *expirable.LRU[string, []*model.Member]
}

var _ interfaces.Directory = (*CachedDirectory)(nil)

// NewCachedDirectory wraps directory with a TTL cache
func NewCachedDirectory(directory interfaces.Directory, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		directory: directory,
		members:   expirable.NewLRU[string, []*model.Member](1, nil, ttl),
	}
}

// ListActiveMembers returns the cached listing or reads a fresh one
func (c *CachedDirectory) ListActiveMembers(ctx context.Context) ([]*model.Member, error) {
	if members, ok := c.members.Get(membersKey); ok {
		ctxlog.From(ctx).Debug("Member cache hit", "count", len(members))
		return members, nil
	}

	members, err := c.directory.ListActiveMembers(ctx)
	if err != nil {
		return members, err
	}
	c.members.Add(membersKey, members)
	return members, nil
}

// Purge drops the cached listing
func (c *CachedDirectory) Purge() {
	c.members.Purge()
}

// CachedChannels memoizes channel listings and successful name resolutions.
// Not-found results are not cached so newly created channels show up immediately.
type CachedChannels struct {
	resolver   interfaces.ChannelResolver
	channels   *expirable.LRU[string, []*model.Channel]
	channelIDs *expirable.LRU[types.ChannelName, types.ChannelID]
}

var _ interfaces.ChannelResolver = (*CachedChannels)(nil)

// NewCachedChannels wraps resolver with a TTL cache
func NewCachedChannels(resolver interfaces.ChannelResolver, ttl time.Duration) *CachedChannels {
	return &CachedChannels{
		resolver:   resolver,
		channels:   expirable.NewLRU[string, []*model.Channel](1, nil, ttl),
		channelIDs: expirable.NewLRU[types.ChannelName, types.ChannelID](channelIDCacheSize, nil, ttl),
	}
}

// ListAllChannels returns the cached listing or reads a fresh one
func (c *CachedChannels) ListAllChannels(ctx context.Context) ([]*model.Channel, error) {
	if channels, ok := c.channels.Get(channelsKey); ok {
		return channels, nil
	}

	channels, err := c.resolver.ListAllChannels(ctx)
	if err != nil {
		return channels, err
	}
	c.channels.Add(channelsKey, channels)
	return channels, nil
}

// ResolveChannelID returns a cached ID or resolves the name
func (c *CachedChannels) ResolveChannelID(ctx context.Context, name types.ChannelName) (types.ChannelID, error) {
	if id, ok := c.channelIDs.Get(name); ok {
		ctxlog.From(ctx).Debug("Channel cache hit", "name", name, "channelID", id)
		return id, nil
	}

	id, err := c.resolver.ResolveChannelID(ctx, name)
	if err != nil {
		return "", err
	}
	c.channelIDs.Add(name, id)
	return id, nil
}

// Purge drops every cached listing and resolution
func (c *CachedChannels) Purge() {
	c.channels.Purge()
	c.channelIDs.Purge()
}
