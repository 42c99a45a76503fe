// Package identity turns platform user and channel IDs into display names.
package identity

import (
	"context"
	"fmt"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// Resolver looks up display names. Any failure is returned to the caller.
type Resolver interface {
	UserName(ctx context.Context, userID string) (string, error)
	ChannelName(ctx context.Context, channelID string) (string, error)
}

// PlatformResolver resolves names with one platform call per lookup.
type PlatformResolver struct {
	client platform.Client
}

var _ Resolver = (*PlatformResolver)(nil)

func NewPlatformResolver(client platform.Client) *PlatformResolver {
	if client == nil {
		panic("identity: platform client cannot be nil")
	}
	return &PlatformResolver{client: client}
}

func (r *PlatformResolver) UserName(ctx context.Context, userID string) (string, error) {
	user, err := r.client.GetUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("resolve user %s: %w", userID, err)
	}
	return user.Name(), nil
}

func (r *PlatformResolver) ChannelName(ctx context.Context, channelID string) (string, error) {
	channel, err := r.client.GetChannel(ctx, channelID)
	if err != nil {
		return "", fmt.Errorf("resolve channel %s: %w", channelID, err)
	}
	return channel.Name, nil
}
