package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Decision is the outcome of a gate check.
type Decision int

const (
	Allow Decision = iota
	Block
)

// MembershipChecker reports a user's status in a channel.
type MembershipChecker interface {
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

// Gate requires channel membership before a user may subscribe to tips.
// A gate with no channel allows everyone.
type Gate struct {
	api     MembershipChecker
	channel string
	log     zerolog.Logger
}

func NewGate(api MembershipChecker, channel string, log zerolog.Logger) *Gate {
	return &Gate{api: api, channel: channel, log: log.With().Str("component", "gate").Logger()}
}

func (g *Gate) Channel() string {
	return g.channel
}

func (g *Gate) Check(ctx context.Context, userID int64) Decision {
	if g == nil || g.channel == "" {
		return Allow
	}
	member, err := g.api.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: g.channel,
		UserID: userID,
	})
	if err != nil {
		g.log.Warn().Err(err).Int64("user_id", userID).Str("channel", g.channel).Msg("error checking membership")
		return Block
	}
	return decide(member)
}

func decide(member *models.ChatMember) Decision {
	if member == nil {
		return Block
	}
	switch member.Type {
	case models.ChatMemberTypeOwner, models.ChatMemberTypeAdministrator, models.ChatMemberTypeMember:
		return Allow
	case models.ChatMemberTypeRestricted:
		if member.Restricted != nil && member.Restricted.IsMember {
			return Allow
		}
	}
	return Block
}
