package handler

import (
	"context"
	"fmt"

	"MakeupBot/model"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// API is the subset of *bot.Bot the handlers call.
type API interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

// Telegram shows quiz questions and results, and delivers rotation tips.
type Telegram struct {
	api API
}

func NewTelegram(api API) *Telegram {
	return &Telegram{api: api}
}

func (t *Telegram) send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) error {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := t.api.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("error sending message to %d: %w", chatID, err)
	}
	return nil
}

func (t *Telegram) Ask(ctx context.Context, userID int64, d model.Dimension) error {
	return t.send(ctx, userID, questions[d], answerKeyboard(d))
}

func (t *Telegram) ShowResult(ctx context.Context, userID int64, text string) error {
	return t.send(ctx, userID, text, resultKeyboard())
}

// Send delivers a plain tip. Tips are sent without a parse mode so catalog
// text never needs escaping.
func (t *Telegram) Send(ctx context.Context, userID int64, text string) error {
	_, err := t.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: userID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("error sending tip to %d: %w", userID, err)
	}
	return nil
}
