package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MakeupBot/advice"
	"MakeupBot/model"
	"MakeupBot/quiz"
	"MakeupBot/repo"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Router maps Telegram commands and button presses onto the quiz and the
// user store. In private chats the chat id and the user id are the same, and
// that id keys every record.
type Router struct {
	api     API
	machine *quiz.Machine
	store   repo.UserStore
	gate    *Gate
	log     zerolog.Logger
}

func NewRouter(api API, machine *quiz.Machine, store repo.UserStore, gate *Gate, log zerolog.Logger) *Router {
	return &Router{
		api:     api,
		machine: machine,
		store:   store,
		gate:    gate,
		log:     log.With().Str("component", "router").Logger(),
	}
}

// Register attaches every command and callback handler to b.
func (r *Router) Register(b *bot.Bot) {
	commands := map[string]bot.HandlerFunc{
		"/start":   r.onStart,
		"/help":    r.onHelp,
		"/my":      r.onMy,
		"/stop":    r.onStop,
		"/restart": r.onRestart,
	}
	for cmd, h := range commands {
		b.RegisterHandlerMatchFunc(commandMatch(cmd), h)
	}

	callbacks := map[string]bot.HandlerFunc{
		cbStartQuiz: r.onStartQuiz,
		cbSave:      r.onSave,
		cbDetails:   r.onDetails,
		cbTipsOn:    r.onTipsOn,
		cbTipsYes:   r.onTipsYes,
		cbTipsNo:    r.onTipsNo,
	}
	for data, h := range callbacks {
		b.RegisterHandler(bot.HandlerTypeCallbackQueryData, data, bot.MatchTypeExact, h)
	}
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, answerPrefix, bot.MatchTypePrefix, r.onAnswer)
}

// commandMatch matches a message whose first word is cmd, also in the
// forms "/cmd payload" (deep links) and "/cmd@BotName" (group mentions).
func commandMatch(cmd string) bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}
		fields := strings.Fields(update.Message.Text)
		if len(fields) == 0 {
			return false
		}
		word, _, _ := strings.Cut(fields[0], "@")
		return word == cmd
	}
}

// Fallback answers any message no handler matched.
func Fallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   textUnknown,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("error sending message")
	}
}

func (r *Router) reply(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := r.api.SendMessage(ctx, params); err != nil {
		r.log.Error().Err(err).Int64("user_id", chatID).Msg("error sending message")
	}
}

// ack stops the button spinner and returns the pressing user's id.
func (r *Router) ack(ctx context.Context, update *models.Update) (int64, bool) {
	if update.CallbackQuery == nil {
		return 0, false
	}
	_, err := r.api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})
	if err != nil {
		r.log.Warn().Err(err).Msg("error answering callback query")
	}
	return update.CallbackQuery.From.ID, true
}

// ensure creates the user record; a failure is reported to the user.
func (r *Router) ensure(ctx context.Context, userID int64) bool {
	if err := r.store.Ensure(ctx, userID); err != nil {
		r.log.Error().Err(err).Int64("user_id", userID).Msg("error ensuring user")
		r.reply(ctx, userID, textStorageError, nil)
		return false
	}
	return true
}

func messageChat(update *models.Update) (int64, bool) {
	if update.Message == nil {
		return 0, false
	}
	return update.Message.Chat.ID, true
}

func (r *Router) onStart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, ok := messageChat(update)
	if !ok || !r.ensure(ctx, chatID) {
		return
	}
	r.reply(ctx, chatID, textWelcome, startKeyboard())
}

func (r *Router) onHelp(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if chatID, ok := messageChat(update); ok {
		r.reply(ctx, chatID, textHelp, nil)
	}
}

func (r *Router) onMy(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, ok := messageChat(update)
	if !ok || !r.ensure(ctx, chatID) {
		return
	}
	text, found, err := r.store.LastResult(ctx, chatID)
	if err != nil {
		r.log.Error().Err(err).Int64("user_id", chatID).Msg("error reading last result")
		r.reply(ctx, chatID, textStorageError, nil)
		return
	}
	if !found || text == "" {
		r.reply(ctx, chatID, textNoResult, nil)
		return
	}
	r.reply(ctx, chatID, textSavedPrefix+text, nil)
}

func (r *Router) onStop(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, ok := messageChat(update)
	if !ok || !r.ensure(ctx, chatID) {
		return
	}
	if err := r.store.SetSubscribed(ctx, chatID, false); err != nil {
		r.log.Error().Err(err).Int64("user_id", chatID).Msg("error unsubscribing")
		r.reply(ctx, chatID, textStorageError, nil)
		return
	}
	r.log.Info().Int64("user_id", chatID).Msg("tips disabled")
	r.reply(ctx, chatID, textTipsOff, nil)
}

func (r *Router) onRestart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, ok := messageChat(update)
	if !ok || !r.ensure(ctx, chatID) {
		return
	}
	if err := r.machine.Restart(ctx, chatID); err != nil {
		r.log.Error().Err(err).Int64("user_id", chatID).Msg("error restarting quiz")
	}
}

func (r *Router) onStartQuiz(ctx context.Context, _ *bot.Bot, update *models.Update) {
	userID, ok := r.ack(ctx, update)
	if !ok || !r.ensure(ctx, userID) {
		return
	}
	if err := r.machine.Start(ctx, userID); err != nil {
		r.log.Error().Err(err).Int64("user_id", userID).Msg("error starting quiz")
	}
}

func (r *Router) onAnswer(ctx context.Context, _ *bot.Bot, update *models.Update) {
	userID, ok := r.ack(ctx, update)
	if !ok {
		return
	}
	answer, ok := decodeAnswer(update.CallbackQuery.Data)
	if !ok {
		r.log.Warn().Int64("user_id", userID).Str("data", update.CallbackQuery.Data).Msg("unrecognised answer button")
		return
	}

	// Buttons of earlier questions stay clickable in the chat history.
	expected, inProgress := r.machine.Expects(userID)
	if !inProgress || expected != answer.Dimension {
		r.reply(ctx, userID, textStaleAnswer, nil)
		return
	}

	err := r.machine.Submit(ctx, userID, answer)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrOutOfOrder), errors.Is(err, model.ErrNoSession):
		r.reply(ctx, userID, textStaleAnswer, nil)
	default:
		r.log.Error().Err(err).Int64("user_id", userID).Msg("error submitting answer")
	}
}

// lastAnswers loads the user's saved answers; when they are missing it asks
// the user to take the quiz again.
func (r *Router) lastAnswers(ctx context.Context, userID int64) (model.Answers, bool) {
	answers, found, err := r.store.LastAnswers(ctx, userID)
	if err != nil {
		r.log.Error().Err(err).Int64("user_id", userID).Msg("error reading last answers")
		r.reply(ctx, userID, textStorageError, nil)
		return model.Answers{}, false
	}
	if !found {
		r.reply(ctx, userID, textRedoQuiz, nil)
		return model.Answers{}, false
	}
	return answers, true
}

func (r *Router) onDetails(ctx context.Context, _ *bot.Bot, update *models.Update) {
	userID, ok := r.ack(ctx, update)
	if !ok {
		return
	}
	answers, ok := r.lastAnswers(ctx, userID)
	if !ok {
		return
	}
	r.reply(ctx, userID, advice.Recommend(answers, advice.Full), nil)
}

func (r *Router) onSave(ctx context.Context, _ *bot.Bot, update *models.Update) {
	userID, ok := r.ack(ctx, update)
	if !ok || !r.ensure(ctx, userID) {
		return
	}
	answers, ok := r.lastAnswers(ctx, userID)
	if !ok {
		return
	}
	if err := r.store.SetLastResult(ctx, userID, advice.Recommend(answers, advice.Full)); err != nil {
		r.log.Error().Err(err).Int64("user_id", userID).Msg("error saving result")
		r.reply(ctx, userID, textStorageError, nil)
		return
	}
	r.reply(ctx, userID, textSaved, nil)
}

func (r *Router) onTipsOn(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if userID, ok := r.ack(ctx, update); ok {
		r.reply(ctx, userID, textTipsOffer, tipsConfirmKeyboard())
	}
}

func (r *Router) onTipsYes(ctx context.Context, _ *bot.Bot, update *models.Update) {
	userID, ok := r.ack(ctx, update)
	if !ok {
		return
	}
	if r.gate.Check(ctx, userID) == Block {
		r.reply(ctx, userID, fmt.Sprintf(textJoinChannel, r.gate.Channel()), nil)
		return
	}
	if !r.ensure(ctx, userID) {
		return
	}
	if err := r.store.SetSubscribed(ctx, userID, true); err != nil {
		r.log.Error().Err(err).Int64("user_id", userID).Msg("error subscribing")
		r.reply(ctx, userID, textStorageError, nil)
		return
	}
	r.log.Info().Int64("user_id", userID).Msg("tips enabled")
	r.reply(ctx, userID, textTipsOn, nil)
}

func (r *Router) onTipsNo(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if userID, ok := r.ack(ctx, update); ok {
		r.reply(ctx, userID, textTipsLater, nil)
	}
}

// LogUpdates logs every incoming message and button press and puts log
// into the handler context.
func LogUpdates(log zerolog.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			switch {
			case update.Message != nil && update.Message.From != nil:
				log.Debug().Str("username", update.Message.From.Username).Str("text", update.Message.Text).Msg("message")
			case update.CallbackQuery != nil:
				log.Debug().Str("username", update.CallbackQuery.From.Username).Str("data", update.CallbackQuery.Data).Msg("callback")
			}
			next(log.WithContext(ctx), b, update)
		}
	}
}
