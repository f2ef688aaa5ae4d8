// Package quiz drives a user through the questionnaire one answer at a time.
package quiz

import (
	"context"
	"fmt"

	"MakeupBot/advice"
	"MakeupBot/model"

	"github.com/rs/zerolog"
)

// Presenter shows questions and results to the user.
type Presenter interface {
	Ask(ctx context.Context, userID int64, d model.Dimension) error
	ShowResult(ctx context.Context, userID int64, text string) error
}

// AnswerStore is the part of the user store written on completion.
type AnswerStore interface {
	Ensure(ctx context.Context, userID int64) error
	SetLastAnswers(ctx context.Context, userID int64, answers model.Answers) error
}

type Machine struct {
	sessions  *Sessions
	store     AnswerStore
	presenter Presenter
	log       zerolog.Logger
}

func NewMachine(sessions *Sessions, store AnswerStore, presenter Presenter, log zerolog.Logger) *Machine {
	return &Machine{
		sessions:  sessions,
		store:     store,
		presenter: presenter,
		log:       log.With().Str("component", "quiz").Logger(),
	}
}

// Start discards any partial answers and asks the first question.
func (m *Machine) Start(ctx context.Context, userID int64) error {
	s := m.sessions.fresh(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fsm.Event(ctx, eventStart); err != nil {
		return fmt.Errorf("error starting quiz: %w", err)
	}
	m.ask(ctx, userID, model.DimensionSkin)
	return nil
}

// Restart abandons the current questionnaire without saving it and starts over.
func (m *Machine) Restart(ctx context.Context, userID int64) error {
	m.log.Info().Int64("user_id", userID).Stringer("stage", m.Stage(userID)).Msg("quiz restarted")
	return m.Start(ctx, userID)
}

// Submit records an answer for the question currently asked. An answer for
// any other dimension returns model.ErrOutOfOrder and leaves the session as is.
func (m *Machine) Submit(ctx context.Context, userID int64, answer model.Answer) error {
	s := m.sessions.get(userID)
	if s == nil {
		return model.ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	expected, ok := s.stage().Expects()
	if !ok {
		return model.ErrNoSession
	}
	if answer.Dimension != expected {
		return fmt.Errorf("%w: expected %s, got %s", model.ErrOutOfOrder, expected, answer.Dimension)
	}

	s.answers = s.answers.With(answer.Dimension, answer.Value)
	if err := s.fsm.Event(ctx, eventAnswer); err != nil {
		return fmt.Errorf("error advancing quiz: %w", err)
	}

	if next, ok := s.stage().Expects(); ok {
		m.ask(ctx, userID, next)
		return nil
	}
	return m.complete(ctx, userID, s)
}

// complete persists the answer snapshot, shows the short plan and resets
// the session. The result is shown even if saving fails.
func (m *Machine) complete(ctx context.Context, userID int64, s *session) error {
	answers := s.answers
	defer func() {
		if err := s.fsm.Event(ctx, eventFinish); err != nil {
			m.log.Error().Err(err).Int64("user_id", userID).Msg("error finishing quiz")
		}
		s.answers = model.Answers{}
		m.sessions.drop(userID, s)
	}()

	var saveErr error
	if err := m.store.Ensure(ctx, userID); err != nil {
		saveErr = err
	} else if err := m.store.SetLastAnswers(ctx, userID, answers); err != nil {
		saveErr = err
	}

	text := advice.Recommend(answers, advice.Short)
	if err := m.presenter.ShowResult(ctx, userID, text); err != nil {
		m.log.Error().Err(err).Int64("user_id", userID).Msg("error sending result")
	}

	m.log.Info().Int64("user_id", userID).Str("occasion", answers.Occasion).Msg("quiz completed")
	if saveErr != nil {
		return fmt.Errorf("error saving answers: %w", saveErr)
	}
	return nil
}

func (m *Machine) ask(ctx context.Context, userID int64, d model.Dimension) {
	if err := m.presenter.Ask(ctx, userID, d); err != nil {
		m.log.Error().Err(err).Int64("user_id", userID).Str("dimension", string(d)).Msg("error sending question")
	}
}

// Stage returns where userID currently is in the questionnaire.
func (m *Machine) Stage(userID int64) model.Stage {
	s := m.sessions.get(userID)
	if s == nil {
		return model.StageIdle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage()
}

// Expects returns the dimension the user is being asked, if a quiz is in progress.
func (m *Machine) Expects(userID int64) (model.Dimension, bool) {
	return m.Stage(userID).Expects()
}

// Partial returns the answers collected so far in the user's session.
func (m *Machine) Partial(userID int64) model.Answers {
	s := m.sessions.get(userID)
	if s == nil {
		return model.Answers{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers
}
