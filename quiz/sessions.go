package quiz

import (
	"context"
	"sync"

	"MakeupBot/model"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

const (
	eventStart  = "start"
	eventAnswer = "answer"
	eventFinish = "finish"
)

// transitions is the questionnaire order. Every answer moves one step forward.
var transitions = fsm.Events{
	{Name: eventStart, Src: []string{model.StageIdle.String()}, Dst: model.StageAskSkin.String()},
	{Name: eventAnswer, Src: []string{model.StageAskSkin.String()}, Dst: model.StageAskTone.String()},
	{Name: eventAnswer, Src: []string{model.StageAskTone.String()}, Dst: model.StageAskUndertone.String()},
	{Name: eventAnswer, Src: []string{model.StageAskUndertone.String()}, Dst: model.StageAskEyes.String()},
	{Name: eventAnswer, Src: []string{model.StageAskEyes.String()}, Dst: model.StageAskOccasion.String()},
	{Name: eventAnswer, Src: []string{model.StageAskOccasion.String()}, Dst: model.StageCompleted.String()},
	{Name: eventFinish, Src: []string{model.StageCompleted.String()}, Dst: model.StageIdle.String()},
}

// session is one in-progress questionnaire. It lives only in memory.
type session struct {
	mu      sync.Mutex
	fsm     *fsm.FSM
	answers model.Answers
}

func newSession(userID int64, log zerolog.Logger) *session {
	return &session{
		fsm: fsm.NewFSM(model.StageIdle.String(), transitions, fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Debug().Int64("user_id", userID).Str("from", e.Src).Str("to", e.Dst).Msg("quiz transition")
			},
		}),
	}
}

func (s *session) stage() model.Stage {
	return model.StageFromString(s.fsm.Current())
}

// Sessions maps user ids to their in-progress questionnaire.
type Sessions struct {
	mu   sync.Mutex
	byID map[int64]*session
	log  zerolog.Logger
}

func NewSessions(log zerolog.Logger) *Sessions {
	return &Sessions{
		byID: make(map[int64]*session),
		log:  log,
	}
}

// fresh replaces any session of userID with a new idle one.
func (ss *Sessions) fresh(userID int64) *session {
	s := newSession(userID, ss.log)
	ss.mu.Lock()
	ss.byID[userID] = s
	ss.mu.Unlock()
	return s
}

func (ss *Sessions) get(userID int64) *session {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.byID[userID]
}

// drop removes s if it is still the current session of userID.
func (ss *Sessions) drop(userID int64, s *session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.byID[userID] == s {
		delete(ss.byID, userID)
	}
}

// Len returns the number of questionnaires in progress.
func (ss *Sessions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.byID)
}
