// Package rotation delivers the next catalog tip to every subscriber once a day.
package rotation

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"MakeupBot/content"
	"MakeupBot/model"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Sender delivers a text message to a user.
type Sender interface {
	Send(ctx context.Context, userID int64, text string) error
}

// SubscriberStore is the part of the user store the rotation reads and writes.
type SubscriberStore interface {
	ListSubscribed(ctx context.Context) ([]model.Subscriber, error)
	AdvanceCursor(ctx context.Context, userID int64, cursor int) error
}

// Report summarises one tick.
type Report struct {
	Run           string
	Total         int
	Delivered     int
	Failed        int
	AdvanceErrors int
}

type Scheduler struct {
	store   SubscriberStore
	sender  Sender
	catalog *content.Catalog
	guard   TickGuard
	workers int
	log     zerolog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewScheduler wires a scheduler. A nil guard means a LocalGuard; workers
// below one run deliveries one at a time.
func NewScheduler(store SubscriberStore, sender Sender, catalog *content.Catalog, guard TickGuard, workers int, log zerolog.Logger) *Scheduler {
	if guard == nil {
		guard = &LocalGuard{}
	}
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		store:   store,
		sender:  sender,
		catalog: catalog,
		guard:   guard,
		workers: workers,
		log:     log.With().Str("component", "rotation").Logger(),
	}
}

// Tick delivers the current tip to every subscriber. Each subscriber is
// handled independently: a failed delivery leaves that user's cursor where
// it was and never affects anyone else.
func (s *Scheduler) Tick(ctx context.Context) Report {
	report := Report{Run: uuid.NewString()}
	log := s.log.With().Str("run", report.Run).Logger()

	subs, err := s.store.ListSubscribed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error listing subscribers")
		return report
	}
	report.Total = len(subs)

	var delivered, failed, advanceErrors atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for _, sub := range subs {
		g.Go(func() error {
			switch s.deliver(ctx, log, sub) {
			case outcomeDelivered:
				delivered.Add(1)
			case outcomeAdvanceFailed:
				delivered.Add(1)
				advanceErrors.Add(1)
			case outcomeSendFailed:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Delivered = int(delivered.Load())
	report.Failed = int(failed.Load())
	report.AdvanceErrors = int(advanceErrors.Load())

	log.Info().
		Int("total", report.Total).
		Int("delivered", report.Delivered).
		Int("failed", report.Failed).
		Int("advance_errors", report.AdvanceErrors).
		Msg("rotation tick finished")
	return report
}

type outcome int

const (
	outcomeDelivered outcome = iota
	outcomeSendFailed
	outcomeAdvanceFailed
)

func (s *Scheduler) deliver(ctx context.Context, log zerolog.Logger, sub model.Subscriber) outcome {
	tip := s.catalog.Item(sub.Cursor)
	if err := s.sender.Send(ctx, sub.UserID, tip); err != nil {
		log.Warn().Err(err).Int64("user_id", sub.UserID).Int("cursor", sub.Cursor).Msg("error delivering tip")
		return outcomeSendFailed
	}

	next := s.catalog.Next(sub.Cursor)
	if err := s.store.AdvanceCursor(ctx, sub.UserID, next); err != nil {
		log.Error().Err(err).Int64("user_id", sub.UserID).Int("cursor", next).Msg("error advancing cursor")
		return outcomeAdvanceFailed
	}
	return outcomeDelivered
}

// Start schedules Tick daily at hour:minute in loc.
func (s *Scheduler) Start(ctx context.Context, hour, minute int, loc *time.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return fmt.Errorf("rotation scheduler already started")
	}

	c := cron.New(cron.WithLocation(loc))
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	_, err := c.AddFunc(spec, func() {
		s.fire(ctx, NominalFireTime(time.Now(), hour, minute, loc))
	})
	if err != nil {
		return fmt.Errorf("error scheduling rotation %q: %w", spec, err)
	}
	c.Start()
	s.cron = c

	s.log.Info().Str("spec", spec).Str("tz", loc.String()).Msg("rotation scheduled")
	return nil
}

// Stop cancels the schedule and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

func (s *Scheduler) fire(ctx context.Context, nominal time.Time) {
	ok, err := s.guard.Acquire(ctx, nominal)
	if err != nil {
		s.log.Error().Err(err).Time("fire_time", nominal).Msg("error acquiring tick guard, skipping tick")
		return
	}
	if !ok {
		s.log.Info().Time("fire_time", nominal).Msg("tick already ran, skipping")
		return
	}
	s.Tick(ctx)
}

// NominalFireTime is the scheduled hour:minute on the local day of now.
func NominalFireTime(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
}
