// Package server exposes a small HTTP endpoint for liveness probes and
// operational counters.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"MakeupBot/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Subscribers lists the users that receive daily tips.
type Subscribers interface {
	ListSubscribed(ctx context.Context) ([]model.Subscriber, error)
}

// SessionCounter reports how many quizzes are in progress.
type SessionCounter interface {
	Len() int
}

type Health struct {
	subscribers Subscribers
	sessions    SessionCounter
	log         zerolog.Logger

	srv *http.Server
}

func NewHealth(subscribers Subscribers, sessions SessionCounter, log zerolog.Logger) *Health {
	return &Health{
		subscribers: subscribers,
		sessions:    sessions,
		log:         log.With().Str("component", "health").Logger(),
	}
}

// Router builds the gin engine serving /healthz and /stats.
func (h *Health) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", h.healthz)
	r.GET("/stats", h.stats)
	return r
}

func (h *Health) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Health) stats(c *gin.Context) {
	subs, err := h.subscribers.ListSubscribed(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error listing subscribers")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	body := gin.H{"subscribers": len(subs)}
	if h.sessions != nil {
		body["active_quizzes"] = h.sessions.Len()
	}
	c.JSON(http.StatusOK, body)
}

// Start listens on addr and serves in the background.
func (h *Health) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", addr, err)
	}
	h.srv = &http.Server{
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := h.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.Error().Err(err).Msg("health server stopped")
		}
	}()
	h.log.Info().Str("addr", ln.Addr().String()).Msg("health server listening")
	return nil
}

func (h *Health) Stop(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
