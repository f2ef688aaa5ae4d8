package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"MakeupBot/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscribers struct {
	subs []model.Subscriber
	err  error
}

func (f fakeSubscribers) ListSubscribed(context.Context) ([]model.Subscriber, error) {
	return f.subs, f.err
}

type fixedSessions int

func (n fixedSessions) Len() int { return int(n) }

func get(t *testing.T, h *Health, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := NewHealth(fakeSubscribers{}, nil, zerolog.Nop())
	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStats(t *testing.T) {
	subs := fakeSubscribers{subs: []model.Subscriber{{UserID: 1}, {UserID: 2, Cursor: 5}}}
	h := NewHealth(subs, fixedSessions(3), zerolog.Nop())

	rec := get(t, h, "/stats")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"subscribers":2,"active_quizzes":3}`, rec.Body.String())
}

func TestStats_StorageError(t *testing.T) {
	h := NewHealth(fakeSubscribers{err: errors.New("db down")}, nil, zerolog.Nop())
	rec := get(t, h, "/stats")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStartStop(t *testing.T) {
	h := NewHealth(fakeSubscribers{}, nil, zerolog.Nop())
	require.NoError(t, h.Start("127.0.0.1:0"))
	assert.NoError(t, h.Stop(context.Background()))
}
