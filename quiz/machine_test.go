package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"

	"MakeupBot/advice"
	"MakeupBot/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	ensured  []int64
	answers  map[int64]model.Answers
	writes   int
	failSave error
}

func newFakeStore() *fakeStore {
	return &fakeStore{answers: make(map[int64]model.Answers)}
}

func (f *fakeStore) Ensure(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensured = append(f.ensured, userID)
	return nil
}

func (f *fakeStore) SetLastAnswers(_ context.Context, userID int64, answers model.Answers) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.failSave != nil {
		return f.failSave
	}
	f.answers[userID] = answers
	return nil
}

type fakePresenter struct {
	mu      sync.Mutex
	asked   []model.Dimension
	results []string
	fail    error
}

func (p *fakePresenter) Ask(_ context.Context, _ int64, d model.Dimension) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, d)
	return p.fail
}

func (p *fakePresenter) ShowResult(_ context.Context, _ int64, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, text)
	return p.fail
}

func newTestMachine() (*Machine, *fakeStore, *fakePresenter) {
	store := newFakeStore()
	presenter := &fakePresenter{}
	m := NewMachine(NewSessions(zerolog.Nop()), store, presenter, zerolog.Nop())
	return m, store, presenter
}

var sample = model.Answers{Skin: "dry", Tone: "light", Undertone: "cool", Eyes: "almond", Occasion: "daily"}

func submitAll(t *testing.T, m *Machine, userID int64, a model.Answers) error {
	t.Helper()
	var err error
	for _, d := range model.Dimensions {
		err = m.Submit(context.Background(), userID, model.Answer{Dimension: d, Value: a.Get(d)})
		if d != model.DimensionOccasion {
			require.NoError(t, err)
		}
	}
	return err
}

func TestMachine_StartAsksFirstQuestion(t *testing.T) {
	m, _, presenter := newTestMachine()

	assert.Equal(t, model.StageIdle, m.Stage(1))
	require.NoError(t, m.Start(context.Background(), 1))

	assert.Equal(t, model.StageAskSkin, m.Stage(1))
	assert.Equal(t, []model.Dimension{model.DimensionSkin}, presenter.asked)
}

func TestMachine_AsksQuestionsInOrder(t *testing.T) {
	m, _, presenter := newTestMachine()
	ctx := context.Background()
	require.NoError(t, m.Start(ctx, 1))

	stages := []model.Stage{model.StageAskTone, model.StageAskUndertone, model.StageAskEyes, model.StageAskOccasion}
	for i, d := range model.Dimensions[:4] {
		require.NoError(t, m.Submit(ctx, 1, model.Answer{Dimension: d, Value: sample.Get(d)}))
		assert.Equal(t, stages[i], m.Stage(1))
	}
	assert.Equal(t, model.Dimensions, presenter.asked)
}

func TestMachine_CompletionWritesThrough(t *testing.T) {
	m, store, presenter := newTestMachine()
	require.NoError(t, m.Start(context.Background(), 7))

	require.NoError(t, submitAll(t, m, 7, sample))

	require.Len(t, presenter.results, 1)
	assert.NotEmpty(t, presenter.results[0])
	assert.Equal(t, advice.Recommend(sample, advice.Short), presenter.results[0])
	assert.Equal(t, sample, store.answers[7])
	assert.Contains(t, store.ensured, int64(7))

	assert.Equal(t, model.StageIdle, m.Stage(7))
	assert.Equal(t, model.Answers{}, m.Partial(7))
	assert.Equal(t, 0, m.sessions.Len())
}

func TestMachine_RestartMidQuiz(t *testing.T) {
	m, store, presenter := newTestMachine()
	ctx := context.Background()
	require.NoError(t, m.Start(ctx, 3))
	for _, d := range model.Dimensions[:3] {
		require.NoError(t, m.Submit(ctx, 3, model.Answer{Dimension: d, Value: sample.Get(d)}))
	}
	require.Equal(t, model.StageAskEyes, m.Stage(3))

	require.NoError(t, m.Restart(ctx, 3))

	assert.Equal(t, model.StageAskSkin, m.Stage(3))
	assert.Equal(t, model.Answers{}, m.Partial(3))
	assert.Equal(t, 0, store.writes)
	assert.Empty(t, store.answers)
	assert.Equal(t, model.DimensionSkin, presenter.asked[len(presenter.asked)-1])
}

func TestMachine_StartDiscardsPartialAnswers(t *testing.T) {
	m, store, _ := newTestMachine()
	ctx := context.Background()
	require.NoError(t, m.Start(ctx, 3))
	require.NoError(t, m.Submit(ctx, 3, model.Answer{Dimension: model.DimensionSkin, Value: "oily"}))

	require.NoError(t, m.Start(ctx, 3))
	assert.Equal(t, model.StageAskSkin, m.Stage(3))
	assert.Equal(t, model.Answers{}, m.Partial(3))

	require.NoError(t, submitAll(t, m, 3, sample))
	assert.Equal(t, sample, store.answers[3])
}

func TestMachine_OutOfOrderAnswer(t *testing.T) {
	m, store, _ := newTestMachine()
	ctx := context.Background()
	require.NoError(t, m.Start(ctx, 1))

	err := m.Submit(ctx, 1, model.Answer{Dimension: model.DimensionEyes, Value: "big"})
	assert.ErrorIs(t, err, model.ErrOutOfOrder)
	assert.Equal(t, model.StageAskSkin, m.Stage(1))
	assert.Equal(t, model.Answers{}, m.Partial(1))

	err = m.Submit(ctx, 1, model.Answer{Dimension: "hair", Value: "long"})
	assert.ErrorIs(t, err, model.ErrOutOfOrder)
	assert.Equal(t, 0, store.writes)
}

func TestMachine_SubmitWithoutSession(t *testing.T) {
	m, _, _ := newTestMachine()
	err := m.Submit(context.Background(), 1, model.Answer{Dimension: model.DimensionSkin, Value: "dry"})
	assert.ErrorIs(t, err, model.ErrNoSession)
}

func TestMachine_SaveFailureStillShowsResult(t *testing.T) {
	m, store, presenter := newTestMachine()
	store.failSave = errors.New("disk full")
	require.NoError(t, m.Start(context.Background(), 2))

	err := submitAll(t, m, 2, sample)
	assert.ErrorIs(t, err, store.failSave)
	assert.Len(t, presenter.results, 1)
	assert.Equal(t, model.StageIdle, m.Stage(2))
}

func TestMachine_PresenterFailureIsNotFatal(t *testing.T) {
	m, store, presenter := newTestMachine()
	presenter.fail = errors.New("bot blocked")
	require.NoError(t, m.Start(context.Background(), 4))

	require.NoError(t, submitAll(t, m, 4, sample))
	assert.Equal(t, sample, store.answers[4])
}

func TestMachine_SessionsAreIndependent(t *testing.T) {
	m, store, _ := newTestMachine()
	ctx := context.Background()

	var wg sync.WaitGroup
	for id := int64(1); id <= 10; id++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			assert.NoError(t, m.Start(ctx, id))
			for _, d := range model.Dimensions {
				assert.NoError(t, m.Submit(ctx, id, model.Answer{Dimension: d, Value: sample.Get(d)}))
			}
		}(id)
	}
	wg.Wait()

	for id := int64(1); id <= 10; id++ {
		assert.Equal(t, sample, store.answers[id])
	}
}
