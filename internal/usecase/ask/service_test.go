package ask

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
	logpkg "github.com/kailas-cloud/studentnest/internal/logger"
	"github.com/kailas-cloud/studentnest/internal/repository/catalog"
)

// --- Mocks ---

type observation struct {
	kind answer.Kind
	best int
}

type mockObserver struct {
	seen []observation
}

func (m *mockObserver) ObserveAnswer(kind answer.Kind, best int) {
	m.seen = append(m.seen, observation{kind: kind, best: best})
}

// --- Tests ---

func TestAsk_ObservesEveryOutcome(t *testing.T) {
	obs := &mockObserver{}
	svc := New(catalog.Default(), nil, obs)
	ctx := context.Background()

	svc.Ask(ctx, "How do I register for courses this semester?")
	svc.Ask(ctx, "passport")
	svc.Ask(ctx, "   ")

	require.Len(t, obs.seen, 3)
	assert.Equal(t, observation{answer.KindSingle, 100}, obs.seen[0])
	assert.Equal(t, observation{answer.KindSynthesized, 10}, obs.seen[1])
	assert.Equal(t, observation{answer.KindNone, 0}, obs.seen[2])
}

func TestAsk_NilObserver(t *testing.T) {
	svc := New(catalog.Default(), NewScorer(nil), nil)

	res := svc.Ask(context.Background(), "grades")

	assert.Equal(t, answer.KindSingle, res.Kind())
	assert.Equal(t, 15, svc.Catalog().Len())
}

func TestAsk_LogsResolution(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logpkg.ContextWithLogger(context.Background(), zap.New(core))
	svc := New(catalog.Default(), nil, nil)

	svc.Ask(ctx, "xyzabc123")

	entries := logs.FilterMessage("question resolved").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "none", fields["kind"])
	assert.Equal(t, int64(0), fields["best_score"])
}
