package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
)

// Question answering metrics.
var (
	AskResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ask_results_total",
			Help:      "Resolved questions by result kind",
		},
		[]string{"kind"}, // single / synthesized / none
	)

	AskBestScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ask_best_score",
			Help:      "Best candidate score of resolved questions (0 when nothing matched)",
			Buckets:   []float64{0, 5, 10, 15, 20, 40, 60, 80, 100},
		},
	)
)

// AskObserver records resolved answers.
type AskObserver struct{}

// ObserveAnswer counts the result kind and records the best score.
func (AskObserver) ObserveAnswer(kind answer.Kind, bestScore int) {
	AskResultsTotal.WithLabelValues(string(kind)).Inc()
	AskBestScore.Observe(float64(bestScore))
}

// Register registers every collector with reg. Collectors already registered
// with reg are skipped, so calling it twice is safe.
func Register(reg prometheus.Registerer) error {
	return register(reg, httpRequestDuration, httpRequestsTotal, AskResultsTotal, AskBestScore)
}

// RegisterAsk registers only the answer collectors, for callers without the HTTP middleware.
func RegisterAsk(reg prometheus.Registerer) error {
	return register(reg, AskResultsTotal, AskBestScore)
}

func register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
