package ask

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
	"github.com/kailas-cloud/studentnest/internal/domain/faq"
	logpkg "github.com/kailas-cloud/studentnest/internal/logger"
)

// Service answers questions against the catalog loaded at startup.
type Service struct {
	catalog  faq.Catalog
	scorer   *Scorer
	observer Observer
}

// New creates an ask service. observer can be nil.
func New(catalog faq.Catalog, scorer *Scorer, observer Observer) *Service {
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &Service{catalog: catalog, scorer: scorer, observer: observer}
}

// Ask resolves a question. Blank questions resolve to none without scoring.
func (s *Service) Ask(ctx context.Context, query string) answer.Result {
	res := s.scorer.Resolve(query, s.catalog)

	best := 0
	if c, ok := res.Best(); ok {
		best = c.Score()
	}

	logpkg.FromContext(ctx).Debug("question resolved",
		zap.String("kind", string(res.Kind())),
		zap.Int("best_score", best),
		zap.Int("candidates", len(res.Candidates())),
	)

	if s.observer != nil {
		s.observer.ObserveAnswer(res.Kind(), best)
	}
	return res
}

// Catalog returns the catalog the service answers from.
func (s *Service) Catalog() faq.Catalog { return s.catalog }
