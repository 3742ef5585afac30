package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/query"
	"github.com/courtside/dashboard-api/internal/stats"
)

type calculatorService struct {
	up        Upstream
	cache     *query.Cache
	ttls      TTLs
	threshold float64
	logger    *zap.SugaredLogger
}

// NewCalculatorService builds the over/under calculator. threshold is the
// advice confidence cutoff as a fraction in (0,1).
func NewCalculatorService(up Upstream, cache *query.Cache, ttls TTLs, threshold float64, logger *zap.SugaredLogger) CalculatorService {
	return &calculatorService{up: up, cache: cache, ttls: ttls, threshold: threshold, logger: logger}
}

// Analyze returns the upstream calculator readout. When the upstream
// supplies a standard deviation but omits the probability split or advice,
// the local normal model fills them in.
func (s *calculatorService) Analyze(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error) {
	key := fmt.Sprintf("calc:%d:%g:%g:%s", playerID, projection, line, statCategory)
	var out models.CalculatorResult
	err := s.cache.Fetch(ctx, key, s.ttls.Prediction, &out, func(ctx context.Context) (any, error) {
		result, err := s.up.Calculator(ctx, playerID, projection, line, statCategory)
		if err != nil {
			return nil, err
		}
		s.complement(result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *calculatorService) complement(r *models.CalculatorResult) {
	needsProbs := r.ProbabilityOver == 0 && r.ProbabilityUnder == 0
	if !needsProbs && r.Advice != "" {
		return
	}
	ou, ok := stats.OverUnderProbability(r.Projection, r.StdDevCalculated, r.Line, s.threshold)
	if !ok {
		return
	}
	if needsProbs {
		r.ProbabilityOver = ou.ProbabilityOver
		r.ProbabilityUnder = ou.ProbabilityUnder
	}
	if r.Advice == "" {
		r.Advice = ou.Advice
	}
}
