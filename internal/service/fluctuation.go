package service

import (
	"context"
	"strings"
	"time"

	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/domain/models"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/fluctuation"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/metrics"
	"github.com/shopspring/decimal"
)

// FluctuationService defines business logic for computing daily price
// fluctuation ranges. It decouples HTTP handlers from the calculator core.
type FluctuationService interface {
	GetFluctuationRange(ctx context.Context, price string) (*models.FluctuationRange, error)
}

type fluctuationService struct {
	table fluctuation.Table
}

// NewFluctuationService builds a service around an immutable band table.
// The table is shared by all calls without locking; it is never mutated.
func NewFluctuationService(table fluctuation.Table) FluctuationService {
	return &fluctuationService{table: table}
}

func (s *fluctuationService) GetFluctuationRange(_ context.Context, price string) (*models.FluctuationRange, error) {
	start := time.Now()

	lower, upper, err := fluctuation.ComputeFluctuationRange(price, s.table)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.CalculationDuration.Observe(time.Since(start).Seconds())

	// The calculator already accepted the input, so this parse cannot fail.
	d, _ := decimal.NewFromString(strings.TrimSpace(price))

	return &models.FluctuationRange{
		Price:      d.InexactFloat64(),
		LowerLimit: lower,
		UpperLimit: upper,
	}, nil
}
