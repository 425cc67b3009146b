package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fondpulse/fondpulse/internal/analysis"
	"github.com/fondpulse/fondpulse/internal/domain/models"
	"github.com/fondpulse/fondpulse/internal/fundapi"
	"github.com/fondpulse/fondpulse/internal/logger"
)

// ErrInsufficientData is returned when a fund has fewer than 2 usable daily
// records, which is too little to compute any month-over-month variation.
// Handlers surface it as a user-facing message rather than a server error.
var ErrInsufficientData = errors.New("insufficient data: at least 2 daily records are required")

// defaultMaxParallel bounds the compare fan-out when no explicit limit is
// configured.
const defaultMaxParallel = 4

// VariationService defines the business operations over fund variation data.
type VariationService interface {
	// GetFundVariations fetches a fund's daily records, runs the monthly
	// variation pipeline, applies the optional date-range filter, and
	// computes statistics over the filtered series.
	GetFundVariations(ctx context.Context, fundID int, startDate, endDate string) (*models.FundVariations, error)

	// CompareFunds builds one chart series per fund, fetching funds
	// concurrently. Palette colors follow the position of each fund in the
	// request order.
	CompareFunds(ctx context.Context, fundIDs []int, startDate, endDate string) ([]models.ChartSeries, error)
}

type variationService struct {
	client      fundapi.Client
	maxParallel int
}

// NewVariationService constructs the service. maxParallel caps how many
// upstream fetches CompareFunds keeps in flight; values < 1 fall back to the
// default.
func NewVariationService(client fundapi.Client, maxParallel int) VariationService {
	if maxParallel < 1 {
		maxParallel = defaultMaxParallel
	}
	return &variationService{client: client, maxParallel: maxParallel}
}

func (s *variationService) GetFundVariations(ctx context.Context, fundID int, startDate, endDate string) (*models.FundVariations, error) {
	filtered, err := s.fundSeries(ctx, fundID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &models.FundVariations{
		FundID:     fundID,
		Variations: filtered,
		Statistics: analysis.CalculateStatistics(filtered),
	}, nil
}

func (s *variationService) CompareFunds(ctx context.Context, fundIDs []int, startDate, endDate string) ([]models.ChartSeries, error) {
	series := make([]models.ChartSeries, len(fundIDs))

	// errgroup cancels siblings on first error; the semaphore bounds how
	// many upstream requests run at once.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, s.maxParallel)

	for i, id := range fundIDs {
		pos := i
		fundID := id
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			filtered, err := s.fundSeries(gctx, fundID, startDate, endDate)
			if err != nil {
				return err
			}

			// Color by position in the request, not by fund id.
			series[pos] = analysis.BuildChartSeries(filtered, fmt.Sprintf("Fondo %d", fundID), pos)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

// fundSeries runs the shared fetch -> normalize -> variation -> filter chain.
func (s *variationService) fundSeries(ctx context.Context, fundID int, startDate, endDate string) ([]models.MonthlyVariation, error) {
	raws, err := s.client.FetchDailyRecords(ctx, fundID)
	if err != nil {
		return nil, err
	}

	records := analysis.NormalizeRecords(raws)
	if len(records) < 2 {
		logger.L().Warn().
			Int("fund_id", fundID).
			Int("raw", len(raws)).
			Int("usable", len(records)).
			Msg("not enough usable records")
		return nil, fmt.Errorf("fund %d: %w", fundID, ErrInsufficientData)
	}

	variations := analysis.CalculateMonthlyVariation(records)
	return analysis.FilterByDateRange(variations, startDate, endDate), nil
}
