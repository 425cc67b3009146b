package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fondpulse/fondpulse/internal/domain/models"
	"github.com/fondpulse/fondpulse/internal/fundapi"
)

type stubClient struct {
	records map[int][]models.RawRecord
	err     error
}

func (s *stubClient) FetchDailyRecords(_ context.Context, fundID int) ([]models.RawRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[fundID], nil
}

func (s *stubClient) Ping(_ context.Context) error { return nil }

var _ fundapi.Client = (*stubClient)(nil)

func fundRecords() []models.RawRecord {
	return []models.RawRecord{
		{"date": "2023-01-05", "price": 1000.0},
		{"date": "2023-01-28", "price": 1050.0},
		{"date": "2023-02-03", "price": 1050.0},
		{"date": "2023-02-25", "price": 1029.0},
	}
}

func TestGetFundVariations_Success(t *testing.T) {
	svc := NewVariationService(&stubClient{records: map[int][]models.RawRecord{128: fundRecords()}}, 2)

	out, err := svc.GetFundVariations(context.Background(), 128, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FundID != 128 {
		t.Fatalf("fund id=%d", out.FundID)
	}
	if len(out.Variations) != 2 {
		t.Fatalf("expected 2 variations, got %+v", out.Variations)
	}
	if out.Variations[0].Month != "Ene" || out.Variations[0].Variation != 5.00 {
		t.Fatalf("unexpected first month: %+v", out.Variations[0])
	}
	if out.Statistics.PositiveCount != 1 || out.Statistics.NegativeCount != 1 {
		t.Fatalf("unexpected statistics: %+v", out.Statistics)
	}
}

func TestGetFundVariations_FilterApplied(t *testing.T) {
	svc := NewVariationService(&stubClient{records: map[int][]models.RawRecord{128: fundRecords()}}, 2)

	out, err := svc.GetFundVariations(context.Background(), 128, "2023-02-01", "2023-02-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Variations) != 1 || out.Variations[0].Month != "Feb" {
		t.Fatalf("filter not applied: %+v", out.Variations)
	}
	// Statistics run over the filtered series, not the full one.
	if out.Statistics.Average != -2.00 {
		t.Fatalf("statistics computed over wrong series: %+v", out.Statistics)
	}
}

func TestGetFundVariations_InsufficientData(t *testing.T) {
	cases := []struct {
		name    string
		records []models.RawRecord
	}{
		{name: "no records", records: nil},
		{name: "single usable record", records: []models.RawRecord{{"date": "2023-01-05", "price": 1000.0}}},
		{
			name: "records without dates are unusable",
			records: []models.RawRecord{
				{"price": 1000.0},
				{"price": 1050.0},
				{"date": "2023-01-05", "price": 1000.0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewVariationService(&stubClient{records: map[int][]models.RawRecord{1: tc.records}}, 2)
			if _, err := svc.GetFundVariations(context.Background(), 1, "", ""); !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("expected ErrInsufficientData, got %v", err)
			}
		})
	}
}

func TestGetFundVariations_FetchError(t *testing.T) {
	svc := NewVariationService(&stubClient{err: errors.New("upstream down")}, 2)
	if _, err := svc.GetFundVariations(context.Background(), 1, "", ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCompareFunds_OrderAndColors(t *testing.T) {
	records := map[int][]models.RawRecord{
		10: fundRecords(),
		20: fundRecords(),
		30: fundRecords(),
	}
	svc := NewVariationService(&stubClient{records: records}, 2)

	series, err := svc.CompareFunds(context.Background(), []int{30, 10, 20}, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(series))
	}
	// Series come back in request order regardless of fetch completion order.
	if series[0].Name != "Fondo 30" || series[1].Name != "Fondo 10" || series[2].Name != "Fondo 20" {
		t.Fatalf("request order not preserved: %+v", []string{series[0].Name, series[1].Name, series[2].Name})
	}
	// Colors by position, so the first two must differ.
	if series[0].Color == series[1].Color {
		t.Fatalf("adjacent series share a color: %q", series[0].Color)
	}
	for _, s := range series {
		if len(s.Labels) != len(s.Values) {
			t.Fatalf("labels/values mismatch: %+v", s)
		}
	}
}

func TestCompareFunds_PropagatesFailure(t *testing.T) {
	records := map[int][]models.RawRecord{
		10: fundRecords(),
		// 20 missing: fetch returns no records, not enough data
	}
	svc := NewVariationService(&stubClient{records: records}, 2)

	if _, err := svc.CompareFunds(context.Background(), []int{10, 20}, "", ""); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestNewVariationService_ParallelFallback(t *testing.T) {
	// Invalid parallelism must not panic the semaphore setup.
	svc := NewVariationService(&stubClient{records: map[int][]models.RawRecord{1: fundRecords()}}, 0)
	if _, err := svc.CompareFunds(context.Background(), []int{1}, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
