package analysis

import (
	"testing"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

func TestNormalize_TableDriven(t *testing.T) {
	cases := []struct {
		name string
		raw  models.RawRecord
		want models.DailyRecord
		ok   bool
	}{
		{
			name: "flat record",
			raw:  models.RawRecord{"date": "2023-03-10", "price": 500.0},
			want: models.DailyRecord{Date: "2023-03-10", Price: 500},
			ok:   true,
		},
		{
			name: "nested attributes record",
			raw: models.RawRecord{"attributes": map[string]any{
				"date":  "2023-03-10",
				"price": 500.0,
				"fund":  "ignored",
			}},
			want: models.DailyRecord{Date: "2023-03-10", Price: 500},
			ok:   true,
		},
		{
			name: "missing price keeps record with zero",
			raw:  models.RawRecord{"date": "2023-03-10"},
			want: models.DailyRecord{Date: "2023-03-10", Price: 0},
			ok:   true,
		},
		{
			name: "quoted price",
			raw:  models.RawRecord{"date": "2023-03-10", "price": "1050.5"},
			want: models.DailyRecord{Date: "2023-03-10", Price: 1050.5},
			ok:   true,
		},
		{
			name: "non-numeric price collapses to zero",
			raw:  models.RawRecord{"date": "2023-03-10", "price": "n/a"},
			want: models.DailyRecord{Date: "2023-03-10", Price: 0},
			ok:   true,
		},
		{
			name: "semantically invalid month passes normalization",
			raw:  models.RawRecord{"date": "2023-13-01", "price": 10.0},
			want: models.DailyRecord{Date: "2023-13-01", Price: 10},
			ok:   true,
		},
		{
			name: "missing date rejects",
			raw:  models.RawRecord{"price": 500.0},
			ok:   false,
		},
		{
			name: "non-string date rejects",
			raw:  models.RawRecord{"date": 20230310, "price": 500.0},
			ok:   false,
		},
		{
			name: "date without month component rejects",
			raw:  models.RawRecord{"date": "2023", "price": 500.0},
			ok:   false,
		},
		{
			name: "empty record rejects",
			raw:  models.RawRecord{},
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

// Flat and nested shapes must normalize identically.
func TestNormalize_ShapesEquivalent(t *testing.T) {
	flat := models.RawRecord{"date": "2023-03-10", "price": 500.0}
	nested := models.RawRecord{"attributes": map[string]any{"date": "2023-03-10", "price": 500.0}}

	fromFlat, okF := Normalize(flat)
	fromNested, okN := Normalize(nested)
	if !okF || !okN {
		t.Fatalf("both shapes should normalize: flat=%v nested=%v", okF, okN)
	}
	if fromFlat != fromNested {
		t.Fatalf("shapes diverged: flat=%+v nested=%+v", fromFlat, fromNested)
	}
}

func TestNormalizeRecords_DropsRejectedKeepsOrder(t *testing.T) {
	raws := []models.RawRecord{
		{"date": "2023-01-05", "price": 1000.0},
		{"price": 999.0}, // no date, dropped
		{"date": "2023-01-28", "price": 1050.0},
	}

	records := NormalizeRecords(raws)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date != "2023-01-05" || records[1].Date != "2023-01-28" {
		t.Fatalf("input order not preserved: %+v", records)
	}
}
