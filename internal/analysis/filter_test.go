package analysis

import (
	"reflect"
	"testing"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

var filterFixture = []models.MonthlyVariation{
	{Year: 2023, Month: "Ene", Variation: 5, FirstDayPrice: 1000, LastDayPrice: 1050},
	{Year: 2023, Month: "Feb", Variation: -2, FirstDayPrice: 1050, LastDayPrice: 1029},
	{Year: 2023, Month: "Jun", Variation: 1, FirstDayPrice: 1029, LastDayPrice: 1040},
}

func TestFilterByDateRange_TableDriven(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  []models.MonthlyVariation
	}{
		{
			name:  "no bounds returns input unmodified",
			start: "",
			end:   "",
			want:  filterFixture,
		},
		{
			name:  "literal undefined disables the filter",
			start: "undefined",
			end:   "2023-12-31",
			want:  filterFixture,
		},
		{
			name:  "window keeps matching months",
			start: "2023-01-01",
			end:   "2023-03-31",
			want:  filterFixture[:2],
		},
		{
			name:  "bounds are inclusive on the first of month",
			start: "2023-02-01",
			end:   "2023-06-01",
			want:  filterFixture[1:],
		},
		{
			name:  "range excluding everything falls back to full list",
			start: "2024-01-01",
			end:   "2024-12-31",
			want:  filterFixture,
		},
		{
			name:  "unparsable bound falls back to full list",
			start: "01/01/2023",
			end:   "2023-12-31",
			want:  filterFixture,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByDateRange(filterFixture, tc.start, tc.end)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFilterByDateRange_EmptyInput(t *testing.T) {
	got := FilterByDateRange(nil, "2023-01-01", "2023-12-31")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
