package analysis

import (
	"reflect"
	"testing"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

func TestBuildChartSeries_LabelsAndValues(t *testing.T) {
	variations := []models.MonthlyVariation{
		{Year: 2023, Month: "Ene", Variation: 5},
		{Year: 2023, Month: "Feb", Variation: -2},
	}

	series := BuildChartSeries(variations, "Fondo 128", 0)

	if series.Name != "Fondo 128" {
		t.Fatalf("name=%q", series.Name)
	}
	if !reflect.DeepEqual(series.Labels, []string{"Ene 2023", "Feb 2023"}) {
		t.Fatalf("labels=%v", series.Labels)
	}
	if !reflect.DeepEqual(series.Values, []float64{5, -2}) {
		t.Fatalf("values=%v", series.Values)
	}
}

// len(Labels) must always equal the number of input variations.
func TestBuildChartSeries_LengthMatchesInput(t *testing.T) {
	for _, n := range []int{0, 1, 3, 17} {
		variations := make([]models.MonthlyVariation, n)
		for i := range variations {
			variations[i] = models.MonthlyVariation{Year: 2020 + i, Month: "Ene"}
		}
		series := BuildChartSeries(variations, "x", 0)
		if len(series.Labels) != n || len(series.Values) != n {
			t.Fatalf("n=%d: labels=%d values=%d", n, len(series.Labels), len(series.Values))
		}
	}
}

func TestBuildChartSeries_PaletteCycles(t *testing.T) {
	first := BuildChartSeries(nil, "a", 0).Color
	second := BuildChartSeries(nil, "b", 1).Color
	if first == second {
		t.Fatalf("adjacent positions should differ: %q", first)
	}

	wrapped := BuildChartSeries(nil, "c", len(chartPalette)).Color
	if wrapped != first {
		t.Fatalf("position len(palette) should wrap to first color: got %q want %q", wrapped, first)
	}

	// Negative positions must not panic and must still land in the palette.
	neg := BuildChartSeries(nil, "d", -1).Color
	found := false
	for _, c := range chartPalette {
		if c == neg {
			found = true
		}
	}
	if !found {
		t.Fatalf("negative position produced color outside palette: %q", neg)
	}
}
