package analysis

import (
	"fmt"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

// chartPalette is the fixed series palette. Colors are assigned by the
// position of the series among the series displayed together, modulo the
// palette length, so comparisons stay deterministic without tracking fund
// identity.
var chartPalette = []string{
	"#4e79a7",
	"#f28e2b",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc948",
	"#b07aa1",
	"#ff9da7",
}

// BuildChartSeries projects a variation series into the label/value shape the
// chart widget consumes. Labels pair the month abbreviation with the year
// ("Ene 2023"); values carry the variation percentages in the same order, so
// len(Labels) == len(Values) == len(variations) always holds.
//
// position is the zero-based index of this series among the concurrently
// displayed series and selects the palette color cyclically.
func BuildChartSeries(variations []models.MonthlyVariation, name string, position int) models.ChartSeries {
	labels := make([]string, 0, len(variations))
	values := make([]float64, 0, len(variations))
	for _, v := range variations {
		labels = append(labels, fmt.Sprintf("%s %d", v.Month, v.Year))
		values = append(values, v.Variation)
	}

	idx := position % len(chartPalette)
	if idx < 0 {
		idx += len(chartPalette)
	}

	return models.ChartSeries{
		Name:   name,
		Labels: labels,
		Values: values,
		Color:  chartPalette[idx],
	}
}
