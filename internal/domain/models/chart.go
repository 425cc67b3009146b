package models

// ChartSeries is the chart-ready projection of a variation series: one label
// per month ("Ene 2023") and one value per month, plus a deterministic color.
//
// The color is assigned from a fixed palette by the position of the series
// among the series displayed together (not by fund identity), so the same
// fund can legitimately get different colors in different comparisons.
//
// swagger:model ChartSeries
type ChartSeries struct {
	Name   string    `json:"name" example:"Fondo 128"`
	Labels []string  `json:"labels" example:"Ene 2023,Feb 2023"`
	Values []float64 `json:"values" example:"5.00,-2.00"`
	Color  string    `json:"color" example:"#4e79a7"`
}
