package dto

import "github.com/fondpulse/fondpulse/internal/domain/models"

// FundVariationsResponse is the JSON body of
// GET /api/v1/funds/{id}/variations.
//
// Fields mirror the domain model but are declared separately so the API
// contract can evolve without touching business logic.
type FundVariationsResponse struct {
	FundID     int                       `json:"fund_id" example:"128"`
	Variations []models.MonthlyVariation `json:"variations"`
	Statistics models.Statistics         `json:"statistics"`
}

// ChartResponse is the JSON body of GET /api/v1/funds/{id}/chart.
type ChartResponse struct {
	Series models.ChartSeries `json:"series"`
}

// CompareResponse is the JSON body of GET /api/v1/compare: one chart series
// per requested fund, in request order.
type CompareResponse struct {
	Series []models.ChartSeries `json:"series"`
}
