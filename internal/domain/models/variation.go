package models

// MonthlyVariation is the month-over-month percentage change of a fund's
// price, derived from the first and last valid daily records observed within
// one calendar month.
//
// Fields:
//   - Year: calendar year parsed from the month key.
//   - Month: localized month abbreviation ("Ene".."Dic"), "Desconocido" when
//     the month number is out of range.
//   - Variation: percentage change between FirstDayPrice and LastDayPrice,
//     rounded to two decimals. A single-record month yields 0.
//   - FirstDayPrice: price of the earliest record in the month. Never zero;
//     months whose first price is zero are not emitted.
//   - LastDayPrice: price of the latest record in the month.
//
// Values are immutable after creation and ordered ascending by (year, month)
// for presentation.
//
// swagger:model MonthlyVariation
type MonthlyVariation struct {
	Year          int     `json:"year" example:"2023"`
	Month         string  `json:"month" example:"Ene"`
	Variation     float64 `json:"variation" example:"5.00"`
	FirstDayPrice float64 `json:"firstDayPrice" example:"1000.00"`
	LastDayPrice  float64 `json:"lastDayPrice" example:"1050.00"`
}

// Statistics is a stateless descriptive summary over a variation series.
// It is recomputed on every filter change and never persisted.
//
// Zero-variation months are counted neither as positive nor negative.
//
// swagger:model Statistics
type Statistics struct {
	Average       float64 `json:"average" example:"1.50"`
	Max           float64 `json:"max" example:"5.00"`
	Min           float64 `json:"min" example:"-2.00"`
	PositiveCount int     `json:"positiveCount" example:"4"`
	NegativeCount int     `json:"negativeCount" example:"2"`
}

// FundVariations bundles the computed variation series of one fund together
// with the statistics over that (already filtered) series. This is what the
// service layer hands to the API and CLI drivers.
type FundVariations struct {
	FundID     int                `json:"fund_id" example:"128"`
	Variations []MonthlyVariation `json:"variations"`
	Statistics Statistics         `json:"statistics"`
}
