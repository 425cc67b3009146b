package models

// RawRecord is a single daily record as decoded from the upstream fund API,
// before normalization. The upstream payload is not stable: some deployments
// return flat objects ({"date": ..., "price": ...}), others wrap the fields
// in a JSON:API style "attributes" envelope with extra metadata. Decoding
// into a map keeps every shape representable; only the normalizer inspects it.
type RawRecord map[string]any

// DailyRecord is the canonical (date, price) pair produced by normalization.
// Every downstream component works exclusively with this type and never sees
// the raw upstream shape again.
//
// Fields:
//   - Date: ISO calendar date string ("YYYY-MM-DD"). Always non-empty; the
//     year/month parts are only validated when a monthly variation is emitted.
//   - Price: fund share price (NAV) for that day. Zero means "present but
//     unusable as a variation denominator".
type DailyRecord struct {
	Date  string  `json:"date" example:"2023-01-05"`
	Price float64 `json:"price" example:"1000.00"`
}
