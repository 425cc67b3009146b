package analysis

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

// Normalize maps one raw upstream record of unknown shape into the canonical
// DailyRecord used by the rest of the pipeline.
//
// Accepted shapes:
//   - flat: {"date": "2023-01-05", "price": 1000}
//   - nested: {"attributes": {"date": "2023-01-05", "price": 1000, ...}}
//
// Extra fields in either shape are ignored. The record is rejected (ok=false)
// only when no usable date string is present; a missing or non-numeric price
// defaults to 0 and the record is kept (a zero first-of-month price makes the
// variation calculator drop the whole month later).
//
// Date validation here is deliberately shallow: the date only needs at least
// two dash-separated components so a month key can be derived. Semantically
// invalid dates such as "2023-13-01" pass normalization and grouping and are
// rejected at variation-emission time. Moving that check earlier would change
// which records get dropped.
//
// Returns:
//   - models.DailyRecord: the canonical (date, price) pair.
//   - bool: false when the record is unusable and must be discarded.
func Normalize(raw models.RawRecord) (models.DailyRecord, bool) {
	fields := map[string]any(raw)
	if attrs, ok := raw["attributes"].(map[string]any); ok {
		fields = attrs
	}

	date, ok := fields["date"].(string)
	if !ok || !hasMonthPrefix(date) {
		return models.DailyRecord{}, false
	}

	return models.DailyRecord{Date: date, Price: numeric(fields["price"])}, true
}

// NormalizeRecords applies Normalize over a raw batch, dropping rejected
// records and preserving input order.
func NormalizeRecords(raws []models.RawRecord) []models.DailyRecord {
	records := make([]models.DailyRecord, 0, len(raws))
	for _, raw := range raws {
		if rec, ok := Normalize(raw); ok {
			records = append(records, rec)
		}
	}
	return records
}

// hasMonthPrefix reports whether the date string carries at least the two
// dash-separated components ("YYYY-MM") needed to derive a month key.
func hasMonthPrefix(date string) bool {
	parts := strings.SplitN(date, "-", 3)
	return len(parts) >= 2 && parts[0] != "" && parts[1] != ""
}

// numeric coerces the price field of a raw record into a float64. Upstream
// payloads have been observed carrying prices as JSON numbers, quoted numbers,
// and occasionally integers re-encoded by intermediate tooling. Anything else
// (absent, null, non-numeric) collapses to 0.
func numeric(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
