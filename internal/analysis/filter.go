package analysis

import (
	"time"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

const isoDateLayout = "2006-01-02"

// FilterByDateRange restricts a variation series to the months whose
// first-of-month date falls inside [startDate, endDate], inclusive on both
// ends. Bounds are ISO "YYYY-MM-DD" strings.
//
// Fallback semantics, load-bearing for the UI:
//   - A missing, empty, or literal "undefined" bound disables the filter and
//     the input is returned unmodified. The web client serializes an unset
//     date picker as the string "undefined", so it must be honored here.
//   - If applying the filter would eliminate every entry while the input is
//     non-empty, the filter is discarded and the full list returned. A
//     misconfigured range must not blank out the dashboard. This can mask a
//     genuine "no data in range" situation; it is kept for compatibility
//     with the original behavior.
//
// An unparsable bound excludes every entry and therefore also lands on the
// full-list fallback.
func FilterByDateRange(variations []models.MonthlyVariation, startDate, endDate string) []models.MonthlyVariation {
	if !boundSet(startDate) || !boundSet(endDate) {
		return variations
	}

	start, errS := time.Parse(isoDateLayout, startDate)
	end, errE := time.Parse(isoDateLayout, endDate)
	if errS != nil || errE != nil {
		return variations
	}

	filtered := make([]models.MonthlyVariation, 0, len(variations))
	for _, v := range variations {
		month := monthNumber(v.Month)
		if month == 0 {
			continue
		}
		firstOfMonth := time.Date(v.Year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		if !firstOfMonth.Before(start) && !firstOfMonth.After(end) {
			filtered = append(filtered, v)
		}
	}

	if len(filtered) == 0 && len(variations) > 0 {
		return variations
	}
	return filtered
}

// boundSet reports whether a range bound actually constrains the filter.
func boundSet(bound string) bool {
	return bound != "" && bound != "undefined"
}
