package analysis

import (
	"strings"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

// MonthKey derives the canonical "YYYY-MM" grouping key from a date string.
// The key is built purely from the first two dash-separated components; no
// calendar validation happens here (see Normalize for why).
func MonthKey(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		// Dateless keys cannot form a month; the variation calculator
		// rejects them when the key fails to parse.
		return date
	}
	return parts[0] + "-" + parts[1]
}

// GroupByMonth partitions canonical records into calendar-month buckets keyed
// by MonthKey. Records keep their input order inside each bucket; sorting a
// bucket chronologically is the variation calculator's job.
func GroupByMonth(records []models.DailyRecord) map[string][]models.DailyRecord {
	groups := make(map[string][]models.DailyRecord)
	for _, rec := range records {
		key := MonthKey(rec.Date)
		groups[key] = append(groups[key], rec)
	}
	return groups
}
