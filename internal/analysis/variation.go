package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

// monthNames maps a month number to its localized abbreviation. Out-of-range
// months resolve to monthUnknown instead of panicking on an index; callers
// that need to reject such months check the number, not the name.
var monthNames = map[int]string{
	1:  "Ene",
	2:  "Feb",
	3:  "Mar",
	4:  "Abr",
	5:  "May",
	6:  "Jun",
	7:  "Jul",
	8:  "Ago",
	9:  "Sep",
	10: "Oct",
	11: "Nov",
	12: "Dic",
}

// monthUnknown is the sentinel name for month numbers outside [1,12].
const monthUnknown = "Desconocido"

// MonthName returns the localized abbreviation for a month number, or the
// "Desconocido" sentinel when the number is out of range.
func MonthName(month int) string {
	if name, ok := monthNames[month]; ok {
		return name
	}
	return monthUnknown
}

// monthNumber is the reverse lookup used by the date-range filter. Returns
// 0 when the name is not a known abbreviation.
func monthNumber(name string) int {
	for n, abbrev := range monthNames {
		if abbrev == name {
			return n
		}
	}
	return 0
}

// CalculateMonthlyVariation computes the month-over-month percentage change
// for every calendar month present in the canonical record list.
//
// Behavior, per month key in ascending order (lexical order of zero-padded
// "YYYY-MM" keys coincides with chronological order):
//  1. Sort the month's records ascending by date; the sort is stable so
//     same-date records keep their input order.
//  2. firstDay = earliest record, lastDay = latest record. A single-record
//     month has firstDay == lastDay and a variation of 0.
//  3. Skip the month when either boundary price is 0 (division-by-zero guard
//     and incomplete-month noise suppression).
//  4. variation = ((last - first) / first) * 100, rounded to 2 decimals.
//  5. Skip the month when the key's year or month fail integer parsing or
//     the month is outside [1,12]; this is where "2023-13-01" style dates
//     finally get dropped.
//
// An empty input yields an empty (non-nil) slice, never an error. Output is
// ascending by (year, month) and every emitted entry has a non-zero
// FirstDayPrice.
func CalculateMonthlyVariation(records []models.DailyRecord) []models.MonthlyVariation {
	groups := GroupByMonth(records)

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	variations := make([]models.MonthlyVariation, 0, len(keys))
	for _, key := range keys {
		year, month, ok := parseMonthKey(key)
		if !ok {
			continue
		}

		bucket := make([]models.DailyRecord, len(groups[key]))
		copy(bucket, groups[key])
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Date < bucket[j].Date
		})

		firstDay := bucket[0]
		lastDay := bucket[len(bucket)-1]
		if firstDay.Price == 0 || lastDay.Price == 0 {
			continue
		}

		variations = append(variations, models.MonthlyVariation{
			Year:          year,
			Month:         MonthName(month),
			Variation:     round2(((lastDay.Price - firstDay.Price) / firstDay.Price) * 100),
			FirstDayPrice: firstDay.Price,
			LastDayPrice:  lastDay.Price,
		})
	}

	return variations
}

// parseMonthKey splits a "YYYY-MM" key into integer year and month.
// ok is false when either part fails to parse or the month is out of range.
func parseMonthKey(key string) (year, month int, ok bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// round2 rounds to two decimal places, matching the display precision of the
// variation percentage everywhere it surfaces.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
