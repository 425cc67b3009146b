package analysis

import "github.com/fondpulse/fondpulse/internal/domain/models"

// CalculateStatistics summarizes a variation series: arithmetic mean (no
// weighting by days-in-month), max, min, and the counts of strictly positive
// and strictly negative months. Zero-variation months count in neither.
//
// An empty input returns the zero-valued Statistics, not an error; a
// dashboard with no data in range renders zeros rather than failing.
func CalculateStatistics(variations []models.MonthlyVariation) models.Statistics {
	if len(variations) == 0 {
		return models.Statistics{}
	}

	stats := models.Statistics{
		Max: variations[0].Variation,
		Min: variations[0].Variation,
	}

	var sum float64
	for _, v := range variations {
		sum += v.Variation
		if v.Variation > stats.Max {
			stats.Max = v.Variation
		}
		if v.Variation < stats.Min {
			stats.Min = v.Variation
		}
		switch {
		case v.Variation > 0:
			stats.PositiveCount++
		case v.Variation < 0:
			stats.NegativeCount++
		}
	}
	stats.Average = sum / float64(len(variations))

	return stats
}
