package models

// Statistics summarizes the evidence of one session.
type Statistics struct {
	TotalEvidence      int     `json:"totalEvidence"`
	PrimaryCount       int     `json:"primaryCount"`
	SecondaryCount     int     `json:"secondaryCount"`
	TertiaryCount      int     `json:"tertiaryCount"`
	AverageReliability float64 `json:"averageReliability"`
	LinkedCount        int     `json:"linkedCount"`
}

// ComputeStatistics aggregates items. The average is 0 for an empty slice.
func ComputeStatistics(items []*Evidence) Statistics {
	var stats Statistics
	var total float64
	for _, e := range items {
		stats.TotalEvidence++
		switch e.Type {
		case TypePrimary:
			stats.PrimaryCount++
		case TypeSecondary:
			stats.SecondaryCount++
		case TypeTertiary:
			stats.TertiaryCount++
		}
		total += e.ReliabilityScore
		if len(e.LinkedClaims) > 0 {
			stats.LinkedCount++
		}
	}
	if stats.TotalEvidence > 0 {
		stats.AverageReliability = total / float64(stats.TotalEvidence)
	}
	return stats
}
