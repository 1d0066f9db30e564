// Package types contains common types used across the application
package types

// RiskLevel classifies the severity of an identified risk.
type RiskLevel string

// Risk levels, lowest first.
const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Rank returns an ordinal for sorting; higher is more severe.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskCritical:
		return 4
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// Trend is the direction of an employee's recent performance ratings.
type Trend string

// Performance trends.
const (
	TrendImproving Trend = "Improving"
	TrendStable    Trend = "Stable"
	TrendDeclining Trend = "Declining"
)

// trendDelta is the newest-vs-oldest rating delta that counts as a real
// movement rather than noise.
const trendDelta = 0.5

// TrendOf classifies a rating series ordered most recent first. Fewer than
// two ratings read as stable.
func TrendOf(ratings []float64) Trend {
	if len(ratings) < 2 {
		return TrendStable
	}
	diff := ratings[0] - ratings[len(ratings)-1]
	switch {
	case diff > trendDelta:
		return TrendImproving
	case diff < -trendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}
