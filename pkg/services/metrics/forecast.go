package metrics

import (
	"time"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

const (
	// DefaultWindow is the trailing number of days fitted when the
	// caller does not ask for a specific window.
	DefaultWindow = 30

	// slope magnitude below which the trend is considered flat
	trendThreshold = 0.1
)

// RevenueForecast fits a least-squares line over daily revenue for the
// trailing window ending today.
func RevenueForecast(sales []domain.Sale, window int) domain.Forecast {
	return RevenueForecastAt(sales, window, time.Now())
}

// RevenueForecastAt computes the forecast relative to a fixed
// reference time. Days with no sales contribute zero revenue.
func RevenueForecastAt(sales []domain.Sale, window int, now time.Time) domain.Forecast {
	if window <= 0 {
		window = DefaultWindow
	}

	daily := make([]float64, window)
	start := civilDate(now).AddDate(0, 0, -(window - 1))
	for _, s := range sales {
		idx := int(civilDate(s.Date).Sub(start).Hours() / 24)
		if idx >= 0 && idx < window {
			daily[idx] += s.TotalAmount
		}
	}

	slope, intercept := fitLine(daily)

	trend := domain.TrendStable
	switch {
	case slope > trendThreshold:
		trend = domain.TrendUp
	case slope < -trendThreshold:
		trend = domain.TrendDown
	}

	var mean float64
	for _, v := range daily {
		mean += v
	}
	mean /= float64(window)

	var growth float64
	if mean != 0 {
		growth = slope * float64(window) / mean
	}

	return domain.Forecast{
		Slope:      slope,
		Intercept:  intercept,
		Trend:      trend,
		GrowthRate: growth,
		Window:     window,
		Daily:      daily,
	}
}

// fitLine solves the normal equations for y = slope*x + intercept over
// sequential indices x = 0..n-1.
func fitLine(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		denom = 1
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// civilDate truncates a timestamp to its calendar day.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
