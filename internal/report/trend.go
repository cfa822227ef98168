package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trend is the least-squares line score = Intercept + Slope*rating.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (t Trend) At(x float64) float64 {
	return t.Intercept + t.Slope*x
}

// Fit returns the degree-1 least-squares fit of ys against xs. When every x
// is the same the slope is undefined; the fit is then a flat line through
// the mean of ys.
func Fit(xs, ys []float64) Trend {
	if len(xs) == 0 {
		return Trend{}
	}
	if floats.Max(xs) == floats.Min(xs) {
		return Trend{Intercept: stat.Mean(ys, nil)}
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Trend{Slope: beta, Intercept: alpha}
}
