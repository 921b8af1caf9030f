package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goar/timeseries"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // Degrees of freedom
}

// LjungBox performs the Ljung-Box portmanteau test. The null hypothesis is
// that the series has no autocorrelation up to the given lag, i.e. that it
// looks like white noise. fitdf reduces the degrees of freedom when the
// series is the residual of a model with that many parameters.
//
// Returns nil for series shorter than 10 values or with no variation.
func LjungBox(series *timeseries.Series, lags, fitdf int) *LjungBoxResult {
	n := series.Len()
	if n < 10 || lags < 1 {
		return nil
	}

	if lags >= n {
		lags = n - 1
	}

	acf := ACF(series, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n) * float64(n+2)

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi2 := distuv.ChiSquared{K: float64(dof)}

	return &LjungBoxResult{
		Statistic: q,
		PValue:    chi2.Survival(q),
		Lags:      lags,
		DOF:       dof,
	}
}

// IsWhiteNoise reports whether the test fails to reject the null hypothesis
// at significance level alpha.
func (r *LjungBoxResult) IsWhiteNoise(alpha float64) bool {
	return r != nil && r.PValue >= alpha
}
