// Package stats provides sample diagnostics for generated time series.
//
// These functions check that sampled data has the shape its generating
// process implies. They do not fit models.
//
// # Autocorrelation
//
//	acf := stats.ACF(series, 20)   // lags 0..20
//	pacf := stats.PACF(series, 20) // partial autocorrelation
//
//	// Lags outside the white-noise band
//	bound := stats.ConfidenceBound(series.Len())
//	sig := stats.SignificantLags(pacf, bound)
//
// For an AR(p) process the ACF decays geometrically while the PACF cuts off
// after lag p.
//
// # White Noise Test
//
// The Ljung-Box test checks whether autocorrelations up to a lag are jointly
// zero. P-values come from the chi-squared distribution in gonum's distuv.
//
//	lb := stats.LjungBox(series, 10, 0)
//	if lb.IsWhiteNoise(0.05) {
//	    fmt.Println("no significant autocorrelation")
//	}
package stats
