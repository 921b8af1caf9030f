// Package timeseries provides a finite time series container for sampled data.
//
// Generators produce infinite sequences; this package holds a finite prefix
// of one, pairs each value with its index or a timestamp, and writes it out.
//
// # Collecting Samples
//
// Pull a fixed number of values from any iter.Seq of floats:
//
//	gen, _ := ar.New(5.0, 1.0, []float64{0.5})
//	series := timeseries.Collect(gen.All(), 100)
//
// Assign evenly spaced timestamps:
//
//	series.Stamp(time.Now(), time.Minute)
//
// # Basic Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Writing CSV
//
//	// index,y (or ds,y when timestamped)
//	err := timeseries.WriteCSV(os.Stdout, series, nil)
//
//	// Values only, fixed precision
//	err = timeseries.SaveCSV(series, "out.csv", &timeseries.CSVOptions{Precision: 4})
package timeseries
