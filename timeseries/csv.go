package timeseries

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"time"
)

// CSVOptions holds options for CSV output.
type CSVOptions struct {
	IncludeIndex bool   // Write a leading index (or timestamp) column
	ValueColumn  string // Header for the value column (default: "y")
	TimeFormat   string // Timestamp layout (default: time.RFC3339)
	Precision    int    // Digits after the point, -1 for shortest exact (default)
}

// DefaultCSVOptions returns default options for CSV output.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		IncludeIndex: true,
		ValueColumn:  "y",
		TimeFormat:   time.RFC3339,
		Precision:    -1,
	}
}

// WriteCSV writes the series to w. With IncludeIndex the first column is
// "ds" holding timestamps when every value has one, or "index" otherwise.
func WriteCSV(w io.Writer, series *Series, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	valueCol := opts.ValueColumn
	if valueCol == "" {
		valueCol = "y"
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	stamped := series.HasTimestamps()

	bw := bufio.NewWriter(w)

	// Header
	if opts.IncludeIndex {
		if stamped {
			bw.WriteString("ds,")
		} else {
			bw.WriteString("index,")
		}
	}
	bw.WriteString(valueCol)
	bw.WriteByte('\n')

	// Data
	buf := make([]byte, 0, 32)
	for i, v := range series.Values {
		if opts.IncludeIndex {
			if stamped {
				bw.WriteString(series.Timestamps[i].Format(timeFormat))
			} else {
				bw.WriteString(strconv.Itoa(i))
			}
			bw.WriteByte(',')
		}
		buf = strconv.AppendFloat(buf[:0], v, 'f', opts.Precision, 64)
		bw.Write(buf)
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveCSV saves a time series to a CSV file.
func SaveCSV(series *Series, filename string, opts *CSVOptions) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteCSV(file, series, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
