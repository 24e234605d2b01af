package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"quizdeck/internal/store"
)

// WriteAttemptsCSV writes the attempt history as CSV, one row per stored
// attempt, newest first.
func WriteAttemptsCSV(w io.Writer, attempts []store.AttemptRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"Date", "Quiz", "Score", "Possible", "Percentage", "Correct", "Answered", "Duration (s)", "Adaptive", "Passed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, a := range attempts {
		row := []string{
			a.Timestamp.Local().Format("2006-01-02 15:04:05"),
			a.Quiz,
			strconv.Itoa(a.Score),
			strconv.Itoa(a.Possible),
			fmt.Sprintf("%.1f", a.Percentage),
			strconv.Itoa(a.Correct),
			strconv.Itoa(a.Total),
			strconv.Itoa(a.DurationSecs),
			strconv.FormatBool(a.Adaptive),
			strconv.FormatBool(a.Passed),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportAttemptsCSV writes the attempt history CSV to a file.
func ExportAttemptsCSV(path string, attempts []store.AttemptRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := WriteAttemptsCSV(f, attempts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
