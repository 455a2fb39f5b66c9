package util

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// ExportCSV writes a 2D field matrix to a CSV file, one grid row per
// line.
func ExportCSV(filename string, m mat.Matrix, delimiter rune) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %v", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if delimiter != 0 {
		w.Comma = delimiter
	}

	rows, cols := m.Dims()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing %s: %v", filename, err)
		}
	}

	w.Flush()
	return w.Error()
}
