// Package dataset loads the labeled news CSV used for training and bulk
// seeding of the article store.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/newsgauge/veracity/internal/domain"
	"github.com/newsgauge/veracity/internal/model"
)

// Record is one row of the news dataset. Confidence defaults to 0.0, the
// sentinel meaning "label assigned without model".
type Record struct {
	Title      string
	Content    string
	Label      domain.Label
	Confidence float64
}

var requiredColumns = []string{"title", "content", "label"}

// Load reads the dataset CSV at path. The header must contain title, content
// and label columns; a confidence column is optional. Unknown columns are
// ignored.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read parses dataset records from r in CSV form.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", name)
		}
	}
	confidenceCol, hasConfidence := cols["confidence"]

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset row: %w", err)
		}

		rec := Record{
			Title:   field(row, cols["title"]),
			Content: field(row, cols["content"]),
			Label:   domain.Label(field(row, cols["label"])),
		}
		if !rec.Label.Valid() {
			return nil, fmt.Errorf("dataset line %d: unknown label %q", line, rec.Label)
		}

		if hasConfidence {
			raw := field(row, confidenceCol)
			if raw != "" {
				confidence, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("dataset line %d: bad confidence %q: %w", line, raw, err)
				}
				rec.Confidence = confidence
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

// TrainingRecords converts dataset rows into training pipeline input.
func TrainingRecords(records []Record) []model.TrainingRecord {
	out := make([]model.TrainingRecord, len(records))
	for i, rec := range records {
		out[i] = model.TrainingRecord{
			Title:   rec.Title,
			Content: rec.Content,
			Label:   rec.Label,
		}
	}
	return out
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
