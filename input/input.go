// Package input turns the supported id sources, a csv file or a manually
// entered list, into an ordered sequence of video ids.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ytnotion/model"
)

// FromFile reads video ids from a csv file with a single id column.
func FromFile(path string) ([]model.VideoID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ids, err := FromCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return ids, nil
}

// FromCSV reads video ids, one per row. A header row containing a
// "Video Id" field selects that column; otherwise the first column is
// used. Blank rows are skipped.
func FromCSV(r io.Reader) ([]model.VideoID, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	column, start := 0, 0
	if len(records) > 0 {
		for i, field := range records[0] {
			if strings.EqualFold(strings.TrimSpace(field), "Video Id") {
				column, start = i, 1
				break
			}
		}
	}

	ids := []model.VideoID{}
	for _, record := range records[start:] {
		if column >= len(record) {
			continue
		}
		id := strings.TrimSpace(record[column])
		if id == "" {
			continue
		}
		ids = append(ids, model.VideoID(id))
	}

	return ids, nil
}

// FromList splits a comma-separated list of ids entered by hand.
func FromList(s string) []model.VideoID {
	ids := []model.VideoID{}
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, model.VideoID(id))
		}
	}

	return ids
}
