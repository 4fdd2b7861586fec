// Package countries serializes a fixed country reference table to CSV,
// optionally replacing the built-in table with a scraped JSON side
// file.
package countries

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"consumer-behavior/internal/csvio"
)

// Country is one reference record.
type Country struct {
	Name       string  `json:"name"`
	Capital    string  `json:"capital"`
	Population int64   `json:"population"`
	Area       float64 `json:"area"`
}

// Headers is the column order of countries-data.csv.
var Headers = []string{"Country Name", "Capital City", "Population", "Area (km²)"}

type sideFile struct {
	Countries []Country `json:"countries"`
}

// Load reads the JSON side file at path. A missing file falls back to
// the built-in table and is not an error; a malformed or empty file is.
func Load(path string) ([]Country, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Builtin(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var data sideFile
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(data.Countries) == 0 {
		return nil, fmt.Errorf("%s: no countries in side file", path)
	}
	return data.Countries, nil
}

// WriteCSV writes the records with the fixed header.
func WriteCSV(path string, cs []Country) error {
	records := make([][]string, 0, len(cs))
	for _, c := range cs {
		records = append(records, []string{
			c.Name,
			c.Capital,
			strconv.FormatInt(c.Population, 10),
			strconv.FormatFloat(c.Area, 'f', -1, 64),
		})
	}
	return csvio.Write(path, Headers, records)
}
