package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"sift/internal/record"
)

// File reads a list of records from path. The decoder is chosen by
// extension: .json uses encoding/json with UseNumber so numeric
// literals keep their text and stay distinct from strings, .yaml and
// .yml use the goccy YAML codec.
func File(path string) ([]record.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonFile(path)
	case ".yaml", ".yml":
		return yamlFile(path)
	default:
		return nil, fmt.Errorf("unsupported record file %s: expected a .json, .yaml, or .yml extension", path)
	}
}

func jsonFile(path string) ([]record.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var records []record.Record
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("parse records %s: trailing data after record list", path)
	}
	return records, nil
}

func yamlFile(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}

	var records []record.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}
	return records, nil
}
