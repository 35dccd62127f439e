package gateway

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type format int

const (
	formatJSON format = iota
	formatYAML
	formatCSV
)

func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".csv":
		return formatCSV
	default:
		return formatJSON
	}
}

// decodeFile reads path and decodes it into v as YAML or JSON depending on
// the extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch detectFormat(path) {
	case formatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case formatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}
