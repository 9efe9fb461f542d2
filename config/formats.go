package config

import (
	"fmt"
	"os"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"gopkg.in/yaml.v3"
)

type formatsFile struct {
	Formats map[string]models.MatchFormat `yaml:"formats"`
}

// LoadFormats reads named match-format presets. A missing file yields no presets.
func LoadFormats(path string) (map[string]models.MatchFormat, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]models.MatchFormat{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read match formats file %s: %w", path, err)
	}

	return ParseFormats(data)
}

func ParseFormats(data []byte) (map[string]models.MatchFormat, error) {
	var file formatsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse match formats: %w", err)
	}

	if file.Formats == nil {
		return map[string]models.MatchFormat{}, nil
	}

	for name, format := range file.Formats {
		if format.QuarterCount < 1 || format.QuarterMinutes < 1 || format.BreakMinutes < 0 || format.HalftimeMinutes < 0 {
			return nil, fmt.Errorf("match format %s is invalid", name)
		}
	}

	return file.Formats, nil
}
