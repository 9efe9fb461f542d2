package config_test

import (
	"path/filepath"
	"testing"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		result      map[string]models.MatchFormat
		expectedErr string
	}{
		{
			name: "success - it parses presets",
			input: `
formats:
  quarters_12:
    quarter_count: 4
    quarter_minutes: 12
    break_minutes: 2
    halftime_minutes: 5
`,
			result: map[string]models.MatchFormat{
				"quarters_12": {QuarterCount: 4, QuarterMinutes: 12, BreakMinutes: 2, HalftimeMinutes: 5},
			},
		},
		{
			name:   "success - empty document yields no presets",
			input:  "",
			result: map[string]models.MatchFormat{},
		},
		{
			name: "it returns an error when a preset has no quarters",
			input: `
formats:
  broken:
    quarter_count: 0
    quarter_minutes: 12
`,
			expectedErr: "match format broken is invalid",
		},
		{
			name:        "it returns an error on malformed yaml",
			input:       "formats: [",
			expectedErr: "failed to parse match formats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := config.ParseFormats([]byte(tt.input))
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.result, actual)
		})
	}
}

func TestLoadFormats_MissingFile(t *testing.T) {
	actual, err := config.LoadFormats(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestLoadFormats_BundledPresets(t *testing.T) {
	actual, err := config.LoadFormats("formats.yaml")
	require.NoError(t, err)
	assert.Equal(t, models.MatchFormat{QuarterCount: 4, QuarterMinutes: 12, BreakMinutes: 2, HalftimeMinutes: 5}, actual["quarters_12"])
}
