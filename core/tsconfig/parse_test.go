package tsconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwaldron/repath/core/models"
)

func TestParseData_CommentsAndTrailingCommas(t *testing.T) {
	data := []byte(`{
		// project config
		"compilerOptions": {
			"baseUrl": "src", /* relative to this file */
			"paths": {
				"@utils/*": ["utils/*"],
			},
		},
	}`)

	cfg, parseErrs := parseData("/proj/tsconfig.json", data)
	require.Empty(t, parseErrs)
	require.NotNil(t, cfg)

	assert.Equal(t, "/proj", cfg.Dir)
	assert.True(t, cfg.HasBase)
	assert.Equal(t, "src", cfg.BaseURL)
	require.Len(t, cfg.Paths, 1)
	assert.Equal(t, "@utils/*", cfg.Paths[0].Alias)
	assert.Equal(t, []string{"utils/*"}, cfg.Paths[0].Targets)
}

func TestParseData_MalformedReturnsStructuredErrors(t *testing.T) {
	data := []byte(`{ "compilerOptions": { "baseUrl": "." ,, }`)

	cfg, parseErrs := parseData("/proj/tsconfig.json", data)
	assert.Nil(t, cfg)
	require.NotEmpty(t, parseErrs)
	assert.Greater(t, parseErrs[0].Offset, 0)
	assert.Equal(t, 1, parseErrs[0].Length)
	assert.NotEqual(t, models.ParseErrorCode(0), parseErrs[0].Code)
}

func TestParseData_NoBaseURL(t *testing.T) {
	cfg, parseErrs := parseData("/proj/tsconfig.json", []byte(`{"compilerOptions": {}}`))
	require.Empty(t, parseErrs)
	assert.False(t, cfg.HasBase)
}

func TestParseData_BaseURLNotAString(t *testing.T) {
	cfg, parseErrs := parseData("/proj/tsconfig.json", []byte(`{"compilerOptions": {"baseUrl": 7}}`))
	require.Empty(t, parseErrs)
	assert.False(t, cfg.HasBase)
}

func TestParseData_PathsDeclarationOrderPreserved(t *testing.T) {
	data := []byte(`{
		"compilerOptions": {
			"baseUrl": ".",
			"paths": {
				"@b/*": ["b/*"],
				"@a/*": ["a/*"],
				"@c/*": ["c/*"]
			}
		}
	}`)

	cfg, parseErrs := parseData("/proj/tsconfig.json", data)
	require.Empty(t, parseErrs)
	require.Len(t, cfg.Paths, 3)
	assert.Equal(t, "@b/*", cfg.Paths[0].Alias)
	assert.Equal(t, "@a/*", cfg.Paths[1].Alias)
	assert.Equal(t, "@c/*", cfg.Paths[2].Alias)
}

func TestParseData_FiltersBadPathEntries(t *testing.T) {
	data := []byte(`{
		"compilerOptions": {
			"baseUrl": ".",
			"paths": {
				"@good/*": ["good/*", 42, null, "extra/*"],
				"@bad": "not-an-array",
				"@worse": {"also": "not-an-array"}
			}
		}
	}`)

	cfg, parseErrs := parseData("/proj/tsconfig.json", data)
	require.Empty(t, parseErrs)
	require.Len(t, cfg.Paths, 1)
	assert.Equal(t, "@good/*", cfg.Paths[0].Alias)
	assert.Equal(t, []string{"good/*", "extra/*"}, cfg.Paths[0].Targets)
}

func TestParseData_PathsNotAnObject(t *testing.T) {
	data := []byte(`{"compilerOptions": {"baseUrl": ".", "paths": ["nope"]}}`)

	cfg, parseErrs := parseData("/proj/tsconfig.json", data)
	require.Empty(t, parseErrs)
	assert.True(t, cfg.HasBase)
	assert.Empty(t, cfg.Paths)
}
