package ingest

import (
	"encoding/json"
	"testing"

	"github.com/meltforce/ftracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadPackageSamples dispatches each sample code to its variant.
func TestReadPackageSamples(t *testing.T) {
	tests := []struct {
		code string
		data []any
		kind models.Kind
	}{
		{"SWM", []any{720, 1, 80, 25, 40}, models.KindSwimming},
		{"RUN", []any{15000, 1, 75}, models.KindRunning},
		{"WLK", []any{9000, 1, 75, 180}, models.KindWalking},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tr, err := ReadPackage(tt.code, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, tr.Kind())
		})
	}
}

// TestReadPackagePositional assigns fields in the documented order.
func TestReadPackagePositional(t *testing.T) {
	tr, err := ReadPackage("SWM", []any{720, 1.5, 80.5, 25, 40})
	require.NoError(t, err)
	assert.Equal(t, 720, tr.Action())
	assert.Equal(t, 1.5, tr.Duration())
	assert.Equal(t, 80.5, tr.Weight())
	assert.Equal(t, 25.0, tr.PoolLength())
	assert.Equal(t, 40, tr.PoolCount())

	tr, err = ReadPackage("WLK", []any{9000, 1, 75, 180})
	require.NoError(t, err)
	assert.Equal(t, 180.0, tr.Height())
}

// TestReadPackageLooseTypes accepts strings, json numbers and integral floats.
func TestReadPackageLooseTypes(t *testing.T) {
	tr, err := ReadPackage("RUN", []any{"15000", json.Number("1.5"), float64(75)})
	require.NoError(t, err)
	assert.Equal(t, 15000, tr.Action())
	assert.Equal(t, 1.5, tr.Duration())

	tr, err = ReadPackage("SWM", []any{720.0, 1, 80, "25", 40.0})
	require.NoError(t, err)
	assert.Equal(t, 40, tr.PoolCount())
}

// TestReadPackageUnknownType reports the code and never panics.
func TestReadPackageUnknownType(t *testing.T) {
	for _, code := range []string{"XYZ", "", "run", "RUNNING"} {
		_, err := ReadPackage(code, []any{15000, 1, 75})
		assert.ErrorIs(t, err, ErrUnknownType, "code %q", code)
		assert.NotErrorIs(t, err, ErrInvalidData)
	}
}

// TestReadPackageSuggestion offers the nearest known code.
func TestReadPackageSuggestion(t *testing.T) {
	_, err := ReadPackage("SW", []any{720, 1, 80, 25, 40})
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), `did you mean "SWM"`)

	_, err = ReadPackage("XYZ", nil)
	require.ErrorIs(t, err, ErrUnknownType)
	assert.NotContains(t, err.Error(), "did you mean")
}

// TestReadPackageInvalidData covers arity, type and range failures.
func TestReadPackageInvalidData(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []any
	}{
		{"running too few", "RUN", []any{15000, 1}},
		{"running too many", "RUN", []any{15000, 1, 75, 180}},
		{"walking missing height", "WLK", []any{9000, 1, 75}},
		{"swimming missing laps", "SWM", []any{720, 1, 80, 25}},
		{"no fields", "RUN", nil},
		{"non numeric", "RUN", []any{"lots", 1, 75}},
		{"nil field", "RUN", []any{15000, nil, 75}},
		{"bool field", "RUN", []any{15000, true, 75}},
		{"fractional action", "RUN", []any{15000.5, 1, 75}},
		{"fractional laps", "SWM", []any{720, 1, 80, 25, 40.2}},
		{"zero duration", "RUN", []any{15000, 0, 75}},
		{"negative weight", "WLK", []any{9000, 1, -75, 180}},
		{"zero height", "WLK", []any{9000, 1, 75, 0}},
		{"unsupported type", "RUN", []any{15000, []int{1}, 75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ReadPackage(tt.code, tt.data)
			assert.ErrorIs(t, err, ErrInvalidData)
			assert.NotErrorIs(t, err, ErrUnknownType)
			assert.Equal(t, models.Training{}, tr)
		})
	}
}

// TestReadPackageRangeWrapsValueError keeps the constructor cause.
func TestReadPackageRangeWrapsValueError(t *testing.T) {
	_, err := ReadPackage("RUN", []any{15000, -1, 75})
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.ErrorIs(t, err, models.ErrInvalidValue)
}

// TestCodes lists known codes in sorted order.
func TestCodes(t *testing.T) {
	assert.Equal(t, []string{"RUN", "SWM", "WLK"}, Codes())
}
