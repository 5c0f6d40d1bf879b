package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoadCase(t *testing.T) {
	tests := []struct {
		input   string
		want    LoadCase
		wantErr bool
	}{
		{"", Unfactored, false},
		{"D", Dead, false},
		{"d", Dead, false},
		{" lr ", Roof, false},
		{"E", Earthquake, false},
		{"snow", Unfactored, true},
	}

	for _, tt := range tests {
		got, err := ParseLoadCase(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestFactor(t *testing.T) {
	combo, err := Find("2")
	require.NoError(t, err)

	assert.Equal(t, 1.2, combo.Factor(Dead))
	assert.Equal(t, 1.6, combo.Factor(Live))
	assert.Equal(t, 0.5, combo.Factor(Roof))
	assert.Equal(t, 0.0, combo.Factor(Wind))
	assert.Equal(t, 1.0, combo.Factor(Unfactored))
}

func TestFind(t *testing.T) {
	combo, err := Find("s2")
	require.NoError(t, err)
	assert.Equal(t, "1.2D + 1.6L", combo.Description)

	_, err = Find("99")
	assert.Error(t, err)
}
