package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Day
		wantErr bool
	}{
		{"plain", "3", 3, false},
		{"zero padded", "03", 3, false},
		{"prefixed", "day3", 3, false},
		{"prefixed padded", "day03", 3, false},
		{"upper case prefix", "DAY12", 12, false},
		{"last day", "25", 25, false},
		{"zero", "0", 0, true},
		{"past the calendar", "26", 0, true},
		{"negative", "-1", 0, true},
		{"garbage", "three", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDay)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDay_String(t *testing.T) {
	assert.Equal(t, "day03", Day(3).String())
	assert.Equal(t, "day17", Day(17).String())
}

func TestStatus_TextRoundTrip(t *testing.T) {
	for _, status := range []Status{Solved, Cached, Failed} {
		text, err := status.MarshalText()
		require.NoError(t, err)

		var got Status
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, status, got)
	}

	assert.Equal(t, "unknown", Status(42).String())
}
