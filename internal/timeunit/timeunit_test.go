package timeunit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Unit
		wantErr bool
	}{
		{name: "upper case file label", in: "MILLISECONDS", want: Milliseconds},
		{name: "lower case", in: "seconds", want: Seconds},
		{name: "mixed case with spaces", in: " NanoSeconds ", want: Nanoseconds},
		{name: "unknown unit", in: "fortnights", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMilliseconds(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		want  float64
	}{
		{name: "seconds", value: 2.0, from: Seconds, want: 2000},
		{name: "milliseconds unchanged", value: 17.25, from: Milliseconds, want: 17.25},
		{name: "microseconds", value: 1500, from: Microseconds, want: 1.5},
		{name: "nanoseconds", value: 2_000_000, from: Nanoseconds, want: 2},
		{name: "minutes", value: 0.5, from: Minutes, want: 30000},
		{name: "hours", value: 1.5, from: Hours, want: 5_400_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMilliseconds(tt.value, tt.from)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("unknown unit", func(t *testing.T) {
		_, err := ToMilliseconds(1, Unit("days"))
		assert.Error(t, err)
	})

	t.Run("NaN passes through", func(t *testing.T) {
		got, err := ToMilliseconds(math.NaN(), Seconds)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "MILLISECONDS", Milliseconds.Label())
	assert.Equal(t, "SECONDS", Seconds.Label())
}
