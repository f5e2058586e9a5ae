package distances

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "identical series",
			a:    []float64{1, 2, 3},
			b:    []float64{1, 2, 3},
			want: 0,
		},
		{
			name: "three four five",
			a:    []float64{0, 0},
			b:    []float64{3, 4},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Euclidean(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDTW(t *testing.T) {
	t.Run("identical series", func(t *testing.T) {
		a := []float64{1, 2, 3, 2, 1}
		assert.InDelta(t, 0, DTW(a, a), 1e-9)
	})

	t.Run("warping absorbs a shifted step", func(t *testing.T) {
		a := []float64{0, 0, 1}
		b := []float64{0, 1, 1}
		// Euclidean sees two mismatches, warping sees none.
		assert.InDelta(t, 0, DTW(a, b), 1e-9)
		assert.Greater(t, SquaredEuclidean(a, b), 0.0)
	})

	t.Run("different lengths", func(t *testing.T) {
		a := []float64{1, 2, 3}
		b := []float64{1, 1, 2, 2, 3}
		assert.InDelta(t, 0, DTW(a, b), 1e-9)
	})
}

func TestDTWAlignmentPath(t *testing.T) {
	a := []float64{0, 0, 1}
	b := []float64{0, 1, 1}

	path, dist := DTWAlignmentPath(a, b)

	assert.InDelta(t, 0, dist, 1e-9)
	assert.Equal(t, [2]int{0, 0}, path[0])
	assert.Equal(t, [2]int{len(a) - 1, len(b) - 1}, path[len(path)-1])

	// Steps only move forward by at most one in each dimension.
	for i := 1; i < len(path); i++ {
		di := path[i][0] - path[i-1][0]
		dj := path[i][1] - path[i-1][1]
		assert.GreaterOrEqual(t, di, 0)
		assert.GreaterOrEqual(t, dj, 0)
		assert.LessOrEqual(t, di, 1)
		assert.LessOrEqual(t, dj, 1)
		assert.True(t, di+dj > 0, "path must advance")
	}
}
