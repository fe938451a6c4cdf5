package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, values, s.Values)
	require.Len(t, s.Timestamps, 5)
	assert.Equal(t, time.Hour, s.Timestamps[1].Sub(s.Timestamps[0]))
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.AddDate(0, 0, 1)}

	s, err := NewWithTimestamps(times, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = NewWithTimestamps(times, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			assert.InDelta(t, tt.expected, s.Mean(), 1e-10)
		})
	}

	assert.True(t, math.IsNaN(New([]float64{}).Mean()))
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 4.571428571428571, s.Variance(), 1e-10)

	assert.Equal(t, 0.0, New([]float64{3}).Variance())
	assert.True(t, math.IsNaN(New(nil).Variance()))
}

func TestStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, math.Sqrt(4.571428571428571), s.Std(), 1e-10)
}

func TestSummary(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	sum := s.Summary()

	assert.Equal(t, 8, sum.N)
	assert.Equal(t, s.Mean(), sum.Mean)
	assert.Equal(t, s.Variance(), sum.Variance)
	assert.Equal(t, s.Std(), sum.StdDev)
	assert.True(t, sum.Valid())

	assert.False(t, New(nil).Summary().Valid())
}

func TestMinMax(t *testing.T) {
	s := New([]float64{5, 2, 8, 1, 9, 3})
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 9.0, s.Max())

	empty := New(nil)
	assert.True(t, math.IsNaN(empty.Min()))
	assert.True(t, math.IsNaN(empty.Max()))
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	s.Name = "x"

	sliced := s.Slice(1, 4)
	assert.Equal(t, []float64{2, 3, 4}, sliced.Values)
	assert.Equal(t, s.Timestamps[1:4], sliced.Timestamps)
	assert.Equal(t, "x", sliced.Name)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Slice(-3, 100).Values)
	assert.Empty(t, s.Slice(4, 2).Values)
}

func TestNormalize(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	normalized := s.Normalize()

	assert.InDelta(t, 0, normalized.Mean(), 1e-10)
	assert.InDelta(t, 1, normalized.Std(), 1e-10)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Values)

	constant := New([]float64{4, 4, 4})
	assert.Equal(t, constant.Values, constant.Normalize().Values)

	single := New([]float64{4})
	assert.Equal(t, single.Values, single.Normalize().Values)

	empty := New([]float64{})
	assert.Empty(t, empty.Normalize().Values)
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	copied := s.Copy()

	s.Values[0] = 100

	assert.Equal(t, 1.0, copied.Values[0])
}
