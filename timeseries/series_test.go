package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, values, s.Values)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, s.Times)
}

func TestNewWithTimesLengthMismatch(t *testing.T) {
	_, err := NewWithTimes([]float64{0, 1}, []float64{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		series *Series
		ok     bool
	}{
		{"valid", New([]float64{1, 2, 3, 4}), true},
		{"too short", New([]float64{1, 2, 3}), false},
		{"nan value", New([]float64{1, math.NaN(), 3, 4}), false},
		{"inf value", New([]float64{1, 2, math.Inf(1), 4}), false},
		{"non monotonic", &Series{Times: []float64{0, 1, 1, 2}, Values: []float64{1, 2, 3, 4}}, false},
		{"decreasing", &Series{Times: []float64{3, 2, 1, 0}, Values: []float64{1, 2, 3, 4}}, false},
		{"length mismatch", &Series{Times: []float64{0, 1, 2}, Values: []float64{1, 2, 3, 4}}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
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
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, New(tt.values).Mean(), 1e-10)
		})
	}
}

func TestVarianceAndStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	assert.InDelta(t, expected, s.Variance(), 1e-10)
	assert.InDelta(t, math.Sqrt(expected), s.Std(), 1e-10)
	assert.Equal(t, 0.0, New([]float64{1}).Variance())
}

func TestMinMax(t *testing.T) {
	s := New([]float64{3, -1, 4, 1, 5, -9, 2})
	assert.Equal(t, -9.0, s.Min())
	assert.Equal(t, 5.0, s.Max())

	empty := New([]float64{})
	assert.True(t, math.IsNaN(empty.Min()))
	assert.True(t, math.IsNaN(empty.Max()))
}

func TestIntegrate(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	// mean 3: centered -2,-1,0,1,2
	expected := []float64{-2, -3, -3, -2, 0}

	got := s.Integrate()
	require.Len(t, got, 5)
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], 1e-12, "index %d", i)
	}

	// Input untouched
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Values)
}

func TestIntegrateEndsAtZero(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = math.Sin(float64(i)/3) + float64(i%4)
	}
	got := New(values).Integrate()
	assert.InDelta(t, 0, got[len(got)-1], 1e-9)
}

func TestIntegrateEmpty(t *testing.T) {
	assert.Empty(t, New(nil).Integrate())
}

func TestDiff(t *testing.T) {
	s, err := NewWithTimes([]float64{0.5, 1, 1.5, 2}, []float64{1, 3, 6, 10})
	require.NoError(t, err)

	d := s.Diff()
	assert.Equal(t, []float64{2, 3, 4}, d.Values)
	assert.Equal(t, []float64{1, 1.5, 2}, d.Times)

	assert.Equal(t, 0, New([]float64{1}).Diff().Len())
}

func TestOffset(t *testing.T) {
	s := New([]float64{1, 2, 3})
	o := s.Offset(10)

	assert.Equal(t, []float64{11, 12, 13}, o.Values)
	assert.Equal(t, []float64{1, 2, 3}, s.Values)
	assert.Equal(t, s.Times, o.Times)
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	s.Name = "test"
	c := s.Copy()

	c.Values[0] = 100
	c.Times[0] = 100

	assert.Equal(t, 1.0, s.Values[0])
	assert.Equal(t, 0.0, s.Times[0])
	assert.Equal(t, "test", c.Name)
}
