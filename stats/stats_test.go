package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godfa/timeseries"
)

func TestFitLineExact(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 3 - 2*xi
	}

	fit, err := FitLine(x, y)
	require.NoError(t, err)

	assert.InDelta(t, -2, fit.Slope, 1e-12)
	assert.InDelta(t, 3, fit.Intercept, 1e-12)
	assert.InDelta(t, 1, fit.RSquared, 1e-12)
	assert.Equal(t, 5, fit.N)

	for _, r := range fit.Residuals(x, y) {
		assert.InDelta(t, 0, r, 1e-12)
	}
}

func TestFitLineNoisy(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 2, 4}

	fit, err := FitLine(x, y)
	require.NoError(t, err)

	// Closed form: slope = cov(x,y)/var(x) = 0.8, intercept = 2.5 - 0.8*1.5
	assert.InDelta(t, 0.8, fit.Slope, 1e-12)
	assert.InDelta(t, 1.3, fit.Intercept, 1e-12)

	// Residuals of a least-squares line sum to zero.
	res := fit.Residuals(x, y)
	sum := 0.0
	for _, r := range res {
		sum += r
	}
	assert.InDelta(t, 0, sum, 1e-12)
	assert.Equal(t, fit.Trend(x)[2], fit.Predict(2))
}

func TestFitLineConstantY(t *testing.T) {
	fit, err := FitLine([]float64{0, 1, 2}, []float64{7, 7, 7})
	require.NoError(t, err)
	assert.InDelta(t, 0, fit.Slope, 1e-12)
	assert.InDelta(t, 7, fit.Intercept, 1e-12)
	assert.Equal(t, 1.0, fit.RSquared)
}

func TestFitLineDegenerate(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"single point", []float64{1}, []float64{2}},
		{"empty", nil, nil},
		{"mismatch", []float64{1, 2, 3}, []float64{1, 2}},
		{"constant x", []float64{2, 2, 2}, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitLine(tt.x, tt.y)
			assert.ErrorIs(t, err, ErrDegenerateFit)
		})
	}
}

func TestRMS(t *testing.T) {
	assert.InDelta(t, math.Sqrt(12.5), RMS([]float64{3, 4}), 1e-12)
	assert.Equal(t, 0.0, RMS([]float64{0, 0, 0}))
	assert.True(t, math.IsNaN(RMS(nil)))
}

func TestLogSpacedSizes(t *testing.T) {
	sizes := LogSpacedSizes(10, 250, 20)
	require.NotEmpty(t, sizes)

	assert.Equal(t, 10, sizes[0])
	assert.Equal(t, 250, sizes[len(sizes)-1])
	assert.LessOrEqual(t, len(sizes), 20)
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i], sizes[i-1], "sizes must be strictly increasing")
	}

	// Log spacing: ratios are roughly constant, gaps grow.
	assert.Less(t, sizes[1]-sizes[0], sizes[len(sizes)-1]-sizes[len(sizes)-2])
}

func TestLogSpacedSizesCollapsesDuplicates(t *testing.T) {
	// 45 points between 10 and 20 cannot all be distinct integers.
	sizes := LogSpacedSizes(10, 20, 45)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, sizes)
}

func TestLinearSpacedSizes(t *testing.T) {
	assert.Equal(t, []int{10, 20, 30, 40, 50}, LinearSpacedSizes(10, 50, 5))
}

func TestSpacingEdgeCases(t *testing.T) {
	assert.Equal(t, []int{10}, LogSpacedSizes(10, 250, 1))
	assert.Equal(t, []int{10}, LinearSpacedSizes(10, 250, 1))
	assert.Equal(t, []int{7}, LogSpacedSizes(7, 7, 5))
	assert.Nil(t, LogSpacedSizes(0, 10, 5))
	assert.Nil(t, LogSpacedSizes(10, 5, 5))
	assert.Nil(t, LinearSpacedSizes(10, 50, 0))
}

func TestACF(t *testing.T) {
	// Create a simple AR(1) process
	n := 100
	phi := 0.8
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + (float64(i%10)-5)/10
	}

	acf := ACF(timeseries.New(values), 10)
	require.NotNil(t, acf)
	require.Len(t, acf, 11)

	assert.InDelta(t, 1.0, acf[0], 1e-10)
	assert.Greater(t, acf[1], 0.0)
	for _, v := range acf {
		assert.LessOrEqual(t, math.Abs(v), 1.0+1e-12)
	}
}

func TestACFMatchesDirectSum(t *testing.T) {
	values := []float64{1, 3, 2, 5, 4, 6}
	series := timeseries.New(values)
	mean := series.Mean()

	den := 0.0
	for _, v := range values {
		den += (v - mean) * (v - mean)
	}
	num := 0.0
	for i := 2; i < len(values); i++ {
		num += (values[i] - mean) * (values[i-2] - mean)
	}

	acf := ACF(series, 3)
	require.NotNil(t, acf)
	assert.InDelta(t, num/den, acf[2], 1e-12)
}

func TestACFEdgeCases(t *testing.T) {
	assert.Nil(t, ACF(timeseries.New([]float64{2, 2, 2, 2}), 2))
	assert.Nil(t, ACF(timeseries.New([]float64{}), 2))
	// maxLag is clamped to n-1
	assert.Len(t, ACF(timeseries.New([]float64{1, 2, 3}), 10), 3)
}

func TestACFWithConfidence(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i) + math.Sin(float64(i)/10)
	}

	result := ACFWithConfidence(timeseries.New(values), 20)
	require.NotNil(t, result)

	assert.InDelta(t, 1.96/math.Sqrt(100), result.ConfBounds, 1e-12)
	assert.Len(t, result.Lags, 21)
	assert.Equal(t, 20, result.Lags[20])
}

func TestSignificantLags(t *testing.T) {
	values := []float64{1.0, 0.5, 0.3, 0.1, 0.05, -0.2, -0.5}

	assert.Equal(t, []int{1, 2, 5, 6}, SignificantLags(values, 0.15))
}
