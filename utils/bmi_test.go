package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 0.001)

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
	_, err = CalculateBMI(175, -1)
	assert.Error(t, err)
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{16, "underweight"},
		{18.49, "underweight"},
		{18.5, "normal"}, // boundary belongs to the upper band
		{24.99, "normal"},
		{25, "overweight"},
		{29.99, "overweight"},
		{30, "obese"},
		{42, "obese"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BMICategory(tc.bmi), "bmi=%v", tc.bmi)
	}
}
