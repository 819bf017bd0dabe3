package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	// 70 kg, 175 cm, 30 y male with the revised Harris-Benedict constants
	male := CalculateBMR(70, 175, 30, "male")
	assert.InDelta(t, 1695.667, male, 0.001)

	// 60 kg, 165 cm, 25 y female
	female := CalculateBMR(60, 165, 25, "female")
	assert.InDelta(t, 1405.333, female, 0.001)

	// unspecified sex uses the male constants
	assert.Equal(t, male, CalculateBMR(70, 175, 30, ""))
}

func TestCalculateTDEE(t *testing.T) {
	assert.InDelta(t, 1920, CalculateTDEE(1600, "sedentary"), 1e-9)
	assert.InDelta(t, 2200, CalculateTDEE(1600, "lightly_active"), 1e-9)
	assert.InDelta(t, 2480, CalculateTDEE(1600, "moderately_active"), 1e-9)
	assert.InDelta(t, 2760, CalculateTDEE(1600, "very_active"), 1e-9)
	assert.InDelta(t, 3040, CalculateTDEE(1600, "extremely_active"), 1e-9)

	// unknown level falls back to moderately active
	assert.InDelta(t, 2480, CalculateTDEE(1600, "couch_potato"), 1e-9)
}
