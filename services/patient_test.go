package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBMI(t *testing.T) {
	// 70 kg at 175 cm
	assert.Equal(t, 22.86, ComputeBMI(70, 175))
	// 90 kg at 180 cm
	assert.Equal(t, 27.78, ComputeBMI(90, 180))
}

func TestComputeBMI_ZeroInputs(t *testing.T) {
	assert.Equal(t, 0.0, ComputeBMI(0, 175))
	assert.Equal(t, 0.0, ComputeBMI(70, 0))
	assert.Equal(t, 0.0, ComputeBMI(-70, 175))
}
