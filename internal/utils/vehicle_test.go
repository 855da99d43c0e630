package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "KA-01-AB-1234", NormalizePlate("  ka-01-ab-1234 "))
	assert.Equal(t, "MH12DE1433", NormalizePlate("mh12de1433"))
}

func TestValidatePlate(t *testing.T) {
	valid := []string{"KA-01-AB-1234", "MH12DE1433", "ka 01 ab 1234", "AB1234"}
	for _, plate := range valid {
		assert.True(t, ValidatePlate(plate), plate)
	}

	invalid := []string{"", "AB", "AB--1234", "PLATE-NUMBER-WAY-TOO-LONG-123", "KA@1234"}
	for _, plate := range invalid {
		assert.False(t, ValidatePlate(plate), plate)
	}
}
