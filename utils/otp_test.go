package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP_Format(t *testing.T) {
	otp, err := GenerateOTP()

	assert.NoError(t, err)
	assert.Len(t, otp, 6)

	_, err = strconv.Atoi(otp)
	assert.NoError(t, err)
}

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		otp, err := GenerateOTP()
		assert.NoError(t, err)

		n, err := strconv.Atoi(otp)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateOTP_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		otp, err := GenerateOTP()
		assert.NoError(t, err)
		seen[otp] = true
	}

	// 100 draws from 900000 values colliding into one is not credible
	assert.Greater(t, len(seen), 1)
}
