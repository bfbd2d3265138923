package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	assert.Equal(t, "Seven", NumberToWords(7))
	assert.Equal(t, "Nineteen", NumberToWords(19))
	assert.Equal(t, "Forty Two", NumberToWords(42))
	assert.Equal(t, "Three Hundred", NumberToWords(300))
	assert.Equal(t, "One Thousand Two Hundred Thirty Four", NumberToWords(1234))
	assert.Equal(t, "Two Million Five", NumberToWords(2000005))
}

func TestNumberToCurrencyWords(t *testing.T) {
	assert.Equal(t, "Zero Pesos Only", NumberToCurrencyWords(0))
	assert.Equal(t, "Ten Pesos Only", NumberToCurrencyWords(10))
	assert.Equal(t, "Ten Pesos and Fifty Centavos Only", NumberToCurrencyWords(10.5))
	assert.Equal(t, "Fifty Centavos Only", NumberToCurrencyWords(0.5))
}
