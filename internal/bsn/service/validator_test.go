package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		candidate int64
		expected  bool
	}{
		{name: "Valid_111222333", candidate: 111222333, expected: true},
		{name: "Valid_EightDigits_12345672", candidate: 12345672, expected: true},
		{name: "Valid_LowestInRange_10000008", candidate: 10000008, expected: true},
		{name: "Valid_HighestInRange_999999990", candidate: 999999990, expected: true},
		{name: "Invalid_Checksum_123456789", candidate: 123456789, expected: false},
		{name: "Invalid_Checksum_99999999", candidate: 99999999, expected: false},
		{name: "Invalid_Checksum_100000000", candidate: 100000000, expected: false},
		{name: "Invalid_SevenDigitsDivisible_1000007", candidate: 1000007, expected: false},
		{name: "Invalid_TenDigits_1000000000", candidate: 1000000000, expected: false},
		{name: "Invalid_Zero", candidate: 0, expected: false},
		{name: "Invalid_Negative", candidate: -111222333, expected: false},
		{name: "Invalid_NegativeNineChars", candidate: -12345678, expected: false},
		{name: "Invalid_MinInt64", candidate: math.MinInt64, expected: false},
		{name: "Invalid_MaxInt64", candidate: math.MaxInt64, expected: false},
	}

	validator := NewElevenTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValid(tt.candidate))
			assert.Equal(t, tt.expected, validator.IsValid(tt.candidate))
			// Pure function: a second call agrees with the first.
			assert.Equal(t, IsValid(tt.candidate), IsValid(tt.candidate))
		})
	}
}

func TestShape(t *testing.T) {
	tests := []struct {
		name      string
		candidate int64
		expected  bool
	}{
		{name: "EightDigits_99999999", candidate: 99999999, expected: true},
		{name: "NineDigits_100000000", candidate: 100000000, expected: true},
		{name: "LowerBound_10000000", candidate: 10000000, expected: true},
		{name: "SevenDigits_9999999", candidate: 9999999, expected: false},
		{name: "TenDigits_1000000000", candidate: 1000000000, expected: false},
		{name: "Negative", candidate: -99999999, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := shape(tt.candidate)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestWeightedSum(t *testing.T) {
	tests := []struct {
		digits   string
		expected int
	}{
		{digits: "111222333", expected: 66},
		{digits: "123456789", expected: 147},
		{digits: "99999999", expected: 306},
		{digits: "12345672", expected: 110},
		{digits: "100000000", expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.expected, weightedSum(tt.digits))
		})
	}
}

// Every structurally valid number in a slice of the range agrees with the rule
// computed independently on the zero-padded form.
func TestIsValid_MatchesPaddedRule(t *testing.T) {
	weights := []int64{9, 8, 7, 6, 5, 4, 3, 2, -1}

	for n := int64(10_000_000); n < 10_002_000; n++ {
		var sum int64
		rest := n
		for i := len(weights) - 1; i >= 0; i-- {
			sum += (rest % 10) * weights[i]
			rest /= 10
		}
		assert.Equal(t, sum%11 == 0, IsValid(n), "candidate %d", n)
	}
}
