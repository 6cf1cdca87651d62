package service

import (
	"strconv"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
)

type elevenTestValidator struct{}

// NewElevenTestValidator creates a validator implementing the BSN variant of the 11-test.
func NewElevenTestValidator() Validator {
	return &elevenTestValidator{}
}

// IsValid reports whether candidate is a well-formed BSN.
func (v *elevenTestValidator) IsValid(candidate int64) bool {
	return IsValid(candidate)
}

// IsValid applies the 11-test to candidate. The unpadded decimal form must have 8 or 9
// digits and must not start with '0'; the checksum then runs over the form left-padded
// to 9 digits. Any int64 is accepted, negative values are simply invalid.
func IsValid(candidate int64) bool {
	digits, ok := shape(candidate)
	if !ok {
		return false
	}
	return weightedSum(digits)%domain.ChecksumModulus == 0
}

// shape returns the unpadded decimal form of candidate and whether it passes the
// structural checks: 8 or 9 digits and no leading zero.
func shape(candidate int64) (string, bool) {
	if candidate < 0 {
		return "", false
	}

	s := strconv.FormatInt(candidate, 10)
	if len(s) < domain.MinDigits || len(s) > domain.MaxDigits {
		return "", false
	}
	if s[0] == '0' {
		return "", false
	}
	return s, true
}

// weightedSum computes the 11-test sum of a digit string of at most 9 characters.
// Missing leading positions count as zero.
func weightedSum(digits string) int {
	offset := domain.MaxDigits - len(digits)
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * domain.Weights[offset+i]
	}
	return sum
}
