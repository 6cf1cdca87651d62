// Package domain defines the core BSN (burgerservicenummer) domain models used for test fixture generation.
// Numbers are classified as valid or invalid according to the 11-test checksum.
package domain

import (
	"strings"
)

// Class identifies which side of the 11-test a generated number must land on.
type Class string

const (
	ClassValid   Class = "valid"
	ClassInvalid Class = "invalid"
)

// Sampling range and structural constraints.
const (
	// MinCandidate is the smallest number drawn by the generator (the smallest 8-digit number).
	MinCandidate int64 = 10_000_000

	// MaxCandidate is the largest number drawn by the generator (the largest 9-digit number).
	MaxCandidate int64 = 999_999_999

	// MinDigits and MaxDigits bound the length of the unpadded decimal form.
	MinDigits = 8
	MaxDigits = 9

	// ChecksumModulus is the divisor of the weighted digit sum.
	ChecksumModulus = 11
)

// Weights are applied to the zero-padded 9 digit form, most significant digit first.
var Weights = [MaxDigits]int{9, 8, 7, 6, 5, 4, 3, 2, -1}

// ParseClass converts user input into a Class. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseClass(s string) (Class, error) {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks if the class is known.
func (c Class) Validate() error {
	switch c {
	case ClassValid, ClassInvalid:
		return nil
	default:
		return ErrInvalidClass
	}
}

// WantsValid reports whether numbers of this class must pass the 11-test.
func (c Class) WantsValid() bool {
	return c == ClassValid
}

// Label returns the upper-case tag used when logging generated numbers.
func (c Class) Label() string {
	return strings.ToUpper(string(c))
}

// String returns the string representation of the class.
func (c Class) String() string {
	return string(c)
}
