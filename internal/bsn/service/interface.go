// Package service provides the BSN 11-test validator and the sampling generator built on it.
package service

import (
	"context"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
)

// Validator decides whether a candidate passes the BSN format and checksum rule.
type Validator interface {
	IsValid(candidate int64) bool
}

// RandomSource draws uniformly distributed integers from a closed range.
type RandomSource interface {
	Int64InRange(lo, hi int64) (int64, error)
}

// Generator produces unique numbers of a requested class.
type Generator interface {
	Generate(ctx context.Context, class domain.Class, count int) ([]int64, error)
}
