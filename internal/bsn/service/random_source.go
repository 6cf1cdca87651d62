package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
)

type cryptoSource struct{}

// NewCryptoSource creates a RandomSource backed by crypto/rand.
func NewCryptoSource() RandomSource {
	return &cryptoSource{}
}

// Int64InRange returns a uniform integer in [lo, hi].
func (s *cryptoSource) Int64InRange(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, errors.New("upper bound must not be less than lower bound")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(hi-lo+1))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return lo + n.Int64(), nil
}

type seededSource struct {
	rng *mathrand.Rand
}

// NewSeededSource creates a deterministic RandomSource. The same seed always yields the
// same sequence, which makes fixture files reproducible.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{
		rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Int64InRange returns a uniform integer in [lo, hi].
func (s *seededSource) Int64InRange(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, errors.New("upper bound must not be less than lower bound")
	}
	return lo + s.rng.Int64N(hi-lo+1), nil
}
