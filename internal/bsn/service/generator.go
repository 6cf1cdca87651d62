package service

import (
	"context"
	"fmt"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
)

// maxPreallocation caps the up-front capacity; larger results grow on demand.
const maxPreallocation = 1 << 16

type sampler struct {
	validator   Validator
	source      RandomSource
	maxAttempts int
}

// NewGenerator creates a Generator that samples source until enough unique numbers of
// the requested class are found. maxAttempts bounds the number of draws per call;
// zero or a negative value means no bound, in which case a count larger than the
// class population in range never returns.
func NewGenerator(validator Validator, source RandomSource, maxAttempts int) Generator {
	return &sampler{
		validator:   validator,
		source:      source,
		maxAttempts: maxAttempts,
	}
}

// Generate returns count unique numbers whose validity matches class, in the order
// they were first drawn.
func (g *sampler) Generate(ctx context.Context, class domain.Class, count int) ([]int64, error) {
	if err := class.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, domain.ErrInvalidCount
	}

	wantValid := class.WantsValid()
	hint := min(count, maxPreallocation)
	seen := make(map[int64]struct{}, hint)
	numbers := make([]int64, 0, hint)

	for attempts := 0; len(numbers) < count; attempts++ {
		if g.maxAttempts > 0 && attempts >= g.maxAttempts {
			return nil, fmt.Errorf(
				"%w: found %d of %d after %d draws",
				domain.ErrGenerationExhausted,
				len(numbers),
				count,
				attempts,
			)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := g.source.Int64InRange(domain.MinCandidate, domain.MaxCandidate)
		if err != nil {
			return nil, err
		}
		if g.validator.IsValid(n) != wantValid {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}

	return numbers, nil
}
