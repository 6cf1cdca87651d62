package app

import (
	"fmt"

	"github.com/allisson/bsn-generator/internal/bsn/repository"
	"github.com/allisson/bsn-generator/internal/bsn/service"
	"github.com/allisson/bsn-generator/internal/bsn/usecase"
)

// Validator returns the 11-test validator.
func (c *Container) Validator() service.Validator {
	c.validatorInit.Do(func() {
		c.validator = service.NewElevenTestValidator()
	})
	return c.validator
}

// Generator returns the BSN generator. A non-zero GeneratorSeed selects a reproducible
// random sequence.
func (c *Container) Generator() service.Generator {
	c.generatorInit.Do(func() {
		var source service.RandomSource
		if c.config.GeneratorSeed != 0 {
			source = service.NewSeededSource(c.config.GeneratorSeed)
		} else {
			source = service.NewCryptoSource()
		}
		c.generator = service.NewGenerator(c.Validator(), source, c.config.GeneratorMaxAttempts)
	})
	return c.generator
}

// ListingRepository returns the listing file repository.
func (c *Container) ListingRepository() usecase.ListingRepository {
	c.listingRepoInit.Do(func() {
		c.listingRepo = repository.NewFileRepository(c.FileSystem())
	})
	return c.listingRepo
}

// BSNUseCase returns the BSN use case, wrapped with metrics recording.
func (c *Container) BSNUseCase() (usecase.BSNUseCase, error) {
	var err error
	c.bsnUseCaseInit.Do(func() {
		c.bsnUseCase, err = c.initBSNUseCase()
		if err != nil {
			c.initErrors["bsnUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bsnUseCase"]; exists {
		return nil, storedErr
	}
	return c.bsnUseCase, nil
}

// initBSNUseCase creates the BSN use case with all its dependencies.
func (c *Container) initBSNUseCase() (usecase.BSNUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for bsn use case: %w", err)
	}

	baseUseCase := usecase.NewBSNUseCase(
		c.Generator(),
		c.Validator(),
		c.ListingRepository(),
		c.Logger(),
	)
	return usecase.NewBSNUseCaseWithMetrics(baseUseCase, businessMetrics), nil
}
