package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSources(t *testing.T) {
	sources := map[string]RandomSource{
		"Crypto": NewCryptoSource(),
		"Seeded": NewSeededSource(1),
	}

	for name, source := range sources {
		t.Run(name+"_StaysInRange", func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				n, err := source.Int64InRange(10, 12)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, n, int64(10))
				assert.LessOrEqual(t, n, int64(12))
			}
		})

		t.Run(name+"_CoversBothBounds", func(t *testing.T) {
			seen := map[int64]bool{}
			for i := 0; i < 1000; i++ {
				n, err := source.Int64InRange(0, 1)
				require.NoError(t, err)
				seen[n] = true
			}
			assert.True(t, seen[0])
			assert.True(t, seen[1])
		})

		t.Run(name+"_SingleValueRange", func(t *testing.T) {
			n, err := source.Int64InRange(5, 5)
			require.NoError(t, err)
			assert.Equal(t, int64(5), n)
		})

		t.Run(name+"_Error_InvertedRange", func(t *testing.T) {
			_, err := source.Int64InRange(5, 4)
			assert.Error(t, err)
		})
	}
}
