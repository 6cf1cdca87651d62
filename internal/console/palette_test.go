package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPalette(t *testing.T) {
	t.Run("Enabled_WrapsWithCodes", func(t *testing.T) {
		p := NewPalette(true)

		assert.Equal(t, "\033[92mok\033[0m", p.Green("ok"))
		assert.Equal(t, "\033[91m5\033[0m", p.Red(5))
		assert.Equal(t, "\033[93my\033[0m", p.Yellow("y"))
		assert.Equal(t, "\033[94mb\033[0m", p.Blue("b"))
		assert.Equal(t, "\033[96mc\033[0m", p.Cyan("c"))
		assert.Equal(t, "\033[1m10\033[0m", p.Bold(10))
	})

	t.Run("Disabled_ReturnsPlainText", func(t *testing.T) {
		p := NewPalette(false)

		for _, s := range []string{p.Green("x"), p.Red("x"), p.Yellow("x"), p.Blue("x"), p.Cyan("x"), p.Bold("x")} {
			assert.Equal(t, "x", s)
		}
		assert.Equal(t, "42", p.Bold(42))
	})
}

func TestColorEnabled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, ColorEnabled(false, f), "regular files are not terminals")
	assert.False(t, ColorEnabled(true, f))
	assert.False(t, ColorEnabled(false, nil))
}
