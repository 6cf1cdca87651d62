package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/config"
	"github.com/allisson/bsn-generator/internal/metrics"
)

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := &config.Config{LogLevel: "info", MetricsNamespace: "bsn_generator"}

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}
	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger is a singleton tagged with the run id.
func TestContainerLogger(t *testing.T) {
	var buf bytes.Buffer
	container := NewContainer(&config.Config{LogLevel: "debug"}).WithLogWriter(&buf)

	logger := container.Logger()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger != container.Logger() {
		t.Error("expected same logger instance on multiple calls")
	}

	logger.Debug("hello")
	if !strings.Contains(buf.String(), `"run_id":"`+container.RunID()+`"`) {
		t.Errorf("expected run_id in log output, got %s", buf.String())
	}
}

// TestContainerLoggerDefaultLevel verifies that unknown levels fall back to warn.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	container := NewContainer(&config.Config{LogLevel: "verbose"}).WithLogWriter(&buf)

	container.Logger().Info("hidden")
	container.Logger().Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info records should be filtered at the default level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn records should pass at the default level")
	}
}

// TestContainerBusinessMetricsDisabled verifies that a no-op recorder is used without metrics.
func TestContainerBusinessMetricsDisabled(t *testing.T) {
	container := NewContainer(&config.Config{MetricsEnabled: false})

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider != nil {
		t.Error("expected nil provider when metrics are disabled")
	}

	bm, err := container.BusinessMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := bm.(*metrics.NoOpBusinessMetrics); !ok {
		t.Errorf("expected NoOpBusinessMetrics, got %T", bm)
	}
}

// TestContainerLazyInitialization verifies that components are created once.
func TestContainerLazyInitialization(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "error"})

	if container.Validator() != container.Validator() {
		t.Error("expected same validator instance")
	}
	if container.Generator() != container.Generator() {
		t.Error("expected same generator instance")
	}
	if container.ListingRepository() != container.ListingRepository() {
		t.Error("expected same repository instance")
	}

	uc1, err := container.BSNUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc2, err := container.BSNUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc1 != uc2 {
		t.Error("expected same use case instance")
	}
}

// TestContainerSeededGenerator verifies that the same seed produces the same listing.
func TestContainerSeededGenerator(t *testing.T) {
	generate := func() []int64 {
		container := NewContainer(&config.Config{LogLevel: "error", GeneratorSeed: 99})
		uc, err := container.BSNUseCase()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		numbers, err := uc.Generate(context.Background(), domain.ClassInvalid, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return numbers
	}

	first, second := generate(), generate()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical listings, got %v and %v", first, second)
		}
	}
}

// TestContainerShutdown verifies that metrics are flushed to the textfile on shutdown.
func TestContainerShutdown(t *testing.T) {
	t.Run("without metrics", func(t *testing.T) {
		container := NewContainer(&config.Config{})
		if err := container.Shutdown(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with metrics textfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bsn.prom")
		container := NewContainer(&config.Config{
			LogLevel:         "error",
			MetricsEnabled:   true,
			MetricsNamespace: "bsn_generator",
			MetricsTextfile:  path,
		})

		uc, err := container.BSNUseCase()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Generate(context.Background(), domain.ClassValid, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := container.Shutdown(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected metrics textfile: %v", err)
		}
		if !strings.Contains(string(data), "bsn_generator_numbers_generated_total") {
			t.Errorf("expected generated numbers counter in textfile, got %s", data)
		}
	})
}
