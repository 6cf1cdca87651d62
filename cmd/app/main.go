// Package main provides the entry point for the bsn-generator command line.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/bsn-generator/cmd/app/commands"
	"github.com/allisson/bsn-generator/internal/app"
	"github.com/allisson/bsn-generator/internal/config"
	"github.com/allisson/bsn-generator/internal/console"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "bsn-generator",
		Usage:   "Generate valid or invalid Dutch BSN numbers",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Type of BSN numbers to generate: 'valid' or 'invalid' (required)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "How many BSNs to generate (required)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output .txt file to save the generated BSNs (required)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.BoolFlag{
				Name:  "no-banner",
				Usage: "Disable the CLI banner",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Seed for a reproducible listing (0 draws from crypto/rand)",
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "Give up after this many random draws (0 means no limit)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			if cmd.IsSet("seed") {
				cfg.GeneratorSeed = cmd.Uint64("seed")
			}
			if cmd.IsSet("max-attempts") {
				cfg.GeneratorMaxAttempts = int(cmd.Int("max-attempts"))
			}

			container := app.NewContainer(cfg)
			defer shutdown(ctx, container)

			bsnUseCase, err := container.BSNUseCase()
			if err != nil {
				return err
			}

			return commands.RunGenerate(
				ctx,
				bsnUseCase,
				container.Logger(),
				commands.DefaultOutput(),
				console.NewPalette(console.ColorEnabled(cmd.Bool("no-color"), os.Stdout)),
				commands.GenerateOptions{
					Type:     cmd.String("type"),
					Count:    int(cmd.Int("count")),
					Output:   cmd.String("output"),
					NoBanner: cmd.Bool("no-banner"),
					Version:  version,
				},
			)
		},
		Commands: []*cli.Command{
			{
				Name:  "verify",
				Usage: "Re-validate an existing BSN listing file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Listing file with one number per line",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Fail unless every number is of this type: 'valid' or 'invalid'",
					},
					&cli.BoolFlag{
						Name:  "no-color",
						Usage: "Disable colored output",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					defer shutdown(ctx, container)

					bsnUseCase, err := container.BSNUseCase()
					if err != nil {
						return err
					}

					return commands.RunVerify(
						ctx,
						bsnUseCase,
						container.Logger(),
						commands.DefaultOutput(),
						console.NewPalette(console.ColorEnabled(cmd.Bool("no-color"), os.Stdout)),
						commands.VerifyOptions{
							Input: cmd.String("input"),
							Type:  cmd.String("type"),
						},
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// shutdown releases container resources and logs any errors.
func shutdown(ctx context.Context, container *app.Container) {
	if err := container.Shutdown(ctx); err != nil {
		container.Logger().Error("failed to shutdown container", slog.Any("error", err))
	}
}
