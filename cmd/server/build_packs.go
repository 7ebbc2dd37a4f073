package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hol-api/internal/config"
	"github.com/KirkDiggler/hol-api/internal/packbuild"
	"github.com/KirkDiggler/hol-api/internal/seedsource"
)

var (
	packsOut    string
	packsFormat string
)

var buildPacksCmd = &cobra.Command{
	Use:   "build-packs [keys...]",
	Short: "Render seed files into compendium pack artifacts",
	Long: `Convert seed files into pack artifacts on disk. Seed files are read from
HOL_SEED_BASE, or from the files compiled into the binary. Examples:

  build-packs
  build-packs refines --format sqlite --out dist/packs`,
	RunE: runBuildPacks,
}

func init() {
	buildPacksCmd.Flags().StringVar(&packsOut, "out", "packs", "output directory")
	buildPacksCmd.Flags().StringVar(&packsFormat, "format", string(packbuild.FormatYAML), "yaml or sqlite")
}

func runBuildPacks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fetcher, err := seedsource.New(&seedsource.Config{Base: cfg.SeedBase, Timeout: cfg.SeedTimeout})
	if err != nil {
		return fmt.Errorf("failed to create seed source: %w", err)
	}

	builder, err := packbuild.New(&packbuild.Config{
		Fetcher:   fetcher,
		Imports:   config.DefaultImports(),
		FlagScope: cfg.FlagScope,
		OutDir:    packsOut,
	})
	if err != nil {
		return err
	}

	fmt.Println("Building packs from seed data...")
	out, err := builder.Build(ctx, &packbuild.BuildInput{
		Format: packbuild.Format(packsFormat),
		Keys:   args,
	})
	if err != nil {
		return err
	}

	for _, p := range out.Packs {
		fmt.Printf("✓ Wrote %d documents to %s", p.Written, p.Path)
		if p.Skipped > 0 {
			fmt.Printf(" (%d skipped)", p.Skipped)
		}
		fmt.Println()
	}
	return nil
}
