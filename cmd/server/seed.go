package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hol-api/internal/config"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/seed"
)

var seedClear bool

var seedCmd = &cobra.Command{
	Use:   "seed [keys...]",
	Short: "Import seed data directly into Redis",
	Long: `Import seed categories into their compendium packs without going through the server.
With no keys every configured category is imported in order. Examples:

  seed
  seed refines weapons --clear`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedClear, "clear", false, "delete existing pack documents before importing")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	a.bus.SubscribeFunc(seed.EventEntryImported, 0, func(_ context.Context, e events.Event) error {
		report, ok := e.Target().(*seed.Report)
		if !ok {
			return nil
		}
		fmt.Printf("✓ %-12s created %d, updated %d, skipped %d (pack %s)\n",
			report.Entry.Label, report.Created, report.Updated, report.Skipped, report.PackID)
		return nil
	})

	if len(args) == 0 {
		out, err := a.seedService.ImportAll(ctx, &seed.ImportAllInput{
			Principal: hol.SystemPrincipal,
			Clear:     seedClear,
		})
		if err != nil {
			return err
		}
		for _, r := range out.Summary.Results {
			if r.Err != nil {
				fmt.Printf("✗ %-12s %v\n", r.Entry.Label, r.Err)
			}
		}
		fmt.Printf("\nCreated %d, updated %d, skipped %d, failed %d\n",
			out.Summary.Created, out.Summary.Updated, out.Summary.Skipped, out.Summary.Failed)
		if out.Summary.Failed > 0 {
			return fmt.Errorf("%d categories failed to import", out.Summary.Failed)
		}
		return nil
	}

	for _, key := range args {
		if _, err := a.seedService.ImportOne(ctx, &seed.ImportOneInput{
			Principal: hol.SystemPrincipal,
			Key:       key,
			Clear:     seedClear,
		}); err != nil {
			return fmt.Errorf("failed to import %s: %w", key, err)
		}
	}
	return nil
}
