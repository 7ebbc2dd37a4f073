// Package packbuild renders seed files into on-disk compendium pack artifacts
package packbuild

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/seed"
	"github.com/KirkDiggler/hol-api/internal/seedsource"
)

// Format selects the artifact layout
type Format string

// Supported formats
const (
	// FormatYAML writes packs/<pack>/<id>.yaml, one file per document
	FormatYAML Format = "yaml"
	// FormatSQLite writes packs/<pack>.db with a documents table
	FormatSQLite Format = "sqlite"
)

// Config holds the dependencies for the pack builder
type Config struct {
	Fetcher   seedsource.Fetcher
	Imports   []hol.SeedEntry
	FlagScope string
	OutDir    string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if len(c.Imports) == 0 {
		vb.RequiredField("Imports")
	}
	errors.ValidateRequired("FlagScope", c.FlagScope, vb)
	errors.ValidateRequired("OutDir", c.OutDir, vb)
	return vb.Build()
}

// Builder converts seed entries into pack artifacts
type Builder struct {
	fetcher   seedsource.Fetcher
	imports   []hol.SeedEntry
	flagScope string
	outDir    string
}

// New creates a pack builder
func New(cfg *Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Builder{
		fetcher:   cfg.Fetcher,
		imports:   append([]hol.SeedEntry(nil), cfg.Imports...),
		flagScope: cfg.FlagScope,
		outDir:    cfg.OutDir,
	}, nil
}

// BuildInput selects what to build. Empty Keys builds every entry.
type BuildInput struct {
	Format Format
	Keys   []string
}

// PackResult describes one written pack
type PackResult struct {
	Entry   hol.SeedEntry
	Path    string
	Written int
	Skipped int
}

// BuildOutput lists the packs that were written
type BuildOutput struct {
	Packs []PackResult
}

// Build writes one artifact per selected entry. It stops at the first entry
// that fails.
func (b *Builder) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var write writeFunc
	switch input.Format {
	case FormatYAML, "":
		write = writeYAML
	case FormatSQLite:
		write = writeSQLite
	default:
		return nil, errors.InvalidArgumentf("unknown pack format %q", input.Format)
	}

	entries, err := b.selectEntries(input.Keys)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", b.outDir)
	}

	out := &BuildOutput{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "build canceled")
		}

		result, err := b.buildEntry(ctx, entry, write)
		if err != nil {
			return nil, err
		}
		out.Packs = append(out.Packs, *result)
	}
	return out, nil
}

func (b *Builder) selectEntries(keys []string) ([]hol.SeedEntry, error) {
	if len(keys) == 0 {
		return b.imports, nil
	}

	byKey := make(map[string]hol.SeedEntry, len(b.imports))
	for _, entry := range b.imports {
		byKey[entry.Key] = entry
	}

	selected := make([]hol.SeedEntry, 0, len(keys))
	for _, key := range keys {
		entry, ok := byKey[key]
		if !ok {
			return nil, errors.NotFoundf("no import entry %q", key)
		}
		selected = append(selected, entry)
	}
	return selected, nil
}

func (b *Builder) buildEntry(ctx context.Context, entry hol.SeedEntry, write writeFunc) (*PackResult, error) {
	data, err := b.fetcher.Fetch(ctx, entry.SeedPath)
	if err != nil {
		return nil, errors.WrapWithReason(err, errors.ReasonInvalidSeedSource, "failed to fetch seed file "+entry.SeedPath)
	}

	docs, skipped, err := seed.ConvertSeed(entry, data, hol.PackID(hol.ModuleID, entry.PackName), b.flagScope)
	if err != nil {
		return nil, err
	}

	packDocs := make([]*document, 0, len(docs))
	for _, doc := range docs {
		packDocs = append(packDocs, newDocument(doc, b.flagScope))
	}

	path, err := write(ctx, filepath.Join(b.outDir, entry.PackName), packDocs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write pack %s", entry.PackName)
	}

	slog.InfoContext(ctx, "pack written",
		"pack", entry.PackName,
		"path", path,
		"documents", len(packDocs),
		"skipped", skipped)

	return &PackResult{
		Entry:   entry,
		Path:    path,
		Written: len(packDocs),
		Skipped: skipped,
	}, nil
}
