// Package seed imports JSON seed data into compendium packs.
//
// Every imported document is tagged with the id of the seed record it came
// from, so re-running an import updates documents in place instead of
// duplicating them.
package seed

//go:generate mockgen -destination=mock/mock_service.go -package=seedmock github.com/KirkDiggler/hol-api/internal/orchestrators/seed Service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hol-api/internal/repositories/items"
	"github.com/KirkDiggler/hol-api/internal/repositories/packs"
	"github.com/KirkDiggler/hol-api/internal/seedsource"
)

const tracerName = "github.com/KirkDiggler/hol-api/internal/orchestrators/seed"

// Service defines the seed import operations. Every import requires a GM
// principal and fails with PermissionDenied before any I/O otherwise.
type Service interface {
	// ImportEntry imports one category described by the caller
	ImportEntry(ctx context.Context, input *ImportEntryInput) (*ImportEntryOutput, error)
	// ImportOne imports the configured category with the given key
	// Returns errors.NotFound for an unknown key
	ImportOne(ctx context.Context, input *ImportOneInput) (*ImportOneOutput, error)
	// ImportAll imports every configured category in order. A failing
	// category is recorded in the summary and the rest still run.
	ImportAll(ctx context.Context, input *ImportAllInput) (*ImportAllOutput, error)
	// ListImports returns the configured categories
	ListImports(ctx context.Context, input *ListImportsInput) (*ListImportsOutput, error)
}

// Config holds the dependencies for the seed orchestrator
type Config struct {
	ItemRepo    items.Repository
	PackRepo    packs.Repository
	Fetcher     seedsource.Fetcher
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	Imports     []hol.SeedEntry
	ModuleID    string
	FlagScope   string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.PackRepo == nil {
		vb.RequiredField("PackRepo")
	}
	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	seen := make(map[string]bool, len(c.Imports))
	for _, entry := range c.Imports {
		if seen[entry.Key] {
			vb.Fieldf("Imports", "duplicate key %q", entry.Key)
		}
		seen[entry.Key] = true
	}

	return vb.Build()
}

type orchestrator struct {
	itemRepo  items.Repository
	packRepo  packs.Repository
	fetcher   seedsource.Fetcher
	idGen     idgen.Generator
	eventBus  events.EventBus
	imports   []hol.SeedEntry
	moduleID  string
	flagScope string
	tracer    trace.Tracer
}

// NewOrchestrator creates a new seed orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	moduleID := cfg.ModuleID
	if moduleID == "" {
		moduleID = hol.ModuleID
	}
	flagScope := cfg.FlagScope
	if flagScope == "" {
		flagScope = hol.FlagScope
	}

	return &orchestrator{
		itemRepo:  cfg.ItemRepo,
		packRepo:  cfg.PackRepo,
		fetcher:   cfg.Fetcher,
		idGen:     cfg.IDGenerator,
		eventBus:  cfg.EventBus,
		imports:   append([]hol.SeedEntry(nil), cfg.Imports...),
		moduleID:  moduleID,
		flagScope: flagScope,
		tracer:    otel.Tracer(tracerName),
	}, nil
}

func requireGM(p hol.Principal) error {
	if !p.IsGM {
		return errors.PermissionDenied("only a GM may import seed data").
			WithMeta("user_id", p.UserID)
	}
	return nil
}

func validateEntry(entry hol.SeedEntry) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", entry.Key, vb)
	errors.ValidateRequired("seed_path", entry.SeedPath, vb)
	errors.ValidateRequired("pack_name", entry.PackName, vb)
	if entry.DocType != hol.DocumentTypeItem {
		vb.Fieldf("doc_type", "unsupported document type %q", entry.DocType)
	}
	if entry.ItemType == "" {
		vb.RequiredField("item_type")
	}
	return vb.Build()
}

func (o *orchestrator) ImportEntry(ctx context.Context, input *ImportEntryInput) (*ImportEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGM(input.Principal); err != nil {
		return nil, err
	}

	report, err := o.importEntry(ctx, input.Entry, input.Clear)
	if err != nil {
		return nil, err
	}
	return &ImportEntryOutput{Report: report}, nil
}

func (o *orchestrator) ImportOne(ctx context.Context, input *ImportOneInput) (*ImportOneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGM(input.Principal); err != nil {
		return nil, err
	}

	for _, entry := range o.imports {
		if entry.Key != input.Key {
			continue
		}
		report, err := o.importEntry(ctx, entry, input.Clear)
		if err != nil {
			return nil, err
		}
		return &ImportOneOutput{Report: report}, nil
	}

	return nil, errors.NotFoundf("unknown import key %q", input.Key)
}

func (o *orchestrator) ImportAll(ctx context.Context, input *ImportAllInput) (*ImportAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGM(input.Principal); err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, "seed.ImportAll",
		trace.WithAttributes(attribute.Bool("hol.seed.clear", input.Clear)))
	defer span.End()

	summary := &Summary{}
	for _, entry := range o.imports {
		report, err := o.importEntry(ctx, entry, input.Clear)
		result := &EntryResult{Entry: entry, Report: report, Err: err}
		summary.Results = append(summary.Results, result)

		if err != nil {
			summary.Failed++
			slog.ErrorContext(ctx, "seed category failed, continuing with the rest",
				"key", entry.Key,
				"error", err.Error())
			continue
		}
		summary.Created += report.Created
		summary.Updated += report.Updated
		summary.Skipped += report.Skipped
	}

	span.SetAttributes(
		attribute.Int("hol.seed.created", summary.Created),
		attribute.Int("hol.seed.updated", summary.Updated),
		attribute.Int("hol.seed.failed", summary.Failed))

	slog.InfoContext(ctx, "seed import complete",
		"categories", len(summary.Results),
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"failed", summary.Failed)

	o.publish(ctx, events.NewGameEvent(EventBatchCompleted, nil, summary))

	return &ImportAllOutput{Summary: summary}, nil
}

func (o *orchestrator) ListImports(_ context.Context, _ *ListImportsInput) (*ListImportsOutput, error) {
	return &ListImportsOutput{Entries: append([]hol.SeedEntry(nil), o.imports...)}, nil
}

// importEntry runs the import steps for one category in order: fetch, pack,
// clear, index, then records one at a time
func (o *orchestrator) importEntry(ctx context.Context, entry hol.SeedEntry, clear bool) (report *Report, err error) {
	ctx, span := o.tracer.Start(ctx, "seed.ImportEntry",
		trace.WithAttributes(
			attribute.String("hol.seed.key", entry.Key),
			attribute.Bool("hol.seed.clear", clear)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "importing seed category",
		"key", entry.Key,
		"seed_path", entry.SeedPath,
		"pack", entry.PackName)

	seed, err := o.fetchSeed(ctx, entry)
	if err != nil {
		return nil, err
	}

	pack, err := o.resolvePack(ctx, entry)
	if err != nil {
		return nil, err
	}

	// locked packs are opened for the import and locked again afterwards
	if pack.Locked {
		if _, err := o.packRepo.SetLocked(ctx, packs.SetLockedInput{ID: pack.ID, Locked: false}); err != nil {
			return nil, errors.WrapWithReason(err, errors.ReasonCollectionUnavailable, "failed to unlock pack "+pack.ID)
		}
		defer func() {
			_, lockErr := o.packRepo.SetLocked(ctx, packs.SetLockedInput{ID: pack.ID, Locked: true})
			if lockErr == nil {
				return
			}
			slog.ErrorContext(ctx, "failed to relock pack",
				"pack_id", pack.ID,
				"error", lockErr.Error())
			if err == nil {
				report = nil
				err = errors.WrapWithReason(lockErr, errors.ReasonCollectionUnavailable, "failed to relock pack "+pack.ID)
			}
		}()
	}

	report = &Report{Entry: entry, PackID: pack.ID}

	if clear {
		out, err := o.itemRepo.DeleteByPack(ctx, items.DeleteByPackInput{PackID: pack.ID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to clear pack %s", pack.ID)
		}
		report.Cleared = out.Deleted
	}

	idx, err := o.indexPack(ctx, pack.ID, entry.LegacyNameMatch)
	if err != nil {
		return nil, err
	}

	for i, raw := range seed {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "import of %s interrupted at record %d", entry.Key, i)
		}

		rec, ok := decodeRecord(raw)
		if !ok {
			slog.WarnContext(ctx, "skipping seed record without a string id",
				"key", entry.Key,
				"index", i)
			report.Skipped++
			continue
		}

		doc, dropped := convert(entry, rec, pack.ID, o.flagScope)
		if len(dropped) > 0 {
			slog.WarnContext(ctx, "seed record has malformed stat fields",
				"key", entry.Key,
				"id", rec.id,
				"fields", dropped)
		}

		if err := o.upsert(ctx, idx, rec.id, doc, report); err != nil {
			return nil, err
		}
	}

	span.SetAttributes(
		attribute.Int("hol.seed.created", report.Created),
		attribute.Int("hol.seed.updated", report.Updated),
		attribute.Int("hol.seed.skipped", report.Skipped))

	slog.InfoContext(ctx, "seed category imported",
		"key", entry.Key,
		"pack_id", pack.ID,
		"created", report.Created,
		"updated", report.Updated,
		"skipped", report.Skipped)

	e := entry
	o.publish(ctx, events.NewGameEvent(EventEntryImported, &e, report))

	return report, nil
}

func (o *orchestrator) fetchSeed(ctx context.Context, entry hol.SeedEntry) ([]json.RawMessage, error) {
	data, err := o.fetcher.Fetch(ctx, entry.SeedPath)
	if err != nil {
		return nil, errors.WrapWithReason(err, errors.ReasonInvalidSeedSource, "failed to fetch seed file "+entry.SeedPath)
	}

	return decodeSeed(entry, data)
}

// resolvePack finds the pack shipped with the module, then a world pack of
// the same name, and creates the world pack when neither exists
func (o *orchestrator) resolvePack(ctx context.Context, entry hol.SeedEntry) (*hol.Pack, error) {
	for _, pkg := range []string{o.moduleID, hol.WorldPackage} {
		out, err := o.packRepo.Get(ctx, packs.GetInput{ID: hol.PackID(pkg, entry.PackName)})
		if err == nil {
			return out.Pack, nil
		}
		if !errors.IsNotFound(err) {
			return nil, errors.WrapWithReason(err, errors.ReasonCollectionUnavailable, "failed to look up pack "+entry.PackName)
		}
	}

	created, err := o.packRepo.Create(ctx, packs.CreateInput{Pack: &hol.Pack{
		Name:         entry.PackName,
		Label:        "HoL - " + entry.Label,
		DocumentType: entry.DocType,
		Package:      hol.WorldPackage,
	}})
	if err != nil {
		return nil, errors.WrapWithReason(err, errors.ReasonCollectionUnavailable, "failed to create pack "+entry.PackName)
	}
	return created.Pack, nil
}

// packIndex maps the documents already in a pack
type packIndex struct {
	byExternalID map[string]*hol.Item
	// untagged holds documents without an external id by folded name. Only
	// filled when legacy name matching is on.
	untagged map[string]*hol.Item
}

func (o *orchestrator) indexPack(ctx context.Context, packID string, legacy bool) (*packIndex, error) {
	out, err := o.itemRepo.ListByPack(ctx, items.ListByPackInput{PackID: packID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to index pack %s", packID)
	}

	idx := &packIndex{
		byExternalID: make(map[string]*hol.Item, len(out.Items)),
		untagged:     make(map[string]*hol.Item),
	}
	for _, item := range out.Items {
		if id := item.ExternalID(o.flagScope); id != "" {
			idx.byExternalID[id] = item
			continue
		}
		if legacy {
			key := nameKey(item.Name)
			if _, taken := idx.untagged[key]; !taken {
				idx.untagged[key] = item
			}
		}
	}
	return idx, nil
}

func (o *orchestrator) upsert(ctx context.Context, idx *packIndex, externalID string, doc *hol.Item, report *Report) error {
	existing, ok := idx.byExternalID[externalID]
	if !ok {
		key := nameKey(doc.Name)
		if legacy, found := idx.untagged[key]; found {
			slog.InfoContext(ctx, "adopting untagged document by name",
				"item_id", legacy.ID,
				"name", legacy.Name,
				"external_id", externalID)
			delete(idx.untagged, key)
			existing, ok = legacy, true
		}
	}

	if ok {
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
		if _, err := o.itemRepo.Update(ctx, items.UpdateInput{Item: doc}); err != nil {
			return errors.Wrapf(err, "failed to update %s", externalID)
		}
		idx.byExternalID[externalID] = doc
		report.Updated++
		return nil
	}

	doc.ID = o.idGen.Generate()
	created, err := o.itemRepo.Create(ctx, items.CreateInput{Item: doc})
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", externalID)
	}
	idx.byExternalID[externalID] = created.Item
	report.Created++
	return nil
}

// publish notifies subscribers. Delivery failures are logged and never fail
// the import.
func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish seed event",
			"event_type", event.Type(),
			"error", err.Error())
	}
}
