package weapon

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/repositories/items"
	"github.com/KirkDiggler/hol-api/internal/repositories/packs"
)

// StoreResolver finds refines in the document store. World items are
// checked first, then every pack in pack id order. A pack document matches
// on its own id or on its external id flag. The first match wins.
type StoreResolver struct {
	itemRepo  items.Repository
	packRepo  packs.Repository
	flagScope string
}

// ResolverConfig holds the dependencies for StoreResolver
type ResolverConfig struct {
	ItemRepo  items.Repository
	PackRepo  packs.Repository
	FlagScope string
}

// NewStoreResolver creates a resolver over the item and pack repositories
func NewStoreResolver(cfg *ResolverConfig) (*StoreResolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if cfg.PackRepo == nil {
		vb.RequiredField("PackRepo")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	scope := cfg.FlagScope
	if scope == "" {
		scope = hol.FlagScope
	}
	return &StoreResolver{itemRepo: cfg.ItemRepo, packRepo: cfg.PackRepo, flagScope: scope}, nil
}

// ResolveRefine returns nil, nil when nothing matches
func (r *StoreResolver) ResolveRefine(ctx context.Context, slot hol.RefineSlot) (*hol.Item, error) {
	if slot.ID == "" {
		return nil, nil
	}

	got, err := r.itemRepo.Get(ctx, items.GetInput{ID: slot.ID})
	switch {
	case err == nil && !got.Item.IsReadOnly():
		return got.Item, nil
	case err != nil && !errors.IsNotFound(err):
		return nil, err
	}

	list, err := r.packRepo.List(ctx, packs.ListInput{})
	if err != nil {
		return nil, err
	}

	for _, pack := range list.Packs {
		if pack.DocumentType != hol.DocumentTypeItem {
			continue
		}
		out, err := r.itemRepo.ListByPack(ctx, items.ListByPackInput{PackID: pack.ID})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			if item.ID == slot.ID || item.ExternalID(r.flagScope) == slot.ID {
				slog.DebugContext(ctx, "resolved refine from pack",
					"refine_id", slot.ID,
					"pack_id", pack.ID,
					"item_id", item.ID)
				return item, nil
			}
		}
	}

	return nil, nil
}
