// Package weapon applies refines to weapons and persists the derived result
package weapon

//go:generate mockgen -destination=mock/mock_service.go -package=weaponmock github.com/KirkDiggler/hol-api/internal/orchestrators/weapon Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/hol-api/internal/engine/refine"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/repositories/actors"
	"github.com/KirkDiggler/hol-api/internal/repositories/items"
)

// Service defines the weapon refine operations
type Service interface {
	GetWeapon(ctx context.Context, input *GetWeaponInput) (*GetWeaponOutput, error)
	// AttachRefine places a refine in a slot, replacing any occupant
	AttachRefine(ctx context.Context, input *AttachRefineInput) (*AttachRefineOutput, error)
	// DetachRefine clears a slot
	DetachRefine(ctx context.Context, input *DetachRefineInput) (*DetachRefineOutput, error)
}

// Config holds the dependencies for the weapon orchestrator
type Config struct {
	ItemRepo  items.Repository
	ActorRepo actors.Repository
	Resolver  refine.Resolver
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
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	return vb.Build()
}

type orchestrator struct {
	itemRepo  items.Repository
	actorRepo actors.Repository
	resolver  refine.Resolver
	engine    *refine.Engine
}

// NewOrchestrator creates a new weapon orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	engine, err := refine.NewEngine(&refine.Config{Resolver: cfg.Resolver})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refine engine")
	}

	return &orchestrator{
		itemRepo:  cfg.ItemRepo,
		actorRepo: cfg.ActorRepo,
		resolver:  cfg.Resolver,
		engine:    engine,
	}, nil
}

// saveFunc persists a derived weapon with a single write
type saveFunc func(ctx context.Context, weapon *hol.Item) error

func (o *orchestrator) load(ctx context.Context, ref WeaponRef) (*hol.Item, saveFunc, error) {
	if ref.WeaponID == "" {
		return nil, nil, errors.InvalidArgument("weapon ID is required")
	}

	if ref.ActorID == "" {
		out, err := o.itemRepo.Get(ctx, items.GetInput{ID: ref.WeaponID})
		if err != nil {
			return nil, nil, err
		}
		save := func(ctx context.Context, weapon *hol.Item) error {
			_, err := o.itemRepo.Update(ctx, items.UpdateInput{Item: weapon})
			return err
		}
		return out.Item, save, nil
	}

	out, err := o.actorRepo.Get(ctx, actors.GetInput{ID: ref.ActorID})
	if err != nil {
		return nil, nil, err
	}
	actor := out.Actor
	embedded := actor.EmbeddedItem(ref.WeaponID)
	if embedded == nil {
		return nil, nil, errors.NotFoundf("actor %s has no item %s", ref.ActorID, ref.WeaponID)
	}

	save := func(ctx context.Context, weapon *hol.Item) error {
		for i, item := range actor.Items {
			if item.ID == weapon.ID {
				actor.Items[i] = weapon
			}
		}
		_, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor})
		return err
	}
	return embedded, save, nil
}

func (o *orchestrator) GetWeapon(ctx context.Context, input *GetWeaponInput) (*GetWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	weapon, _, err := o.load(ctx, input.Ref)
	if err != nil {
		return nil, err
	}
	if weapon.Type != hol.ItemTypeWeapon {
		return nil, errors.InvalidArgumentf("item %s is not a weapon", weapon.ID)
	}

	occupants, err := o.engine.Occupants(ctx, weapon)
	if err != nil {
		return nil, err
	}

	return &GetWeaponOutput{Weapon: weapon, Refines: occupants}, nil
}

func (o *orchestrator) AttachRefine(ctx context.Context, input *AttachRefineInput) (*AttachRefineOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RefineID == "" {
		return nil, errors.InvalidArgument("refine ID is required")
	}

	weapon, save, err := o.load(ctx, input.Ref)
	if err != nil {
		return nil, err
	}

	ref, err := o.resolver.ResolveRefine(ctx, hol.RefineSlot{ID: input.RefineID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve refine %s", input.RefineID)
	}
	if ref == nil {
		return nil, errors.NotFoundf("refine %s not found", input.RefineID)
	}

	if ref.Refine != nil && ref.Refine.Category.IsPrivileged() && !input.Principal.IsGM {
		return nil, errors.PermissionDenied("only a GM may attach this refine").
			WithMeta("refine_id", ref.ID).
			WithMeta("category", string(ref.Refine.Category))
	}

	updated, err := o.engine.Attach(ctx, weapon, input.Slot, ref)
	if err != nil {
		return nil, err
	}

	if err := save(ctx, updated); err != nil {
		return nil, errors.Wrapf(err, "failed to save weapon %s", weapon.ID)
	}

	slog.InfoContext(ctx, "refine attached",
		"weapon_id", weapon.ID,
		"actor_id", input.Ref.ActorID,
		"slot", input.Slot,
		"refine_id", ref.ID,
		"name", updated.Name)

	return &AttachRefineOutput{Weapon: updated}, nil
}

func (o *orchestrator) DetachRefine(ctx context.Context, input *DetachRefineInput) (*DetachRefineOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	weapon, save, err := o.load(ctx, input.Ref)
	if err != nil {
		return nil, err
	}

	updated, err := o.engine.Detach(ctx, weapon, input.Slot)
	if err != nil {
		if errors.HasReason(err, errors.ReasonEmptySlot) {
			slog.WarnContext(ctx, "nothing to detach",
				"weapon_id", weapon.ID,
				"slot", input.Slot)
		}
		return nil, err
	}

	if err := save(ctx, updated); err != nil {
		return nil, errors.Wrapf(err, "failed to save weapon %s", weapon.ID)
	}

	slog.InfoContext(ctx, "refine detached",
		"weapon_id", weapon.ID,
		"actor_id", input.Ref.ActorID,
		"slot", input.Slot,
		"name", updated.Name)

	return &DetachRefineOutput{Weapon: updated}, nil
}
