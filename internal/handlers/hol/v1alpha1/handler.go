// Package v1alpha1 handles the HolService gRPC interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	holv1alpha1 "github.com/KirkDiggler/hol-api/api/hol/v1alpha1"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/seed"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/weapon"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	WeaponService   weapon.Service
	SeedService     seed.Service
	SheetController actor.SheetController
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.WeaponService == nil {
		vb.RequiredField("WeaponService")
	}
	if c.SeedService == nil {
		vb.RequiredField("SeedService")
	}
	if c.SheetController == nil {
		vb.RequiredField("SheetController")
	}
	return vb.Build()
}

// Handler implements the HolService gRPC server
type Handler struct {
	holv1alpha1.UnimplementedHolServiceServer
	weaponService   weapon.Service
	seedService     seed.Service
	sheetController actor.SheetController
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		weaponService:   cfg.WeaponService,
		seedService:     cfg.SeedService,
		sheetController: cfg.SheetController,
	}, nil
}

func respond(v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func weaponRef(req *structpb.Struct) (weapon.WeaponRef, error) {
	id, err := requiredString(req, "weapon_id")
	if err != nil {
		return weapon.WeaponRef{}, err
	}
	return weapon.WeaponRef{ActorID: stringField(req, "actor_id"), WeaponID: id}, nil
}

// GetWeapon returns a weapon and the refines occupying its slots
func (h *Handler) GetWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ref, err := weaponRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.weaponService.GetWeapon(ctx, &weapon.GetWeaponInput{Ref: ref})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{
		"weapon":  out.Weapon,
		"refines": out.Refines,
	})
}

// AttachRefine attaches a refine to a weapon slot
func (h *Handler) AttachRefine(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ref, err := weaponRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	slot, err := requiredInt(req, "slot")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	refineID, err := requiredString(req, "refine_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.weaponService.AttachRefine(ctx, &weapon.AttachRefineInput{
		Principal: principalFromContext(ctx),
		Ref:       ref,
		Slot:      slot,
		RefineID:  refineID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"weapon": out.Weapon})
}

// DetachRefine clears a weapon slot
func (h *Handler) DetachRefine(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ref, err := weaponRef(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	slot, err := requiredInt(req, "slot")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.weaponService.DetachRefine(ctx, &weapon.DetachRefineInput{
		Principal: principalFromContext(ctx),
		Ref:       ref,
		Slot:      slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"weapon": out.Weapon})
}

// ImportEntry imports one category, either a configured one by "key" or an
// ad hoc "entry"
func (h *Handler) ImportEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	principal := principalFromContext(ctx)
	clearPack := boolField(req, "clear")

	if key := stringField(req, "key"); key != "" {
		out, err := h.seedService.ImportOne(ctx, &seed.ImportOneInput{
			Principal: principal,
			Key:       key,
			Clear:     clearPack,
		})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return respond(map[string]any{"report": toReportView(out.Report)})
	}

	entryValue := req.GetFields()["entry"].GetStructValue()
	if entryValue == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("key or entry is required"))
	}
	var entry hol.SeedEntry
	if err := fromStruct(entryValue, &entry); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.seedService.ImportEntry(ctx, &seed.ImportEntryInput{
		Principal: principal,
		Entry:     entry,
		Clear:     clearPack,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"report": toReportView(out.Report)})
}

// ImportAll imports every configured category
func (h *Handler) ImportAll(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.seedService.ImportAll(ctx, &seed.ImportAllInput{
		Principal: principalFromContext(ctx),
		Clear:     boolField(req, "clear"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"summary": toSummaryView(out.Summary)})
}

// ListImports lists the configured categories in import order
func (h *Handler) ListImports(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.seedService.ListImports(ctx, &seed.ListImportsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"entries": out.Entries})
}

type createActorRequest struct {
	Name           string          `json:"name"`
	Type           hol.ActorType   `json:"type"`
	Img            string          `json:"img"`
	CombatStats    hol.CombatStats `json:"combatStats"`
	NonCombatStats map[string]int  `json:"nonCombatStats"`
}

// CreateActor creates a character or unit
func (h *Handler) CreateActor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body createActorRequest
	if err := fromStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	input := actor.CreateActorInput(body)

	out, err := h.sheetController.CreateActor(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor})
}

// GetActorSheet returns the display view of an actor
func (h *Handler) GetActorSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID, err := requiredString(req, "actor_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetController.PrepareSheet(ctx, &actor.PrepareSheetInput{ActorID: actorID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"sheet": toSheetView(out.Sheet)})
}

// AddWeapon copies a weapon into an actor's inventory
func (h *Handler) AddWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sheetController.AddWeapon(ctx, &actor.AddWeaponInput{
		ActorID: stringField(req, "actor_id"),
		ItemID:  stringField(req, "item_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor, "item": out.Item, "added": out.Added})
}

// AddItem copies a consumable or key item into an actor's inventory
func (h *Handler) AddItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sheetController.AddItem(ctx, &actor.AddItemInput{
		ActorID: stringField(req, "actor_id"),
		ItemID:  stringField(req, "item_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor, "item": out.Item, "added": out.Added})
}

// SetSkill places a skill in a skill slot
func (h *Handler) SetSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slot, err := requiredInt(req, "slot")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetController.SetSkill(ctx, &actor.SetSkillInput{
		ActorID: stringField(req, "actor_id"),
		ItemID:  stringField(req, "item_id"),
		Slot:    slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor})
}

// AddSupport bonds a unit to an actor
func (h *Handler) AddSupport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sheetController.AddSupport(ctx, &actor.AddSupportInput{
		ActorID:        stringField(req, "actor_id"),
		SupportActorID: stringField(req, "support_actor_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor})
}

// EquipWeapon marks a carried weapon as equipped
func (h *Handler) EquipWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sheetController.EquipWeapon(ctx, &actor.EquipWeaponInput{
		ActorID:  stringField(req, "actor_id"),
		WeaponID: stringField(req, "weapon_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor})
}

// RemoveItem deletes an embedded item from an actor
func (h *Handler) RemoveItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sheetController.RemoveItem(ctx, &actor.RemoveItemInput{
		ActorID: stringField(req, "actor_id"),
		ItemID:  stringField(req, "item_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor})
}

// AdjustCharge moves an actor's charge counter by delta
func (h *Handler) AdjustCharge(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	delta, err := requiredInt(req, "delta")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetController.AdjustCharge(ctx, &actor.AdjustChargeInput{
		ActorID: stringField(req, "actor_id"),
		Delta:   delta,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(map[string]any{"actor": out.Actor})
}
