// Package actor manages character sheets: inventory, skills, supports and charge
package actor

//go:generate mockgen -destination=mock/mock_service.go -package=actormock github.com/KirkDiggler/hol-api/internal/orchestrators/actor SheetController

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hol-api/internal/repositories/actors"
	"github.com/KirkDiggler/hol-api/internal/repositories/items"
)

// SheetController defines the character sheet operations
type SheetController interface {
	CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error)
	PrepareSheet(ctx context.Context, input *PrepareSheetInput) (*PrepareSheetOutput, error)
	// AddWeapon copies a weapon into the actor. A weapon with the same name is not added twice.
	AddWeapon(ctx context.Context, input *AddWeaponInput) (*AddWeaponOutput, error)
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	SetSkill(ctx context.Context, input *SetSkillInput) (*SetSkillOutput, error)
	AddSupport(ctx context.Context, input *AddSupportInput) (*AddSupportOutput, error)
	EquipWeapon(ctx context.Context, input *EquipWeaponInput) (*EquipWeaponOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	AdjustCharge(ctx context.Context, input *AdjustChargeInput) (*AdjustChargeOutput, error)
}

// Config holds the dependencies for the sheet controller
type Config struct {
	ActorRepo   actors.Repository
	ItemRepo    items.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	actorRepo actors.Repository
	itemRepo  items.Repository
	idGen     idgen.Generator
}

// NewOrchestrator creates a new sheet controller
func NewOrchestrator(cfg *Config) (SheetController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		actorRepo: cfg.ActorRepo,
		itemRepo:  cfg.ItemRepo,
		idGen:     cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Name == "" {
		vb.RequiredField("name")
	}
	switch input.Type {
	case hol.ActorTypeCharacter, hol.ActorTypeUnit:
	default:
		vb.Fieldf("type", "must be character or unit, got %q", input.Type)
	}
	allocated := 0
	for stat, v := range input.NonCombatStats {
		if v < 0 {
			vb.Field("nonCombatStats."+stat, "must not be negative")
		}
		allocated += v
	}
	if allocated > hol.NonCombatPointPool {
		vb.Fieldf("nonCombatStats", "allocates %d of %d points", allocated, hol.NonCombatPointPool)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	img := input.Img
	if img == "" {
		img = hol.DefaultActorImage
	}

	actor := &hol.Actor{
		ID:             o.idGen.Generate(),
		Name:           input.Name,
		Type:           input.Type,
		Img:            img,
		CombatStats:    input.CombatStats,
		NonCombatStats: input.NonCombatStats,
		Inventory:      hol.Inventory{Weapons: []string{}, Items: []string{}},
		Skills:         make([]string, hol.SkillSlotCount),
	}

	out, err := o.actorRepo.Create(ctx, actors.CreateInput{Actor: actor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor")
	}

	slog.InfoContext(ctx, "actor created",
		"actor_id", out.Actor.ID,
		"type", out.Actor.Type)

	return &CreateActorOutput{Actor: out.Actor}, nil
}

func (o *orchestrator) getActor(ctx context.Context, id string) (*hol.Actor, error) {
	if id == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	out, err := o.actorRepo.Get(ctx, actors.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Actor, nil
}

func (o *orchestrator) save(ctx context.Context, actor *hol.Actor) (*hol.Actor, error) {
	out, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save actor %s", actor.ID)
	}
	return out.Actor, nil
}

func (o *orchestrator) PrepareSheet(ctx context.Context, input *PrepareSheetInput) (*PrepareSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	return &PrepareSheetOutput{Sheet: BuildSheet(actor)}, nil
}

// BuildSheet computes the display view of an actor
func BuildSheet(actor *hol.Actor) *Sheet {
	sheet := &Sheet{
		Actor:        actor,
		CombatTotals: combatTotals(actor.CombatStats),
		WeaponSlots:  make([]WeaponSlot, hol.MaxWeaponSlots),
		ItemSlots:    make([]*hol.Item, hol.MaxItemSlots),
		SkillSlots:   make([]*hol.Item, hol.SkillSlotCount),
		Supports:     actor.Supports,
	}

	if actor.CurrentHP != nil {
		sheet.CurrentHP = *actor.CurrentHP
	} else {
		sheet.CurrentHP = sheet.CombatTotals.HP
	}

	allocated := 0
	for _, v := range actor.NonCombatStats {
		allocated += v
	}
	sheet.UnallocatedPoints = hol.NonCombatPointPool - allocated

	// equipped weapon always takes the first row
	weapons := make([]WeaponSlot, 0, hol.MaxWeaponSlots)
	if equipped := actor.EmbeddedItem(actor.Inventory.Equipped); equipped != nil {
		weapons = append(weapons, WeaponSlot{Item: equipped, Equipped: true})
	}
	for _, id := range actor.Inventory.Weapons {
		if id == actor.Inventory.Equipped {
			continue
		}
		item := actor.EmbeddedItem(id)
		if item == nil || item.Type != hol.ItemTypeWeapon {
			continue
		}
		weapons = append(weapons, WeaponSlot{Item: item})
	}
	copy(sheet.WeaponSlots, weapons)

	carried := make([]*hol.Item, 0, hol.MaxItemSlots)
	for _, id := range actor.Inventory.Items {
		item := actor.EmbeddedItem(id)
		if item == nil {
			continue
		}
		if item.Type == hol.ItemTypeConsumable || item.Type == hol.ItemTypeKeyItem {
			carried = append(carried, item)
		}
	}
	copy(sheet.ItemSlots, carried)

	for i := 0; i < hol.SkillSlotCount && i < len(actor.Skills); i++ {
		if actor.Skills[i] == "" {
			continue
		}
		sheet.SkillSlots[i] = actor.EmbeddedItem(actor.Skills[i])
	}

	return sheet
}

func combatTotals(base hol.CombatStats) hol.CombatStats {
	orDefault := func(v, def int) int {
		if v == 0 {
			return def
		}
		return v
	}
	return hol.CombatStats{
		HP:   orDefault(base.HP, hol.DefaultHP),
		Atk:  orDefault(base.Atk, hol.DefaultStat),
		Spd:  orDefault(base.Spd, hol.DefaultStat),
		Dex:  orDefault(base.Dex, hol.DefaultStat),
		Def:  orDefault(base.Def, hol.DefaultStat),
		Res:  orDefault(base.Res, hol.DefaultStat),
		Luck: orDefault(base.Luck, hol.DefaultStat),
	}
}

// embed copies a source document into the actor unless one with the same
// name and type is already carried. The copy is a world-style editable item.
func (o *orchestrator) embed(ctx context.Context, actor *hol.Actor, itemID string, accept func(hol.ItemType) bool) (*hol.Item, bool, error) {
	if itemID == "" {
		return nil, false, errors.InvalidArgument("item ID is required")
	}

	out, err := o.itemRepo.Get(ctx, items.GetInput{ID: itemID})
	if err != nil {
		return nil, false, err
	}
	source := out.Item
	if !accept(source.Type) {
		return nil, false, errors.InvalidArgumentf("item %s has type %s", source.ID, source.Type)
	}

	if existing := actor.FindEmbedded(source.Name, source.Type); existing != nil {
		return existing, false, nil
	}

	copied := source.Clone()
	copied.ID = o.idGen.Generate()
	copied.Pack = ""
	copied.SetFlag(hol.FlagScope, hol.SourceIDFlag, source.ID)
	actor.Items = append(actor.Items, copied)
	return copied, true, nil
}

func (o *orchestrator) AddWeapon(ctx context.Context, input *AddWeaponInput) (*AddWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	item, added, err := o.embed(ctx, actor, input.ItemID, func(t hol.ItemType) bool {
		return t == hol.ItemTypeWeapon
	})
	if err != nil {
		return nil, err
	}
	if !added {
		slog.InfoContext(ctx, "weapon already carried",
			"actor_id", actor.ID,
			"name", item.Name)
		return &AddWeaponOutput{Actor: actor, Item: item}, nil
	}
	if len(actor.Inventory.Weapons) >= hol.MaxWeaponSlots {
		return nil, errors.FailedPreconditionf("actor %s already carries %d weapons", actor.ID, hol.MaxWeaponSlots)
	}

	actor.Inventory.Weapons = append(actor.Inventory.Weapons, item.ID)
	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "weapon added",
		"actor_id", actor.ID,
		"item_id", item.ID,
		"source_id", input.ItemID)

	return &AddWeaponOutput{Actor: saved, Item: item, Added: true}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	item, added, err := o.embed(ctx, actor, input.ItemID, func(t hol.ItemType) bool {
		return t == hol.ItemTypeConsumable || t == hol.ItemTypeKeyItem
	})
	if err != nil {
		return nil, err
	}
	if !added {
		return &AddItemOutput{Actor: actor, Item: item}, nil
	}
	if len(actor.Inventory.Items) >= hol.MaxItemSlots {
		return nil, errors.FailedPreconditionf("actor %s already carries %d items", actor.ID, hol.MaxItemSlots)
	}

	actor.Inventory.Items = append(actor.Inventory.Items, item.ID)
	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item added",
		"actor_id", actor.ID,
		"item_id", item.ID,
		"source_id", input.ItemID)

	return &AddItemOutput{Actor: saved, Item: item, Added: true}, nil
}

func (o *orchestrator) SetSkill(ctx context.Context, input *SetSkillInput) (*SetSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Slot < 0 || input.Slot >= hol.SkillSlotCount {
		return nil, errors.InvalidArgumentf("skill slot must be between 0 and %d", hol.SkillSlotCount-1)
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	item, _, err := o.embed(ctx, actor, input.ItemID, func(t hol.ItemType) bool {
		return t == hol.ItemTypeSkill
	})
	if err != nil {
		return nil, err
	}

	for len(actor.Skills) < hol.SkillSlotCount {
		actor.Skills = append(actor.Skills, "")
	}
	actor.Skills[input.Slot] = item.ID

	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "skill set",
		"actor_id", actor.ID,
		"slot", input.Slot,
		"item_id", item.ID)

	return &SetSkillOutput{Actor: saved}, nil
}

func (o *orchestrator) AddSupport(ctx context.Context, input *AddSupportInput) (*AddSupportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SupportActorID == "" {
		return nil, errors.InvalidArgument("support actor ID is required")
	}
	if input.SupportActorID == input.ActorID {
		return nil, errors.InvalidArgument("an actor cannot support itself")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	partner, err := o.getActor(ctx, input.SupportActorID)
	if err != nil {
		return nil, err
	}
	if partner.Type != hol.ActorTypeUnit {
		return nil, errors.InvalidArgumentf("actor %s is not a unit", partner.ID)
	}

	if _, ok := actor.Supports[partner.ID]; ok {
		return &AddSupportOutput{Actor: actor}, nil
	}
	if actor.Supports == nil {
		actor.Supports = make(map[string]string)
	}
	actor.Supports[partner.ID] = hol.SupportRankC

	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "support added",
		"actor_id", actor.ID,
		"support_id", partner.ID)

	return &AddSupportOutput{Actor: saved}, nil
}

func (o *orchestrator) EquipWeapon(ctx context.Context, input *EquipWeaponInput) (*EquipWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	item := actor.EmbeddedItem(input.WeaponID)
	if item == nil || item.Type != hol.ItemTypeWeapon {
		return nil, errors.NotFoundf("actor %s carries no weapon %s", actor.ID, input.WeaponID)
	}

	actor.Inventory.Equipped = item.ID
	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "weapon equipped",
		"actor_id", actor.ID,
		"item_id", item.ID)

	return &EquipWeaponOutput{Actor: saved}, nil
}

func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.EmbeddedItem(input.ItemID) == nil {
		return nil, errors.NotFoundf("actor %s has no item %s", actor.ID, input.ItemID)
	}

	actor.Inventory.Weapons = without(actor.Inventory.Weapons, input.ItemID)
	actor.Inventory.Items = without(actor.Inventory.Items, input.ItemID)
	if actor.Inventory.Equipped == input.ItemID {
		actor.Inventory.Equipped = ""
	}
	for i, id := range actor.Skills {
		if id == input.ItemID {
			actor.Skills[i] = ""
		}
	}

	kept := actor.Items[:0]
	for _, item := range actor.Items {
		if item.ID != input.ItemID {
			kept = append(kept, item)
		}
	}
	actor.Items = kept

	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item removed",
		"actor_id", actor.ID,
		"item_id", input.ItemID)

	return &RemoveItemOutput{Actor: saved}, nil
}

func (o *orchestrator) AdjustCharge(ctx context.Context, input *AdjustChargeInput) (*AdjustChargeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	actor.Charge += input.Delta
	if actor.Charge < 0 {
		actor.Charge = 0
	}

	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "charge adjusted",
		"actor_id", actor.ID,
		"delta", input.Delta,
		"charge", saved.Charge)

	return &AdjustChargeOutput{Actor: saved}, nil
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
