package actor

import (
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// WeaponSlot is one row of the weapon inventory
type WeaponSlot struct {
	Item     *hol.Item
	Equipped bool
}

// Sheet is the display-ready view of an actor. Empty slots hold nil items.
type Sheet struct {
	Actor             *hol.Actor
	CurrentHP         int
	CombatTotals      hol.CombatStats
	UnallocatedPoints int
	WeaponSlots       []WeaponSlot
	ItemSlots         []*hol.Item
	SkillSlots        []*hol.Item
	Supports          map[string]string
}

// CreateActorInput creates a character or unit
type CreateActorInput struct {
	Name           string
	Type           hol.ActorType
	Img            string
	CombatStats    hol.CombatStats
	NonCombatStats map[string]int
}

// CreateActorOutput holds the new actor
type CreateActorOutput struct {
	Actor *hol.Actor
}

// PrepareSheetInput builds the sheet of an actor
type PrepareSheetInput struct {
	ActorID string
}

// PrepareSheetOutput holds the sheet
type PrepareSheetOutput struct {
	Sheet *Sheet
}

// AddWeaponInput copies a weapon document into an actor's inventory
type AddWeaponInput struct {
	ActorID string
	ItemID  string
}

// AddWeaponOutput reports the embedded copy. Added is false when the actor
// already carried a weapon of the same name.
type AddWeaponOutput struct {
	Actor *hol.Actor
	Item  *hol.Item
	Added bool
}

// AddItemInput copies a consumable or key item into an actor's inventory
type AddItemInput struct {
	ActorID string
	ItemID  string
}

// AddItemOutput reports the embedded copy
type AddItemOutput struct {
	Actor *hol.Actor
	Item  *hol.Item
	Added bool
}

// SetSkillInput places a skill in one of the skill slots
type SetSkillInput struct {
	ActorID string
	ItemID  string
	Slot    int
}

// SetSkillOutput holds the updated actor
type SetSkillOutput struct {
	Actor *hol.Actor
}

// AddSupportInput bonds another unit to the actor
type AddSupportInput struct {
	ActorID        string
	SupportActorID string
}

// AddSupportOutput holds the updated actor
type AddSupportOutput struct {
	Actor *hol.Actor
}

// EquipWeaponInput marks an embedded weapon as equipped
type EquipWeaponInput struct {
	ActorID  string
	WeaponID string
}

// EquipWeaponOutput holds the updated actor
type EquipWeaponOutput struct {
	Actor *hol.Actor
}

// RemoveItemInput deletes an embedded item and every slot reference to it
type RemoveItemInput struct {
	ActorID string
	ItemID  string
}

// RemoveItemOutput holds the updated actor
type RemoveItemOutput struct {
	Actor *hol.Actor
}

// AdjustChargeInput moves the charge counter by Delta
type AdjustChargeInput struct {
	ActorID string
	Delta   int
}

// AdjustChargeOutput holds the updated actor
type AdjustChargeOutput struct {
	Actor *hol.Actor
}
