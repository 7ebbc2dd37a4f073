package weapon

import (
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// WeaponRef points at a world weapon, or at a weapon embedded in an actor
// when ActorID is set
type WeaponRef struct {
	ActorID  string
	WeaponID string
}

// GetWeaponInput loads a weapon
type GetWeaponInput struct {
	Ref WeaponRef
}

// GetWeaponOutput holds the weapon and the refines resolved for its slots
type GetWeaponOutput struct {
	Weapon  *hol.Item
	Refines [hol.RefineSlotCount]*hol.Item
}

// AttachRefineInput attaches a refine to a weapon slot
type AttachRefineInput struct {
	Principal hol.Principal
	Ref       WeaponRef
	Slot      int
	// RefineID is a document id or a seed external id
	RefineID string
}

// AttachRefineOutput holds the updated weapon
type AttachRefineOutput struct {
	Weapon *hol.Item
}

// DetachRefineInput clears a weapon slot
type DetachRefineInput struct {
	Principal hol.Principal
	Ref       WeaponRef
	Slot      int
}

// DetachRefineOutput holds the updated weapon
type DetachRefineOutput struct {
	Weapon *hol.Item
}
