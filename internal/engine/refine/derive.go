// Package refine derives weapon names and stats from attached refines.
//
// ComputeAttach and ComputeDetach are pure: they never touch the weapon they
// are given and return a patched copy whose name, might, range, cost and
// slots must be persisted together.
package refine

import (
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
)

// DefaultStaffRange applies when no refine on a staff extends its reach
var DefaultStaffRange = hol.Range{Min: 1, Max: 1}

// Occupants holds the refine document resolved for each slot. A nil entry is
// an empty slot or a reference that could not be resolved; either way it
// contributes nothing.
type Occupants [hol.RefineSlotCount]*hol.Item

// StaffRange returns the bonus pair of the refine with the largest maxRange.
// Ties keep the first refine seen.
func StaffRange(refines ...*hol.Item) hol.Range {
	var best *hol.StatBonuses
	for _, r := range refines {
		if r == nil || r.Refine == nil {
			continue
		}
		bonus := r.Refine.StatBonuses
		if bonus.MaxRange <= 0 {
			continue
		}
		if best == nil || bonus.MaxRange > best.MaxRange {
			b := bonus
			best = &b
		}
	}

	if best == nil {
		return DefaultStaffRange
	}
	return hol.Range{Min: best.MinRange, Max: best.MaxRange}
}

// ValidateAttach checks every attach precondition that does not need the
// current slot occupants.
func ValidateAttach(weapon *hol.Item, slot int, refine *hol.Item) error {
	if err := validateWeapon(weapon, slot); err != nil {
		return err
	}

	if refine == nil || refine.Type != hol.ItemTypeRefine || refine.Refine == nil {
		return errors.InvalidModifierKind("only refine items can be attached to a refine slot")
	}

	group := weapon.Weapon.Group
	if !refine.Refine.AppliesTo(group) {
		return errors.IncompatibleCategoryf("refine %s cannot be applied to %s weapons", refine.Name, group).
			WithMeta("weapon_group", string(group)).
			WithMeta("refine_id", refine.ID)
	}

	other := weapon.Weapon.Refines[otherSlot(slot)]
	if !other.IsEmpty() && other.Name == refine.Name {
		return errors.DuplicateModifierf("refine %s is already applied to this weapon", refine.Name).
			WithMeta("slot", otherSlot(slot))
	}

	return nil
}

// ValidateDetach checks the detach preconditions
func ValidateDetach(weapon *hol.Item, slot int) error {
	if err := validateWeapon(weapon, slot); err != nil {
		return err
	}
	if weapon.Weapon.Refines[slot].IsEmpty() {
		return errors.EmptySlotf("no refine to remove in slot %d", slot).WithMeta("slot", slot)
	}
	return nil
}

// ComputeAttach returns the weapon with refine placed in slot.
//
// current holds the refines resolved for the weapon's slots before the
// attach. Attaching into an occupied slot reverses the occupant first.
func ComputeAttach(weapon *hol.Item, slot int, refine *hol.Item, current Occupants) (*hol.Item, error) {
	if err := ValidateAttach(weapon, slot, refine); err != nil {
		return nil, err
	}

	out := weapon.Clone()
	w := out.Weapon

	if !w.Refines[slot].IsEmpty() {
		removeContribution(w, current[slot])
	}

	w.Refines[slot] = hol.RefineSlot{ID: refine.ID, Name: refine.Name}
	bonus := refine.Refine.StatBonuses
	w.Might += bonus.Might
	w.CostG += refine.Refine.CostG

	if w.Group.IsStaffLike() {
		after := current
		after[slot] = refine
		w.Range = StaffRange(after[:]...)
	} else {
		w.Range.Min += bonus.MinRange
		w.Range.Max += bonus.MaxRange
	}

	if w.Range.Min < 0 || w.Range.Max < 0 || w.CostG < 0 {
		return nil, errors.FailedPreconditionf("refine %s would drive range or cost below zero", refine.Name).
			WithMeta("refine_id", refine.ID)
	}

	out.Name = GenerateName(w.Group, w.Refines)
	return out, nil
}

// ComputeDetach returns the weapon with slot cleared.
//
// current holds the refines resolved for the weapon's slots; a nil entry at
// slot means the attached refine no longer exists and its contribution is
// treated as zero.
func ComputeDetach(weapon *hol.Item, slot int, current Occupants) (*hol.Item, error) {
	if err := ValidateDetach(weapon, slot); err != nil {
		return nil, err
	}

	out := weapon.Clone()
	w := out.Weapon

	removeContribution(w, current[slot])
	w.Refines[slot] = hol.RefineSlot{}

	if w.Group.IsStaffLike() {
		remaining := current
		remaining[slot] = nil
		w.Range = StaffRange(remaining[:]...)
	}

	out.Name = GenerateName(w.Group, w.Refines)
	return out, nil
}

// removeContribution subtracts a refine's deltas. Staff range is left for
// the caller to recompute from what remains.
func removeContribution(w *hol.WeaponDetails, refine *hol.Item) {
	if refine == nil || refine.Refine == nil {
		return
	}
	bonus := refine.Refine.StatBonuses
	w.Might -= bonus.Might
	w.CostG -= refine.Refine.CostG
	if !w.Group.IsStaffLike() {
		w.Range.Min -= bonus.MinRange
		w.Range.Max -= bonus.MaxRange
	}
}

func validateWeapon(weapon *hol.Item, slot int) error {
	if weapon == nil || weapon.Type != hol.ItemTypeWeapon || weapon.Weapon == nil {
		return errors.InvalidArgument("refines can only be applied to weapons")
	}
	if weapon.IsReadOnly() {
		return errors.ReadOnlyTarget("compendium items cannot be modified, create a copy first").
			WithMeta("pack", weapon.Pack)
	}
	if slot < 0 || slot >= hol.RefineSlotCount {
		return errors.InvalidArgumentf("refine slot must be between 0 and %d, got %d", hol.RefineSlotCount-1, slot)
	}
	return nil
}

func otherSlot(slot int) int {
	return (slot + 1) % hol.RefineSlotCount
}
