package refine

import (
	"strings"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// Labels used by unrefined staves and dark tomes
const (
	HealLabel = "Heal"
	FluxLabel = "Flux"
)

// BaseLabel returns the label a weapon's name ends with
func BaseLabel(group hol.WeaponGroup, slots hol.RefineSlots) string {
	if slots.AllEmpty() {
		switch group {
		case hol.WeaponGroupStaff:
			return HealLabel
		case hol.WeaponGroupDark:
			return FluxLabel
		}
	}
	return group.Label()
}

// GenerateName builds a weapon's display name from its refines.
//
// Refine names come first in slot order, followed by the base label. Staves
// with at least one refine are named by their refines alone.
func GenerateName(group hol.WeaponGroup, slots hol.RefineSlots) string {
	parts := make([]string, 0, hol.RefineSlotCount+1)
	for _, slot := range slots {
		if !slot.IsEmpty() && slot.Name != "" {
			parts = append(parts, slot.Name)
		}
	}

	if !(group.IsStaffLike() && !slots.AllEmpty()) {
		parts = append(parts, BaseLabel(group, slots))
	}

	return strings.Join(parts, " ")
}
