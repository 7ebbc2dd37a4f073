package hol

// RefineCategory classifies refines by rarity
type RefineCategory string

// Refine categories
const (
	RefineCategoryCommon    RefineCategory = "common"
	RefineCategoryRare      RefineCategory = "rare"
	RefineCategoryLegendary RefineCategory = "legendary"
	// RefineCategoryGM refines may only be attached by a privileged user
	RefineCategoryGM RefineCategory = "gm"
)

// IsPrivileged reports whether only a GM may use refines of this category
func (c RefineCategory) IsPrivileged() bool {
	return c == RefineCategoryGM
}

// StatBonuses are the deltas a refine applies to its weapon
type StatBonuses struct {
	Might    int `json:"might,omitempty" yaml:"might,omitempty"`
	MinRange int `json:"minRange,omitempty" yaml:"minRange,omitempty"`
	MaxRange int `json:"maxRange,omitempty" yaml:"maxRange,omitempty"`
}

// RefineDetails holds the modifier data of a refine document
type RefineDetails struct {
	Category              RefineCategory `json:"category,omitempty" yaml:"category,omitempty"`
	CostG                 int            `json:"costG" yaml:"costG"`
	AppliesToWeaponGroups []WeaponGroup  `json:"appliesToWeaponGroups,omitempty" yaml:"appliesToWeaponGroups,omitempty"`
	StatBonuses           StatBonuses    `json:"statBonuses" yaml:"statBonuses"`
	Tags                  []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// AppliesTo reports whether the refine may be attached to the weapon group.
// An empty allow-list is unrestricted.
func (r *RefineDetails) AppliesTo(group WeaponGroup) bool {
	if len(r.AppliesToWeaponGroups) == 0 {
		return true
	}
	for _, g := range r.AppliesToWeaponGroups {
		if g == group {
			return true
		}
	}
	return false
}
