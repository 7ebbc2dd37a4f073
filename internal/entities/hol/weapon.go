package hol

// WeaponGroup is the category a weapon belongs to
type WeaponGroup string

// Weapon groups
const (
	WeaponGroupSword         WeaponGroup = "sword"
	WeaponGroupLance         WeaponGroup = "lance"
	WeaponGroupAxe           WeaponGroup = "axe"
	WeaponGroupBow           WeaponGroup = "bow"
	WeaponGroupDagger        WeaponGroup = "dagger"
	WeaponGroupAnima         WeaponGroup = "anima"
	WeaponGroupLight         WeaponGroup = "light"
	WeaponGroupDark          WeaponGroup = "dark"
	WeaponGroupStaff         WeaponGroup = "staff"
	WeaponGroupStrike        WeaponGroup = "strike"
	WeaponGroupTalons        WeaponGroup = "talons"
	WeaponGroupBreath        WeaponGroup = "breath"
	WeaponGroupShiftingStone WeaponGroup = "shiftingStone"
	WeaponGroupCurse         WeaponGroup = "curse"
)

// DefaultWeaponLabel names weapons whose group has no display label
const DefaultWeaponLabel = "Weapon"

var weaponGroupLabels = map[WeaponGroup]string{
	WeaponGroupSword:         "Sword",
	WeaponGroupLance:         "Lance",
	WeaponGroupAxe:           "Axe",
	WeaponGroupBow:           "Bow",
	WeaponGroupDagger:        "Dagger",
	WeaponGroupAnima:         "Anima",
	WeaponGroupLight:         "Light",
	WeaponGroupDark:          "Dark",
	WeaponGroupStaff:         "Staff",
	WeaponGroupStrike:        "Strike",
	WeaponGroupTalons:        "Talons",
	WeaponGroupBreath:        "Breath",
	WeaponGroupShiftingStone: "Shifting Stone",
	WeaponGroupCurse:         "Curse",
}

// Label returns the display label for the group
func (g WeaponGroup) Label() string {
	if label, ok := weaponGroupLabels[g]; ok {
		return label
	}
	return DefaultWeaponLabel
}

// IsValid reports whether g is a known weapon group
func (g WeaponGroup) IsValid() bool {
	_, ok := weaponGroupLabels[g]
	return ok
}

// IsStaffLike reports whether range is "highest bonus wins" instead of additive
func (g WeaponGroup) IsStaffLike() bool {
	return g == WeaponGroupStaff
}

// Range is an inclusive attack distance
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// RefineSlotCount is the number of refine attachment points on a weapon
const RefineSlotCount = 2

// RefineSlot references the refine attached at one slot. An empty ID means
// the slot is free.
type RefineSlot struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// IsEmpty reports whether nothing is attached
func (s RefineSlot) IsEmpty() bool {
	return s.ID == ""
}

// RefineSlots is the fixed pair of slots on every weapon
type RefineSlots [RefineSlotCount]RefineSlot

// AllEmpty reports whether no slot is occupied
func (s RefineSlots) AllEmpty() bool {
	for _, slot := range s {
		if !slot.IsEmpty() {
			return false
		}
	}
	return true
}

// InnateAttribute is a display-only modifier reference baked into a weapon
type InnateAttribute struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// WeaponDetails holds the stat block of a weapon document
type WeaponDetails struct {
	Group            WeaponGroup       `json:"weaponGroup" yaml:"weaponGroup"`
	DamageType       string            `json:"damageType,omitempty" yaml:"damageType,omitempty"`
	Might            int               `json:"might" yaml:"might"`
	Range            Range             `json:"range" yaml:"range"`
	CostG            int               `json:"costG" yaml:"costG"`
	Refines          RefineSlots       `json:"refines" yaml:"refines"`
	InnateAttributes []InnateAttribute `json:"innateAttributes,omitempty" yaml:"innateAttributes,omitempty"`
	Attributes       []string          `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	AttributeRules   string            `json:"attributeRules,omitempty" yaml:"attributeRules,omitempty"`
}

// Clone returns a deep copy
func (w *WeaponDetails) Clone() *WeaponDetails {
	if w == nil {
		return nil
	}
	out := *w
	if w.InnateAttributes != nil {
		out.InnateAttributes = append([]InnateAttribute(nil), w.InnateAttributes...)
	}
	if w.Attributes != nil {
		out.Attributes = append([]string(nil), w.Attributes...)
	}
	return &out
}
