// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/hol-api/internal/engine/refine"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// WeaponBuilder provides a fluent interface for building test weapons
type WeaponBuilder struct {
	item *hol.Item
}

// NewWeaponBuilder creates an unrefined 5 might, range 1 sword costing 100
func NewWeaponBuilder() *WeaponBuilder {
	return &WeaponBuilder{
		item: &hol.Item{
			ID:   "weapon-test-123",
			Type: hol.ItemTypeWeapon,
			Weapon: &hol.WeaponDetails{
				Group: hol.WeaponGroupSword,
				Might: 5,
				Range: hol.Range{Min: 1, Max: 1},
				CostG: 100,
			},
		},
	}
}

// WithID sets the document ID
func (b *WeaponBuilder) WithID(id string) *WeaponBuilder {
	b.item.ID = id
	return b
}

// WithGroup sets the weapon group
func (b *WeaponBuilder) WithGroup(group hol.WeaponGroup) *WeaponBuilder {
	b.item.Weapon.Group = group
	return b
}

// WithMight sets the base might
func (b *WeaponBuilder) WithMight(might int) *WeaponBuilder {
	b.item.Weapon.Might = might
	return b
}

// WithRange sets the range band
func (b *WeaponBuilder) WithRange(minRange, maxRange int) *WeaponBuilder {
	b.item.Weapon.Range = hol.Range{Min: minRange, Max: maxRange}
	return b
}

// WithCost sets the gold cost
func (b *WeaponBuilder) WithCost(cost int) *WeaponBuilder {
	b.item.Weapon.CostG = cost
	return b
}

// InPack places the weapon in a compendium pack, making it read-only
func (b *WeaponBuilder) InPack(packID string) *WeaponBuilder {
	b.item.Pack = packID
	return b
}

// Build returns the weapon. The name is derived from the group and slots.
func (b *WeaponBuilder) Build() *hol.Item {
	item := b.item.Clone()
	item.Name = refine.GenerateName(item.Weapon.Group, item.Weapon.Refines)
	return item
}

// RefineBuilder provides a fluent interface for building test refines
type RefineBuilder struct {
	item *hol.Item
}

// NewRefineBuilder creates a common refine with no bonuses
func NewRefineBuilder(id, name string) *RefineBuilder {
	return &RefineBuilder{
		item: &hol.Item{
			ID:   id,
			Name: name,
			Type: hol.ItemTypeRefine,
			Refine: &hol.RefineDetails{
				Category: hol.RefineCategoryCommon,
			},
		},
	}
}

// WithCategory sets the rarity category
func (b *RefineBuilder) WithCategory(category hol.RefineCategory) *RefineBuilder {
	b.item.Refine.Category = category
	return b
}

// WithBonuses sets the stat bonuses
func (b *RefineBuilder) WithBonuses(bonus hol.StatBonuses) *RefineBuilder {
	b.item.Refine.StatBonuses = bonus
	return b
}

// WithCost sets the gold cost
func (b *RefineBuilder) WithCost(cost int) *RefineBuilder {
	b.item.Refine.CostG = cost
	return b
}

// AppliesTo restricts the refine to the given groups
func (b *RefineBuilder) AppliesTo(groups ...hol.WeaponGroup) *RefineBuilder {
	b.item.Refine.AppliesToWeaponGroups = groups
	return b
}

// InPack places the refine in a compendium pack
func (b *RefineBuilder) InPack(packID string) *RefineBuilder {
	b.item.Pack = packID
	return b
}

// WithExternalID tags the refine with the seed id it was imported from
func (b *RefineBuilder) WithExternalID(id string) *RefineBuilder {
	b.item.SetFlag(hol.FlagScope, hol.ExternalIDFlag, id)
	return b
}

// Build returns the refine
func (b *RefineBuilder) Build() *hol.Item {
	return b.item.Clone()
}
