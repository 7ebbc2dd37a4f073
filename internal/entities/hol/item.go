// Package hol contains the Heroes of Lite document types
package hol

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// ItemType is the document subtype of an item
type ItemType string

// Item types
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeRefine     ItemType = "refine"
	ItemTypeSkill      ItemType = "skill"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeKeyItem    ItemType = "item"
	ItemTypeStatus     ItemType = "status"
	ItemTypeLoot       ItemType = "loot"
)

// DefaultItemImage is used when a document has no image of its own
const DefaultItemImage = "icons/svg/item-bag.svg"

// Item is an item document: a weapon, a refine, or any other seeded content
type Item struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Type        ItemType                  `json:"type"`
	Img         string                    `json:"img,omitempty"`
	Pack        string                    `json:"pack,omitempty"`
	Description string                    `json:"description,omitempty"`
	CustomData  map[string]any            `json:"customData,omitempty"`
	Flags       map[string]map[string]any `json:"flags,omitempty"`
	Weapon      *WeaponDetails            `json:"weapon,omitempty"`
	Refine      *RefineDetails            `json:"refine,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// Compile-time check that items can be used as rpg-toolkit entities
var _ core.Entity = (*Item)(nil)

// GetID returns the document id
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the item type
func (i *Item) GetType() string {
	return string(i.Type)
}

// IsReadOnly reports whether the document lives in a compendium pack.
// Compendium documents are reference copies and are never patched in place.
func (i *Item) IsReadOnly() bool {
	return i.Pack != ""
}

// GetFlag returns a namespaced flag value
func (i *Item) GetFlag(scope, key string) (any, bool) {
	values, ok := i.Flags[scope]
	if !ok {
		return nil, false
	}
	v, ok := values[key]
	return v, ok
}

// SetFlag sets a namespaced flag value
func (i *Item) SetFlag(scope, key string, value any) {
	if i.Flags == nil {
		i.Flags = make(map[string]map[string]any)
	}
	if i.Flags[scope] == nil {
		i.Flags[scope] = make(map[string]any)
	}
	i.Flags[scope][key] = value
}

// ExternalID returns the seed id the document was imported from, if any
func (i *Item) ExternalID(scope string) string {
	v, ok := i.GetFlag(scope, ExternalIDFlag)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// Clone returns a copy that shares no mutable state with i
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := *i
	if i.CustomData != nil {
		out.CustomData = make(map[string]any, len(i.CustomData))
		for k, v := range i.CustomData {
			out.CustomData[k] = v
		}
	}
	if i.Flags != nil {
		out.Flags = make(map[string]map[string]any, len(i.Flags))
		for scope, values := range i.Flags {
			copied := make(map[string]any, len(values))
			for k, v := range values {
				copied[k] = v
			}
			out.Flags[scope] = copied
		}
	}
	out.Weapon = i.Weapon.Clone()
	if i.Refine != nil {
		refine := *i.Refine
		refine.AppliesToWeaponGroups = append([]WeaponGroup(nil), i.Refine.AppliesToWeaponGroups...)
		refine.Tags = append([]string(nil), i.Refine.Tags...)
		out.Refine = &refine
	}
	return &out
}
