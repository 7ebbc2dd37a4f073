package hol

import (
	"time"
)

// ActorType is the document subtype of an actor
type ActorType string

// Actor types
const (
	ActorTypeCharacter ActorType = "character"
	ActorTypeUnit      ActorType = "unit"
)

// Sheet limits
const (
	MaxWeaponSlots     = 5
	MaxItemSlots       = 4
	SkillSlotCount     = 8
	NonCombatPointPool = 12
)

// Combat stat defaults for a fresh character
const (
	DefaultHP   = 15
	DefaultStat = 3
)

// DefaultActorImage is used when an actor has no portrait
const DefaultActorImage = "icons/svg/mystery-man.svg"

// SupportRankC is the rank a new support bond starts at
const SupportRankC = "C"

// CombatStats are the base combat values of an actor. Zero means unset.
type CombatStats struct {
	HP   int `json:"hp,omitempty"`
	Atk  int `json:"atk,omitempty"`
	Spd  int `json:"spd,omitempty"`
	Dex  int `json:"dex,omitempty"`
	Def  int `json:"def,omitempty"`
	Res  int `json:"res,omitempty"`
	Luck int `json:"luck,omitempty"`
}

// Inventory tracks which embedded items sit in weapon and item slots
type Inventory struct {
	Weapons  []string `json:"weapons"`
	Items    []string `json:"items"`
	Equipped string   `json:"equipped,omitempty"`
}

// Actor is a character or unit document with embedded items
type Actor struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           ActorType         `json:"type"`
	Img            string            `json:"img,omitempty"`
	CombatStats    CombatStats       `json:"combatStats"`
	NonCombatStats map[string]int    `json:"nonCombatStats,omitempty"`
	CurrentHP      *int              `json:"currentHP,omitempty"`
	Charge         int               `json:"charge"`
	Inventory      Inventory         `json:"inventory"`
	Skills         []string          `json:"skills,omitempty"`
	Supports       map[string]string `json:"supports,omitempty"`
	Items          []*Item           `json:"items,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// GetID returns the actor id
func (a *Actor) GetID() string {
	return a.ID
}

// GetType returns the actor type
func (a *Actor) GetType() string {
	return string(a.Type)
}

// EmbeddedItem returns the embedded item with the given id
func (a *Actor) EmbeddedItem(id string) *Item {
	for _, item := range a.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// FindEmbedded returns the first embedded item with the given name and type
func (a *Actor) FindEmbedded(name string, itemType ItemType) *Item {
	for _, item := range a.Items {
		if item.Name == name && item.Type == itemType {
			return item
		}
	}
	return nil
}
