package packbuild

import (
	"context"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// document is the on-disk shape of a pack entry. The document id is the
// seed record id so rebuilding a pack is stable.
type document struct {
	ID     string                    `yaml:"_id" json:"_id"`
	Name   string                    `yaml:"name" json:"name"`
	Type   hol.ItemType              `yaml:"type" json:"type"`
	Img    string                    `yaml:"img" json:"img"`
	System system                    `yaml:"system" json:"system"`
	Flags  map[string]map[string]any `yaml:"flags" json:"flags"`
}

type system struct {
	Description textValue      `yaml:"description" json:"description"`
	Cost        *intValue      `yaml:"cost,omitempty" json:"cost,omitempty"`
	CustomData  map[string]any `yaml:"customData,omitempty" json:"customData,omitempty"`
}

type textValue struct {
	Value string `yaml:"value" json:"value"`
}

type intValue struct {
	Value int `yaml:"value" json:"value"`
}

func newDocument(item *hol.Item, flagScope string) *document {
	doc := &document{
		ID:   item.ExternalID(flagScope),
		Name: item.Name,
		Type: item.Type,
		Img:  item.Img,
		System: system{
			Description: textValue{Value: item.Description},
			CustomData:  item.CustomData,
		},
		Flags: item.Flags,
	}

	switch {
	case item.Weapon != nil:
		doc.System.Cost = &intValue{Value: item.Weapon.CostG}
	case item.Refine != nil:
		doc.System.Cost = &intValue{Value: item.Refine.CostG}
	}
	return doc
}

// writeFunc writes a pack rooted at base and returns the artifact path
type writeFunc func(ctx context.Context, base string, docs []*document) (string, error)
