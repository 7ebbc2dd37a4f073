package seed

import (
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
)

// record is one decoded seed array element
type record struct {
	id     string
	fields map[string]any
	raw    json.RawMessage
}

// decodeRecord returns ok=false for anything that is not an object with a
// non-empty string id
func decodeRecord(raw json.RawMessage) (*record, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	id, ok := fields["id"].(string)
	if !ok || id == "" {
		return nil, false
	}
	return &record{id: id, fields: fields, raw: raw}, true
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// convert builds the pack document for a seed record. Typed stat fields
// that fail to decode are left at their zero value and returned as dropped.
func convert(entry hol.SeedEntry, rec *record, packID, flagScope string) (*hol.Item, []string) {
	name := stringField(rec.fields, "name")
	if name == "" {
		name = rec.id
	}
	img := stringField(rec.fields, "img")
	if img == "" {
		img = hol.DefaultItemImage
	}

	customData := make(map[string]any, len(rec.fields))
	for k, v := range rec.fields {
		if k == "name" || k == "img" {
			continue
		}
		customData[k] = v
	}

	item := &hol.Item{
		Name:        name,
		Type:        entry.ItemType,
		Img:         img,
		Pack:        packID,
		Description: stringField(rec.fields, "description"),
		CustomData:  customData,
	}
	item.SetFlag(flagScope, hol.ExternalIDFlag, rec.id)

	var dropped []string
	switch entry.ItemType {
	case hol.ItemTypeWeapon:
		item.Weapon, dropped = decodeDetails[hol.WeaponDetails](rec.raw)
	case hol.ItemTypeRefine:
		item.Refine, dropped = decodeDetails[hol.RefineDetails](rec.raw)
	}

	return item, dropped
}

// decodeDetails decodes the typed stat block of a record. When the record
// as a whole does not decode, each field is tried on its own and the ones
// that fail are dropped.
func decodeDetails[T any](raw json.RawMessage) (*T, []string) {
	var out T
	if err := json.Unmarshal(raw, &out); err == nil {
		return &out, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return new(T), nil
	}

	var dropped []string
	for key, value := range fields {
		single, err := json.Marshal(map[string]json.RawMessage{key: value})
		if err != nil {
			continue
		}
		var one T
		if err := json.Unmarshal(single, &one); err != nil {
			delete(fields, key)
			dropped = append(dropped, key)
		}
	}
	sort.Strings(dropped)

	clean, err := json.Marshal(fields)
	if err != nil {
		return new(T), dropped
	}
	out = *new(T)
	if err := json.Unmarshal(clean, &out); err != nil {
		return new(T), dropped
	}
	return &out, dropped
}

func decodeSeed(entry hol.SeedEntry, data []byte) ([]json.RawMessage, error) {
	var seed []json.RawMessage
	if err := json.Unmarshal(data, &seed); err != nil || seed == nil {
		return nil, errors.InvalidSeedSourcef("%s seed file must be a JSON array: %s", entry.Label, entry.SeedPath).
			WithMeta("seed_path", entry.SeedPath)
	}
	return seed, nil
}

// ConvertSeed turns a seed payload into unsaved pack documents in file order.
// Records that are not objects with a string id are counted as skipped.
func ConvertSeed(entry hol.SeedEntry, data []byte, packID, flagScope string) ([]*hol.Item, int, error) {
	seed, err := decodeSeed(entry, data)
	if err != nil {
		return nil, 0, err
	}

	docs := make([]*hol.Item, 0, len(seed))
	skipped := 0
	for _, raw := range seed {
		rec, ok := decodeRecord(raw)
		if !ok {
			skipped++
			continue
		}
		doc, _ := convert(entry, rec, packID, flagScope)
		docs = append(docs, doc)
	}
	return docs, skipped, nil
}

// nameKey folds a document name for legacy name matching
func nameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
