package hol

const (
	// ModuleID is the package id compendium packs are registered under
	ModuleID = "heroes-of-lite"
	// FlagScope namespaces every flag this system writes
	FlagScope = "heroes-of-lite"
	// ExternalIDFlag holds the originating seed record id
	ExternalIDFlag = "id"
	// SourceIDFlag records which document an embedded copy was taken from
	SourceIDFlag = "sourceId"
	// WorldPackage owns packs created at runtime
	WorldPackage = "world"
)

// DocumentType is the top level document class a pack stores
type DocumentType string

// Document types
const (
	DocumentTypeItem  DocumentType = "Item"
	DocumentTypeActor DocumentType = "Actor"
)

// SeedEntry declares one importable content category
type SeedEntry struct {
	Key      string       `json:"key"`
	Label    string       `json:"label"`
	SeedPath string       `json:"seedPath"`
	PackName string       `json:"packName"`
	DocType  DocumentType `json:"docType"`
	ItemType ItemType     `json:"itemType"`
	// LegacyNameMatch lets records adopt untagged documents of the same
	// name left behind by the old name-based weapon seeding.
	LegacyNameMatch bool `json:"legacyNameMatch,omitempty"`
}

// GetID returns the entry key
func (e *SeedEntry) GetID() string {
	return e.Key
}

// GetType identifies seed entries on the event bus
func (e *SeedEntry) GetType() string {
	return "seed_entry"
}
