package hol

import (
	"time"
)

// Pack is a compendium collection of documents
type Pack struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Label        string       `json:"label"`
	DocumentType DocumentType `json:"documentType"`
	Package      string       `json:"package"`
	Locked       bool         `json:"locked"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// PackID builds the collection id of a pack
func PackID(pkg, name string) string {
	return pkg + "." + name
}
