// Package holapi exposes the seed data compiled into the binary
package holapi

import "embed"

// SeedFS holds data/seed/*.json. Seed paths such as "data/seed/refines.json"
// resolve against it unchanged.
//
//go:embed data/seed/*.json
var SeedFS embed.FS
