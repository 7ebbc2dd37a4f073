package seed

import (
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// Event types published on the event bus
const (
	// EventEntryImported fires once per imported category. The event source
	// is the SeedEntry and the target is its *Report.
	EventEntryImported = "hol.seed.entry_imported"
	// EventBatchCompleted fires once per ImportAll run with a *Summary target
	EventBatchCompleted = "hol.seed.batch_completed"
)

// Report counts what one category import did
type Report struct {
	Entry   hol.SeedEntry
	PackID  string
	Cleared int
	Created int
	Updated int
	Skipped int
}

// GetID returns the key of the imported category
func (r *Report) GetID() string {
	return r.Entry.Key
}

// GetType identifies import reports on the event bus
func (r *Report) GetType() string {
	return "seed_report"
}

// EntryResult is the outcome of one category inside ImportAll
type EntryResult struct {
	Entry  hol.SeedEntry
	Report *Report
	Err    error
}

// Summary aggregates an ImportAll run
type Summary struct {
	Results []*EntryResult
	Created int
	Updated int
	Skipped int
	Failed  int
}

// GetID returns a fixed id; there is one summary per run
func (s *Summary) GetID() string {
	return "import_all"
}

// GetType identifies batch summaries on the event bus
func (s *Summary) GetType() string {
	return "seed_summary"
}

// ImportEntryInput imports a single category
type ImportEntryInput struct {
	Principal hol.Principal
	Entry     hol.SeedEntry
	// Clear deletes every document in the target pack first
	Clear bool
}

// ImportEntryOutput is the result of ImportEntry
type ImportEntryOutput struct {
	Report *Report
}

// ImportOneInput imports the configured category with the given key
type ImportOneInput struct {
	Principal hol.Principal
	Key       string
	Clear     bool
}

// ImportOneOutput is the result of ImportOne
type ImportOneOutput struct {
	Report *Report
}

// ImportAllInput imports every configured category in order
type ImportAllInput struct {
	Principal hol.Principal
	Clear     bool
}

// ImportAllOutput is the result of ImportAll
type ImportAllOutput struct {
	Summary *Summary
}

// ListImportsInput lists the configured categories
type ListImportsInput struct{}

// ListImportsOutput holds the configured categories in import order
type ListImportsOutput struct {
	Entries []hol.SeedEntry
}
