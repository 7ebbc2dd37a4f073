package seedsource

import (
	"os"
)

// NewDir creates a fetcher rooted at a directory on disk
func NewDir(dir string) *FSFetcher {
	return NewFS(os.DirFS(dir))
}
