// Package seedsource reads seed files from a filesystem or an HTTP base URL
package seedsource

//go:generate mockgen -destination=mock/mock_fetcher.go -package=seedsourcemock github.com/KirkDiggler/hol-api/internal/seedsource Fetcher

import (
	"context"
	"io/fs"
	"strings"
	"time"

	holapi "github.com/KirkDiggler/hol-api"
	"github.com/KirkDiggler/hol-api/internal/errors"
)

// Fetcher returns the raw bytes of the seed file at path
type Fetcher interface {
	// Fetch returns errors.NotFound when nothing exists at path
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FSFetcher reads seed files from a filesystem
type FSFetcher struct {
	fsys fs.FS
}

// NewFS creates a fetcher over fsys
func NewFS(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

// NewEmbedded creates a fetcher over the seed files compiled into the binary
func NewEmbedded() *FSFetcher {
	return NewFS(holapi.SeedFS)
}

// Fetch reads path from the filesystem
func (f *FSFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "fetch canceled")
	}

	name := strings.TrimPrefix(path, "/")
	if !fs.ValidPath(name) {
		return nil, errors.InvalidArgumentf("invalid seed path %q", path)
	}

	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("seed file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read seed file %s", path)
	}
	return data, nil
}

// Config selects a seed source
type Config struct {
	// Base is a directory, an http(s) URL, or empty for the embedded files
	Base    string
	Timeout time.Duration
}

// New builds the fetcher described by cfg
func New(cfg *Config) (Fetcher, error) {
	if cfg == nil || cfg.Base == "" {
		return NewEmbedded(), nil
	}
	if strings.HasPrefix(cfg.Base, "http://") || strings.HasPrefix(cfg.Base, "https://") {
		fetcher, err := NewHTTP(&HTTPConfig{BaseURL: cfg.Base, Timeout: cfg.Timeout})
		if err != nil {
			return nil, err
		}
		return fetcher, nil
	}
	return NewDir(cfg.Base), nil
}
