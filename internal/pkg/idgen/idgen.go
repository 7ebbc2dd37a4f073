// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/hol-api/internal/pkg/idgen Generator

// documentIDLength matches the 16 character ids the tabletop host assigns
const documentIDLength = 16

const documentIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// DocumentGenerator generates random alphanumeric document ids
type DocumentGenerator struct{}

// NewDocument creates a generator for host-style document ids
func NewDocument() *DocumentGenerator {
	return &DocumentGenerator{}
}

// Generate creates a new 16 character id
func (g *DocumentGenerator) Generate() string {
	buf := make([]byte, documentIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read only fails on a broken system
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}

	var sb strings.Builder
	sb.Grow(documentIDLength)
	for _, b := range buf {
		sb.WriteByte(documentIDAlphabet[int(b)%len(documentIDAlphabet)])
	}
	return sb.String()
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
