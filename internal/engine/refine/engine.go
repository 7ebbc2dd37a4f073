package refine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
)

// Resolver finds the refine document a slot points at. It returns nil and no
// error when the reference cannot be resolved anywhere.
type Resolver interface {
	ResolveRefine(ctx context.Context, slot hol.RefineSlot) (*hol.Item, error)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(ctx context.Context, slot hol.RefineSlot) (*hol.Item, error)

// ResolveRefine calls f
func (f ResolverFunc) ResolveRefine(ctx context.Context, slot hol.RefineSlot) (*hol.Item, error) {
	return f(ctx, slot)
}

// Config holds the dependencies for the engine
type Config struct {
	Resolver Resolver
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Resolver == nil {
		return errors.InvalidArgument("resolver is required")
	}
	return nil
}

// Engine resolves slot occupants and runs the pure derivation functions
type Engine struct {
	resolver Resolver
}

// NewEngine creates a refine engine
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{resolver: cfg.Resolver}, nil
}

// Occupants resolves the refine behind every occupied slot of weapon
func (e *Engine) Occupants(ctx context.Context, weapon *hol.Item) (Occupants, error) {
	var occupants Occupants
	if weapon == nil || weapon.Weapon == nil {
		return occupants, nil
	}

	for i, slot := range weapon.Weapon.Refines {
		if slot.IsEmpty() {
			continue
		}
		refine, err := e.resolver.ResolveRefine(ctx, slot)
		if err != nil {
			return occupants, errors.Wrapf(err, "failed to resolve refine %s", slot.ID)
		}
		if refine == nil {
			slog.WarnContext(ctx, "refine reference could not be resolved, treating as zero",
				"weapon_id", weapon.ID,
				"slot", i,
				"refine_id", slot.ID,
				"refine_name", slot.Name)
		}
		occupants[i] = refine
	}

	return occupants, nil
}

// Attach places refine in slot and returns the derived weapon
func (e *Engine) Attach(ctx context.Context, weapon *hol.Item, slot int, refine *hol.Item) (*hol.Item, error) {
	if err := ValidateAttach(weapon, slot, refine); err != nil {
		return nil, err
	}

	current, err := e.Occupants(ctx, weapon)
	if err != nil {
		return nil, err
	}

	return ComputeAttach(weapon, slot, refine, current)
}

// Detach clears slot and returns the derived weapon
func (e *Engine) Detach(ctx context.Context, weapon *hol.Item, slot int) (*hol.Item, error) {
	if err := ValidateDetach(weapon, slot); err != nil {
		return nil, err
	}

	current, err := e.Occupants(ctx, weapon)
	if err != nil {
		return nil, err
	}

	return ComputeDetach(weapon, slot, current)
}
