package refine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hol-api/internal/engine/refine"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
)

type EngineTestSuite struct {
	suite.Suite
	ctx      context.Context
	refines  map[string]*hol.Item
	lookups  []string
	lookupFn func(ctx context.Context, slot hol.RefineSlot) (*hol.Item, error)
	engine   *refine.Engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.lookups = nil
	s.refines = map[string]*hol.Item{
		"r-steel": newRefine("r-steel", "Steel", hol.StatBonuses{Might: 2, MaxRange: 1}, 50),
		"r-brave": newRefine("r-brave", "Brave", hol.StatBonuses{Might: 1}, 200),
	}
	s.lookupFn = func(_ context.Context, slot hol.RefineSlot) (*hol.Item, error) {
		s.lookups = append(s.lookups, slot.ID)
		return s.refines[slot.ID], nil
	}

	var err error
	s.engine, err = refine.NewEngine(&refine.Config{
		Resolver: refine.ResolverFunc(func(ctx context.Context, slot hol.RefineSlot) (*hol.Item, error) {
			return s.lookupFn(ctx, slot)
		}),
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TestNewEngineRequiresResolver() {
	_, err := refine.NewEngine(&refine.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = refine.NewEngine(nil)
	s.Require().Error(err)
}

func (s *EngineTestSuite) TestAttachAndDetachThroughResolver() {
	sword := newWeapon("w-sword", hol.WeaponGroupSword, 5, hol.Range{Min: 1, Max: 1}, 100)

	withSteel, err := s.engine.Attach(s.ctx, sword, 0, s.refines["r-steel"])
	s.Require().NoError(err)
	s.Empty(s.lookups, "an unrefined weapon needs no lookups")

	withBoth, err := s.engine.Attach(s.ctx, withSteel, 1, s.refines["r-brave"])
	s.Require().NoError(err)
	s.Equal([]string{"r-steel"}, s.lookups)
	s.Equal("Steel Brave Sword", withBoth.Name)
	s.Equal(8, withBoth.Weapon.Might)
	s.Equal(350, withBoth.Weapon.CostG)

	detached, err := s.engine.Detach(s.ctx, withBoth, 0)
	s.Require().NoError(err)
	s.Equal("Brave Sword", detached.Name)
	s.Equal(6, detached.Weapon.Might)
	s.Equal(hol.Range{Min: 1, Max: 1}, detached.Weapon.Range)
	s.Equal(300, detached.Weapon.CostG)
}

func (s *EngineTestSuite) TestDetachMissingRefineDocument() {
	sword := newWeapon("w-sword", hol.WeaponGroupSword, 5, hol.Range{Min: 1, Max: 1}, 100)
	withSteel, err := s.engine.Attach(s.ctx, sword, 0, s.refines["r-steel"])
	s.Require().NoError(err)

	delete(s.refines, "r-steel")

	detached, err := s.engine.Detach(s.ctx, withSteel, 0)
	s.Require().NoError(err)
	s.Equal("Sword", detached.Name)
	s.Equal(withSteel.Weapon.Might, detached.Weapon.Might)
}

func (s *EngineTestSuite) TestResolverErrorIsWrapped() {
	sword := newWeapon("w-sword", hol.WeaponGroupSword, 5, hol.Range{Min: 1, Max: 1}, 100)
	withSteel, err := s.engine.Attach(s.ctx, sword, 0, s.refines["r-steel"])
	s.Require().NoError(err)

	s.lookupFn = func(context.Context, hol.RefineSlot) (*hol.Item, error) {
		return nil, errors.Unavailable("store offline")
	}

	_, err = s.engine.Detach(s.ctx, withSteel, 0)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "failed to resolve refine r-steel")
}

func (s *EngineTestSuite) TestValidationRunsBeforeLookups() {
	sword := newWeapon("w-sword", hol.WeaponGroupSword, 5, hol.Range{Min: 1, Max: 1}, 100)
	withSteel, err := s.engine.Attach(s.ctx, sword, 0, s.refines["r-steel"])
	s.Require().NoError(err)
	withSteel.Pack = "world.hol-weapons"

	_, err = s.engine.Detach(s.ctx, withSteel, 0)
	s.True(errors.HasReason(err, errors.ReasonReadOnlyTarget))
	s.Empty(s.lookups)

	_, err = s.engine.Detach(s.ctx, sword, 1)
	s.True(errors.HasReason(err, errors.ReasonEmptySlot))
	s.Empty(s.lookups)
}
