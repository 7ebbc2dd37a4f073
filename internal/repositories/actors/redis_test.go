package actors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/repositories/actors"
	"github.com/KirkDiggler/hol-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	cleanup func()
	repo    actors.Repository
	ctx     context.Context
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := actors.NewRedis(&actors.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestLifecycle() {
	actor := &hol.Actor{
		ID:          "marth",
		Name:        "Marth",
		Type:        hol.ActorTypeCharacter,
		CombatStats: hol.CombatStats{HP: 18, Atk: 5},
		Items: []*hol.Item{
			{ID: "emb-1", Name: "Rapier", Type: hol.ItemTypeWeapon},
		},
	}

	_, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: actor})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, actors.CreateInput{Actor: actor})
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, actors.GetInput{ID: "marth"})
	s.Require().NoError(err)
	s.Equal(18, got.Actor.CombatStats.HP)
	s.Require().NotNil(got.Actor.EmbeddedItem("emb-1"))

	got.Actor.Charge = 3
	_, err = s.repo.Update(s.ctx, actors.UpdateInput{Actor: got.Actor})
	s.Require().NoError(err)

	again, err := s.repo.Get(s.ctx, actors.GetInput{ID: "marth"})
	s.Require().NoError(err)
	s.Equal(3, again.Actor.Charge)
}

func (s *RedisRepositoryTestSuite) TestMissing() {
	_, err := s.repo.Get(s.ctx, actors.GetInput{ID: "nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, actors.UpdateInput{Actor: &hol.Actor{ID: "nobody"}})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, actors.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}
