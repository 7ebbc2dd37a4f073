package packs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/repositories/packs"
	"github.com/KirkDiggler/hol-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	cleanup func()
	repo    packs.Repository
	ctx     context.Context
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := packs.NewRedis(&packs.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{
		Name:         "hol-weapons",
		Label:        "Weapons",
		DocumentType: hol.DocumentTypeItem,
		Package:      hol.WorldPackage,
	}})
	s.Require().NoError(err)
	s.Equal("world.hol-weapons", created.Pack.ID)
	s.False(created.Pack.CreatedAt.IsZero())

	got, err := s.repo.Get(s.ctx, packs.GetInput{ID: "world.hol-weapons"})
	s.Require().NoError(err)
	s.Equal("Weapons", got.Pack.Label)
	s.Equal(hol.DocumentTypeItem, got.Pack.DocumentType)

	_, err = s.repo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{
		Name:    "hol-weapons",
		Package: hol.WorldPackage,
	}})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, packs.GetInput{ID: "heroes-of-lite.hol-skills"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
	s.Contains(err.Error(), "package")
}

func (s *RedisRepositoryTestSuite) TestListSorted() {
	for _, name := range []string{"hol-weapons", "hol-refines", "hol-skills"} {
		_, err := s.repo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{
			Name:    name,
			Package: hol.WorldPackage,
		}})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, packs.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Packs, 3)
	s.Equal("world.hol-refines", list.Packs[0].ID)
	s.Equal("world.hol-skills", list.Packs[1].ID)
	s.Equal("world.hol-weapons", list.Packs[2].ID)
}

func (s *RedisRepositoryTestSuite) TestSetLocked() {
	created, err := s.repo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{
		Name:    "hol-weapons",
		Package: hol.ModuleID,
		Locked:  true,
	}})
	s.Require().NoError(err)

	out, err := s.repo.SetLocked(s.ctx, packs.SetLockedInput{ID: created.Pack.ID})
	s.Require().NoError(err)
	s.False(out.Pack.Locked)

	got, err := s.repo.Get(s.ctx, packs.GetInput{ID: created.Pack.ID})
	s.Require().NoError(err)
	s.False(got.Pack.Locked)
	s.Equal("hol-weapons", got.Pack.Name)

	_, err = s.repo.SetLocked(s.ctx, packs.SetLockedInput{ID: "world.missing", Locked: true})
	s.True(errors.IsNotFound(err))
}
