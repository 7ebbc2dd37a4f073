package packbuild_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hol-api/internal/config"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/packbuild"
	"github.com/KirkDiggler/hol-api/internal/seedsource"
)

const refinesSeed = `[
	{"id": "ref-steel", "name": "Steel", "category": "common", "costG": 150, "statBonuses": {"might": 2}, "description": "Heavier."},
	{"id": "ref-silver", "name": "Silver's Edge", "category": "rare", "costG": 300},
	{"name": "No Id"},
	{"id": "ref-bad", "name": "Bad", "costG": "free"}
]`

type BuilderTestSuite struct {
	suite.Suite
	ctx     context.Context
	outDir  string
	builder *packbuild.Builder
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.outDir = filepath.Join(s.T().TempDir(), "packs")

	files := fstest.MapFS{
		"data/seed/refines.json": &fstest.MapFile{Data: []byte(refinesSeed)},
		"data/seed/skills.json":  &fstest.MapFile{Data: []byte(`{"not": "an array"}`)},
	}

	var err error
	s.builder, err = packbuild.New(&packbuild.Config{
		Fetcher:   seedsource.NewFS(files),
		Imports:   config.DefaultImports(),
		FlagScope: hol.FlagScope,
		OutDir:    s.outDir,
	})
	s.Require().NoError(err)
}

func (s *BuilderTestSuite) TestNewValidation() {
	_, err := packbuild.New(nil)
	s.Error(err)

	_, err = packbuild.New(&packbuild.Config{OutDir: s.outDir})
	s.Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *BuilderTestSuite) TestBuildYAMLWritesOneFilePerRecord() {
	out, err := s.builder.Build(s.ctx, &packbuild.BuildInput{
		Format: packbuild.FormatYAML,
		Keys:   []string{"refines"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Packs, 1)
	s.Equal(3, out.Packs[0].Written)
	s.Equal(1, out.Packs[0].Skipped)

	entries, err := os.ReadDir(filepath.Join(s.outDir, "hol-refines"))
	s.Require().NoError(err)
	s.Len(entries, 3)

	data, err := os.ReadFile(filepath.Join(s.outDir, "hol-refines", "ref-steel.yaml"))
	s.Require().NoError(err)

	var doc map[string]any
	s.Require().NoError(yaml.Unmarshal(data, &doc))
	s.Equal("ref-steel", doc["_id"])
	s.Equal("Steel", doc["name"])
	s.Equal("refine", doc["type"])
	s.Equal(hol.DefaultItemImage, doc["img"])

	sys := doc["system"].(map[string]any)
	s.Equal(map[string]any{"value": "Heavier."}, sys["description"])
	s.Equal(map[string]any{"value": 150}, sys["cost"])

	flags := doc["flags"].(map[string]any)
	s.Equal(map[string]any{"id": "ref-steel"}, flags[hol.FlagScope])

	data, err = os.ReadFile(filepath.Join(s.outDir, "hol-refines", "ref-bad.yaml"))
	s.Require().NoError(err, "a record with a malformed cost is still written")
	doc = nil
	s.Require().NoError(yaml.Unmarshal(data, &doc))
	s.Equal("Bad", doc["name"])
}

func (s *BuilderTestSuite) TestBuildSQLite() {
	out, err := s.builder.Build(s.ctx, &packbuild.BuildInput{
		Format: packbuild.FormatSQLite,
		Keys:   []string{"refines"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Packs, 1)
	s.Equal(filepath.Join(s.outDir, "hol-refines.db"), out.Packs[0].Path)

	// rebuilding replaces rather than duplicates
	_, err = s.builder.Build(s.ctx, &packbuild.BuildInput{
		Format: packbuild.FormatSQLite,
		Keys:   []string{"refines"},
	})
	s.Require().NoError(err)

	db, err := sql.Open("sqlite", out.Packs[0].Path)
	s.Require().NoError(err)
	defer func() { _ = db.Close() }()

	var count int
	s.Require().NoError(db.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM documents`).Scan(&count))
	s.Equal(3, count)

	var name string
	s.Require().NoError(db.QueryRowContext(s.ctx, `SELECT name FROM documents WHERE id = ?`, "ref-silver").Scan(&name))
	s.Equal("Silver's Edge", name)
}

func (s *BuilderTestSuite) TestBuildRejections() {
	testCases := []struct {
		name   string
		input  *packbuild.BuildInput
		code   errors.Code
		reason errors.Reason
	}{
		{
			name:  "unknown format",
			input: &packbuild.BuildInput{Format: "zip"},
			code:  errors.CodeInvalidArgument,
		},
		{
			name:  "unknown key",
			input: &packbuild.BuildInput{Keys: []string{"spells"}},
			code:  errors.CodeNotFound,
		},
		{
			name:   "seed is not an array",
			input:  &packbuild.BuildInput{Keys: []string{"skills"}},
			code:   errors.CodeInvalidArgument,
			reason: errors.ReasonInvalidSeedSource,
		},
		{
			name:   "missing seed file",
			input:  &packbuild.BuildInput{Keys: []string{"weapons"}},
			reason: errors.ReasonInvalidSeedSource,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.builder.Build(s.ctx, tc.input)
			s.Require().Error(err)
			if tc.code != "" {
				s.Equal(tc.code, errors.GetCode(err))
			}
			if tc.reason != "" {
				s.True(errors.HasReason(err, tc.reason))
			}
		})
	}
}
