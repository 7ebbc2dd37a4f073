package seed_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hol-api/internal/config"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/seed"
	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hol-api/internal/repositories/items"
	"github.com/KirkDiggler/hol-api/internal/repositories/packs"
	packsmock "github.com/KirkDiggler/hol-api/internal/repositories/packs/mock"
	"github.com/KirkDiggler/hol-api/internal/seedsource"
	seedsourcemock "github.com/KirkDiggler/hol-api/internal/seedsource/mock"
	"github.com/KirkDiggler/hol-api/internal/testutils"
)

const skillsSeed = `[
	{"id": "skl-vantage", "name": "Vantage", "trigger": "below half HP", "description": "Strike first."},
	{"id": "skl-canto", "name": "Canto"},
	"not an object",
	{"name": "No Id"},
	{"id": 42, "name": "Numeric Id"},
	{"id": "", "name": "Empty Id"},
	null,
	{"id": "skl-nameless", "img": "icons/skills/nameless.webp"}
]`

const weaponsSeed = `[
	{"id": "wpn-sword", "name": "Sword", "weaponGroup": "sword", "might": 5, "range": {"min": 1, "max": 1}, "costG": 100},
	{"id": "wpn-bow", "name": "Bow", "weaponGroup": "bow", "might": 6, "range": {"min": 2, "max": 2}, "costG": 200},
	{"id": "wpn-bad", "name": "Broken", "weaponGroup": "sword", "might": "lots"}
]`

var (
	gm     = testutils.TestGM
	player = testutils.TestPlayer
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx      context.Context
	cleanup  func()
	itemRepo items.Repository
	packRepo packs.Repository
	bus      events.EventBus
	files    fstest.MapFS
	imports  []hol.SeedEntry
	svc      seed.Service

	entryEvents []*seed.Report
	batchEvents []*seed.Summary
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.itemRepo, err = items.NewRedis(&items.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.packRepo, err = packs.NewRedis(&packs.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.files = fstest.MapFS{
		"data/seed/skills.json":  {Data: []byte(skillsSeed)},
		"data/seed/weapons.json": {Data: []byte(weaponsSeed)},
	}

	s.imports = []hol.SeedEntry{}
	for _, entry := range config.DefaultImports() {
		if entry.Key == "skills" || entry.Key == "weapons" {
			s.imports = append(s.imports, entry)
		}
	}

	s.entryEvents = nil
	s.batchEvents = nil
	s.bus = events.NewBus()
	s.bus.SubscribeFunc(seed.EventEntryImported, 0, func(_ context.Context, e events.Event) error {
		s.entryEvents = append(s.entryEvents, e.Target().(*seed.Report))
		return nil
	})
	s.bus.SubscribeFunc(seed.EventBatchCompleted, 0, func(_ context.Context, e events.Event) error {
		s.batchEvents = append(s.batchEvents, e.Target().(*seed.Summary))
		return nil
	})

	s.svc = s.newService(seedsource.NewFS(s.files), s.packRepo)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) newService(fetcher seedsource.Fetcher, packRepo packs.Repository) seed.Service {
	svc, err := seed.NewOrchestrator(&seed.Config{
		ItemRepo:    s.itemRepo,
		PackRepo:    packRepo,
		Fetcher:     fetcher,
		IDGenerator: idgen.NewSequential("doc"),
		EventBus:    s.bus,
		Imports:     s.imports,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) entry(key string) hol.SeedEntry {
	for _, e := range s.imports {
		if e.Key == key {
			return e
		}
	}
	s.FailNow("unknown entry " + key)
	return hol.SeedEntry{}
}

func (s *OrchestratorTestSuite) packItems(packID string) []*hol.Item {
	out, err := s.itemRepo.ListByPack(s.ctx, items.ListByPackInput{PackID: packID})
	s.Require().NoError(err)
	return out.Items
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := seed.NewOrchestrator(&seed.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "ItemRepo")
	s.Contains(err.Error(), "EventBus")

	_, err = seed.NewOrchestrator(&seed.Config{
		ItemRepo:    s.itemRepo,
		PackRepo:    s.packRepo,
		Fetcher:     seedsource.NewFS(s.files),
		IDGenerator: idgen.NewSequential("doc"),
		EventBus:    s.bus,
		Imports:     []hol.SeedEntry{s.entry("skills"), s.entry("skills")},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "duplicate key")
}

func (s *OrchestratorTestSuite) TestPermissionDeniedBeforeAnyIO() {
	ctrl := gomock.NewController(s.T())
	fetcher := seedsourcemock.NewMockFetcher(ctrl)
	// no expectations: any fetch fails the test
	svc := s.newService(fetcher, s.packRepo)

	_, err := svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: player, Entry: s.entry("skills")})
	s.True(errors.IsPermissionDenied(err))
	s.True(errors.HasReason(err, errors.ReasonPermissionDenied))

	_, err = svc.ImportOne(s.ctx, &seed.ImportOneInput{Principal: player, Key: "skills"})
	s.True(errors.IsPermissionDenied(err))
	s.True(errors.HasReason(err, errors.ReasonPermissionDenied))

	_, err = svc.ImportAll(s.ctx, &seed.ImportAllInput{Principal: player})
	s.True(errors.IsPermissionDenied(err))
	s.True(errors.HasReason(err, errors.ReasonPermissionDenied))

	list, err := s.packRepo.List(s.ctx, packs.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Packs)
	s.Empty(s.batchEvents)
}

func (s *OrchestratorTestSuite) TestImportEntryCreatesAndSkips() {
	out, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().NoError(err)

	report := out.Report
	s.Equal("world.hol-skills", report.PackID)
	s.Equal(3, report.Created)
	s.Equal(0, report.Updated)
	s.Equal(5, report.Skipped)

	pack, err := s.packRepo.Get(s.ctx, packs.GetInput{ID: "world.hol-skills"})
	s.Require().NoError(err)
	s.Equal("HoL - Skills", pack.Pack.Label)
	s.Equal(hol.DocumentTypeItem, pack.Pack.DocumentType)

	docs := s.packItems("world.hol-skills")
	s.Require().Len(docs, 3)

	byExternal := map[string]*hol.Item{}
	for _, d := range docs {
		byExternal[d.ExternalID(hol.FlagScope)] = d
	}

	vantage := byExternal["skl-vantage"]
	s.Require().NotNil(vantage)
	s.Equal("Vantage", vantage.Name)
	s.Equal(hol.ItemTypeSkill, vantage.Type)
	s.Equal(hol.DefaultItemImage, vantage.Img)
	s.Equal("Strike first.", vantage.Description)
	s.Equal("below half HP", vantage.CustomData["trigger"])
	s.Equal("skl-vantage", vantage.CustomData["id"])
	s.NotContains(vantage.CustomData, "name")
	s.True(vantage.IsReadOnly())

	nameless := byExternal["skl-nameless"]
	s.Require().NotNil(nameless)
	s.Equal("skl-nameless", nameless.Name)
	s.Equal("icons/skills/nameless.webp", nameless.Img)
	s.Equal("", nameless.Description)
	s.NotContains(nameless.CustomData, "img")

	s.Require().Len(s.entryEvents, 1)
	s.Equal(3, s.entryEvents[0].Created)
}

func (s *OrchestratorTestSuite) TestReimportIsIdempotent() {
	first, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().NoError(err)
	before := s.packItems("world.hol-skills")

	second, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().NoError(err)
	s.Equal(0, second.Report.Created)
	s.Equal(first.Report.Created, second.Report.Updated)
	s.Equal(first.Report.Skipped, second.Report.Skipped)

	after := s.packItems("world.hol-skills")
	s.Require().Len(after, len(before))
	for i := range before {
		s.Equal(before[i].ID, after[i].ID)
		s.Equal(before[i].Name, after[i].Name)
		s.Equal(before[i].CustomData, after[i].CustomData)
		s.Equal(before[i].Flags, after[i].Flags)
	}
}

func (s *OrchestratorTestSuite) TestClearLeavesOnlyValidRecords() {
	_, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().NoError(err)

	_, err = s.itemRepo.Create(s.ctx, items.CreateInput{Item: &hol.Item{
		ID:   "stray",
		Name: "Stray",
		Type: hol.ItemTypeSkill,
		Pack: "world.hol-skills",
	}})
	s.Require().NoError(err)
	s.Len(s.packItems("world.hol-skills"), 4)

	out, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills"), Clear: true})
	s.Require().NoError(err)
	s.Equal(4, out.Report.Cleared)
	s.Equal(3, out.Report.Created)
	s.Len(s.packItems("world.hol-skills"), 3)
}

func (s *OrchestratorTestSuite) TestModulePackPreferred() {
	_, err := s.packRepo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{
		Name:         "hol-skills",
		Label:        "Skills",
		DocumentType: hol.DocumentTypeItem,
		Package:      hol.ModuleID,
		Locked:       true,
	}})
	s.Require().NoError(err)

	out, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().NoError(err)
	s.Equal("heroes-of-lite.hol-skills", out.Report.PackID)

	_, err = s.packRepo.Get(s.ctx, packs.GetInput{ID: "world.hol-skills"})
	s.True(errors.IsNotFound(err))

	s.Len(s.packItems("heroes-of-lite.hol-skills"), 3)
	got, err := s.packRepo.Get(s.ctx, packs.GetInput{ID: "heroes-of-lite.hol-skills"})
	s.Require().NoError(err)
	s.True(got.Pack.Locked, "a locked pack is locked again after the import")
}

func (s *OrchestratorTestSuite) TestLockedPackRelockFailure() {
	ctrl := gomock.NewController(s.T())
	packRepo := packsmock.NewMockRepository(ctrl)
	locked := &hol.Pack{
		ID:           "heroes-of-lite.hol-skills",
		Name:         "hol-skills",
		DocumentType: hol.DocumentTypeItem,
		Package:      hol.ModuleID,
		Locked:       true,
	}
	packRepo.EXPECT().Get(gomock.Any(), packs.GetInput{ID: locked.ID}).
		Return(&packs.GetOutput{Pack: locked}, nil)
	gomock.InOrder(
		packRepo.EXPECT().SetLocked(gomock.Any(), packs.SetLockedInput{ID: locked.ID, Locked: false}).
			Return(&packs.SetLockedOutput{}, nil),
		packRepo.EXPECT().SetLocked(gomock.Any(), packs.SetLockedInput{ID: locked.ID, Locked: true}).
			Return(nil, errors.Unavailable("store offline")),
	)
	svc := s.newService(seedsource.NewFS(s.files), packRepo)

	out, err := svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.HasReason(err, errors.ReasonCollectionUnavailable))
}

func (s *OrchestratorTestSuite) TestInvalidSeedSource() {
	s.files["data/seed/skills.json"] = &fstest.MapFile{Data: []byte(`{"id": "not-an-array"}`)}

	testCases := []struct {
		name  string
		entry hol.SeedEntry
	}{
		{name: "not an array", entry: s.entry("skills")},
		{name: "missing file", entry: hol.SeedEntry{
			Key:      "extra",
			Label:    "Extra",
			SeedPath: "data/seed/extra.json",
			PackName: "hol-extra",
			DocType:  hol.DocumentTypeItem,
			ItemType: hol.ItemTypeKeyItem,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: tc.entry})
			s.Require().Error(err)
			s.True(errors.HasReason(err, errors.ReasonInvalidSeedSource))
			s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
		})
	}

	list, err := s.packRepo.List(s.ctx, packs.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Packs, "a bad seed file must not create packs")
}

func (s *OrchestratorTestSuite) TestCollectionUnavailable() {
	ctrl := gomock.NewController(s.T())
	packRepo := packsmock.NewMockRepository(ctrl)
	packRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no pack")).
		Times(2)
	packRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("packs are read only"))
	svc := s.newService(seedsource.NewFS(s.files), packRepo)

	_, err := svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().Error(err)
	s.True(errors.HasReason(err, errors.ReasonCollectionUnavailable))
	s.Empty(s.entryEvents)
}

func (s *OrchestratorTestSuite) TestWeaponsCarryTypedDetails() {
	out, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("weapons")})
	s.Require().NoError(err)
	s.Equal(3, out.Report.Created)
	s.Equal(0, out.Report.Skipped)

	byID := map[string]*hol.Item{}
	for _, doc := range s.packItems("world.hol-weapons") {
		s.Require().NotNil(doc.Weapon, doc.Name)
		byID[doc.ExternalID(hol.FlagScope)] = doc
	}
	s.Require().Len(byID, 3)

	bow := byID["wpn-bow"]
	s.Equal(hol.WeaponGroupBow, bow.Weapon.Group)
	s.Equal(6, bow.Weapon.Might)
	s.Equal(hol.Range{Min: 2, Max: 2}, bow.Weapon.Range)
	s.Equal(200, bow.Weapon.CostG)

	broken := byID["wpn-bad"]
	s.Equal("Broken", broken.Name)
	s.Equal(hol.WeaponGroupSword, broken.Weapon.Group, "fields that decode are kept")
	s.Equal(0, broken.Weapon.Might)
	s.Equal("lots", broken.CustomData["might"])
}

func (s *OrchestratorTestSuite) TestClearKeepsEveryValidRecord() {
	_, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("weapons")})
	s.Require().NoError(err)

	out, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("weapons"), Clear: true})
	s.Require().NoError(err)
	s.Equal(3, out.Report.Created)
	s.Equal(0, out.Report.Skipped)
	s.Len(s.packItems("world.hol-weapons"), 3)
}

func (s *OrchestratorTestSuite) TestLegacyWeaponAdoptedByName() {
	_, err := s.packRepo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{
		Name:         "hol-weapons",
		DocumentType: hol.DocumentTypeItem,
		Package:      hol.WorldPackage,
	}})
	s.Require().NoError(err)

	_, err = s.itemRepo.Create(s.ctx, items.CreateInput{Item: &hol.Item{
		ID:   "legacy-sword",
		Name: "sword ",
		Type: hol.ItemTypeWeapon,
		Pack: "world.hol-weapons",
	}})
	s.Require().NoError(err)

	out, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("weapons")})
	s.Require().NoError(err)
	s.Equal(1, out.Report.Updated)
	s.Equal(2, out.Report.Created)

	got, err := s.itemRepo.Get(s.ctx, items.GetInput{ID: "legacy-sword"})
	s.Require().NoError(err)
	s.Equal("Sword", got.Item.Name)
	s.Equal("wpn-sword", got.Item.ExternalID(hol.FlagScope))
	s.Len(s.packItems("world.hol-weapons"), 2)
}

func (s *OrchestratorTestSuite) TestNoNameAdoptionWithoutLegacyFlag() {
	_, err := s.packRepo.Create(s.ctx, packs.CreateInput{Pack: &hol.Pack{
		Name:         "hol-skills",
		DocumentType: hol.DocumentTypeItem,
		Package:      hol.WorldPackage,
	}})
	s.Require().NoError(err)
	_, err = s.itemRepo.Create(s.ctx, items.CreateInput{Item: &hol.Item{
		ID:   "hand-made",
		Name: "Canto",
		Type: hol.ItemTypeSkill,
		Pack: "world.hol-skills",
	}})
	s.Require().NoError(err)

	out, err := s.svc.ImportEntry(s.ctx, &seed.ImportEntryInput{Principal: gm, Entry: s.entry("skills")})
	s.Require().NoError(err)
	s.Equal(3, out.Report.Created)
	s.Equal(0, out.Report.Updated)
	s.Len(s.packItems("world.hol-skills"), 4)
}

func (s *OrchestratorTestSuite) TestImportOne() {
	out, err := s.svc.ImportOne(s.ctx, &seed.ImportOneInput{Principal: gm, Key: "weapons"})
	s.Require().NoError(err)
	s.Equal("weapons", out.Report.Entry.Key)

	_, err = s.svc.ImportOne(s.ctx, &seed.ImportOneInput{Principal: gm, Key: "spells"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestImportAllContinuesAfterFailure() {
	delete(s.files, "data/seed/skills.json")

	out, err := s.svc.ImportAll(s.ctx, &seed.ImportAllInput{Principal: gm})
	s.Require().NoError(err)

	summary := out.Summary
	s.Require().Len(summary.Results, 2)
	s.Equal(1, summary.Failed)
	s.Equal(2, summary.Created)

	for _, result := range summary.Results {
		switch result.Entry.Key {
		case "skills":
			s.True(errors.HasReason(result.Err, errors.ReasonInvalidSeedSource))
			s.Nil(result.Report)
		case "weapons":
			s.NoError(result.Err)
			s.Equal(2, result.Report.Created)
		}
	}

	s.Len(s.entryEvents, 1, "one progress event per imported category")
	s.Require().Len(s.batchEvents, 1)
	s.Equal(summary, s.batchEvents[0])
}

func (s *OrchestratorTestSuite) TestListImports() {
	out, err := s.svc.ListImports(s.ctx, &seed.ListImportsInput{})
	s.Require().NoError(err)
	s.Equal(s.imports, out.Entries)

	out.Entries[0].Key = "changed"
	again, err := s.svc.ListImports(s.ctx, &seed.ListImportsInput{})
	s.Require().NoError(err)
	s.Equal(s.imports[0].Key, again.Entries[0].Key)
}
