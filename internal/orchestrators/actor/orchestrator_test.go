package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hol-api/internal/repositories/actors"
	actorsmock "github.com/KirkDiggler/hol-api/internal/repositories/actors/mock"
	"github.com/KirkDiggler/hol-api/internal/repositories/items"
	"github.com/KirkDiggler/hol-api/internal/testutils"
)

type SheetControllerTestSuite struct {
	suite.Suite
	ctx       context.Context
	cleanup   func()
	actorRepo actors.Repository
	itemRepo  items.Repository
	svc       actor.SheetController
}

func TestSheetControllerTestSuite(t *testing.T) {
	suite.Run(t, new(SheetControllerTestSuite))
}

func (s *SheetControllerTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.actorRepo, err = actors.NewRedis(&actors.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.itemRepo, err = items.NewRedis(&items.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.svc, err = actor.NewOrchestrator(&actor.Config{
		ActorRepo:   s.actorRepo,
		ItemRepo:    s.itemRepo,
		IDGenerator: idgen.NewSequential("emb"),
	})
	s.Require().NoError(err)

	s.createItem("sword", "Sword", hol.ItemTypeWeapon)
	s.createItem("sword-2", "Sword", hol.ItemTypeWeapon)
	s.createItem("bow", "Bow", hol.ItemTypeWeapon)
	s.createItem("vulnerary", "Vulnerary", hol.ItemTypeConsumable)
	s.createItem("key", "Door Key", hol.ItemTypeKeyItem)
	s.createItem("vantage", "Vantage", hol.ItemTypeSkill)
	s.createItem("poisoned", "Poisoned", hol.ItemTypeStatus)
}

func (s *SheetControllerTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *SheetControllerTestSuite) createItem(id, name string, itemType hol.ItemType) {
	_, err := s.itemRepo.Create(s.ctx, items.CreateInput{Item: &hol.Item{
		ID:   id,
		Name: name,
		Type: itemType,
		Pack: "heroes-of-lite.hol-" + string(itemType),
	}})
	s.Require().NoError(err)
}

func (s *SheetControllerTestSuite) createActor(a *hol.Actor) *hol.Actor {
	out, err := s.actorRepo.Create(s.ctx, actors.CreateInput{Actor: a})
	s.Require().NoError(err)
	return out.Actor
}

func (s *SheetControllerTestSuite) reload(id string) *hol.Actor {
	out, err := s.actorRepo.Get(s.ctx, actors.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Actor
}

func (s *SheetControllerTestSuite) TestNewOrchestratorValidation() {
	_, err := actor.NewOrchestrator(nil)
	s.Error(err)

	_, err = actor.NewOrchestrator(&actor.Config{ActorRepo: s.actorRepo})
	s.Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *SheetControllerTestSuite) TestCreateActor() {
	out, err := s.svc.CreateActor(s.ctx, &actor.CreateActorInput{
		Name:           "Lyn",
		Type:           hol.ActorTypeCharacter,
		NonCombatStats: map[string]int{"charm": 4, "wit": 3},
	})
	s.Require().NoError(err)
	s.Equal("emb_1", out.Actor.ID)
	s.Equal(hol.DefaultActorImage, out.Actor.Img)
	s.Len(out.Actor.Skills, hol.SkillSlotCount)

	stored := s.reload(out.Actor.ID)
	s.Equal("Lyn", stored.Name)
}

func (s *SheetControllerTestSuite) TestCreateActorValidation() {
	testCases := []struct {
		name  string
		input *actor.CreateActorInput
	}{
		{
			name:  "missing name",
			input: &actor.CreateActorInput{Type: hol.ActorTypeUnit},
		},
		{
			name:  "unknown type",
			input: &actor.CreateActorInput{Name: "Hector", Type: "npc"},
		},
		{
			name: "over the point pool",
			input: &actor.CreateActorInput{
				Name:           "Hector",
				Type:           hol.ActorTypeCharacter,
				NonCombatStats: map[string]int{"charm": 10, "wit": 3},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.CreateActor(s.ctx, tc.input)
			s.Error(err)
			s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
		})
	}
}

func (s *SheetControllerTestSuite) TestPrepareSheetDefaults() {
	a := s.createActor(&hol.Actor{
		ID:             "a1",
		Name:           "Eliwood",
		Type:           hol.ActorTypeCharacter,
		CombatStats:    hol.CombatStats{Atk: 6},
		NonCombatStats: map[string]int{"charm": 5},
	})

	out, err := s.svc.PrepareSheet(s.ctx, &actor.PrepareSheetInput{ActorID: a.ID})
	s.Require().NoError(err)

	sheet := out.Sheet
	s.Equal(hol.DefaultHP, sheet.CurrentHP)
	s.Equal(hol.CombatStats{HP: 15, Atk: 6, Spd: 3, Dex: 3, Def: 3, Res: 3, Luck: 3}, sheet.CombatTotals)
	s.Equal(7, sheet.UnallocatedPoints)
	s.Len(sheet.WeaponSlots, hol.MaxWeaponSlots)
	s.Len(sheet.ItemSlots, hol.MaxItemSlots)
	s.Len(sheet.SkillSlots, hol.SkillSlotCount)
	for _, slot := range sheet.WeaponSlots {
		s.Nil(slot.Item)
	}
}

func (s *SheetControllerTestSuite) TestPrepareSheetCurrentHP() {
	hp := 9
	a := s.createActor(&hol.Actor{
		ID:          "a1",
		Name:        "Eliwood",
		Type:        hol.ActorTypeCharacter,
		CombatStats: hol.CombatStats{HP: 20},
		CurrentHP:   &hp,
	})

	out, err := s.svc.PrepareSheet(s.ctx, &actor.PrepareSheetInput{ActorID: a.ID})
	s.Require().NoError(err)
	s.Equal(9, out.Sheet.CurrentHP)
	s.Equal(20, out.Sheet.CombatTotals.HP)
}

func (s *SheetControllerTestSuite) TestPrepareSheetEquippedFirst() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	sword, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "sword"})
	s.Require().NoError(err)
	bow, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "bow"})
	s.Require().NoError(err)
	_, err = s.svc.EquipWeapon(s.ctx, &actor.EquipWeaponInput{ActorID: a.ID, WeaponID: bow.Item.ID})
	s.Require().NoError(err)

	out, err := s.svc.PrepareSheet(s.ctx, &actor.PrepareSheetInput{ActorID: a.ID})
	s.Require().NoError(err)

	slots := out.Sheet.WeaponSlots
	s.Require().NotNil(slots[0].Item)
	s.Equal(bow.Item.ID, slots[0].Item.ID)
	s.True(slots[0].Equipped)
	s.Require().NotNil(slots[1].Item)
	s.Equal(sword.Item.ID, slots[1].Item.ID)
	s.False(slots[1].Equipped)
	s.Nil(slots[2].Item)
}

func (s *SheetControllerTestSuite) TestAddWeaponCopiesIntoActor() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	out, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "sword"})
	s.Require().NoError(err)
	s.True(out.Added)
	s.Equal("emb_1", out.Item.ID)
	s.False(out.Item.IsReadOnly())
	source, _ := out.Item.GetFlag(hol.FlagScope, hol.SourceIDFlag)
	s.Equal("sword", source)

	stored := s.reload(a.ID)
	s.Equal([]string{"emb_1"}, stored.Inventory.Weapons)
	s.NotNil(stored.EmbeddedItem("emb_1"))
}

func (s *SheetControllerTestSuite) TestAddWeaponDedupesByName() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	first, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "sword"})
	s.Require().NoError(err)
	second, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "sword-2"})
	s.Require().NoError(err)

	s.False(second.Added)
	s.Equal(first.Item.ID, second.Item.ID)
	stored := s.reload(a.ID)
	s.Len(stored.Items, 1)
	s.Len(stored.Inventory.Weapons, 1)
}

func (s *SheetControllerTestSuite) TestAddWeaponRejections() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	_, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "vulnerary"})
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "missing"})
	s.Equal(errors.CodeNotFound, errors.GetCode(err))

	_, err = s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: "nobody", ItemID: "sword"})
	s.Equal(errors.CodeNotFound, errors.GetCode(err))
}

func (s *SheetControllerTestSuite) TestAddWeaponSlotsFull() {
	full := testutils.CreateTestCharacter("a1")
	for i, name := range []string{"Iron Sword", "Iron Lance", "Iron Axe", "Iron Bow", "Iron Dagger"} {
		id := string(rune('a' + i))
		full.Items = append(full.Items, &hol.Item{ID: id, Name: name, Type: hol.ItemTypeWeapon})
		full.Inventory.Weapons = append(full.Inventory.Weapons, id)
	}
	s.createActor(full)

	_, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: "a1", ItemID: "bow"})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Len(s.reload("a1").Items, 5)
}

func (s *SheetControllerTestSuite) TestAddItem() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	out, err := s.svc.AddItem(s.ctx, &actor.AddItemInput{ActorID: a.ID, ItemID: "vulnerary"})
	s.Require().NoError(err)
	s.True(out.Added)
	_, err = s.svc.AddItem(s.ctx, &actor.AddItemInput{ActorID: a.ID, ItemID: "key"})
	s.Require().NoError(err)

	_, err = s.svc.AddItem(s.ctx, &actor.AddItemInput{ActorID: a.ID, ItemID: "poisoned"})
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	sheet, err := s.svc.PrepareSheet(s.ctx, &actor.PrepareSheetInput{ActorID: a.ID})
	s.Require().NoError(err)
	s.Equal("Vulnerary", sheet.Sheet.ItemSlots[0].Name)
	s.Equal("Door Key", sheet.Sheet.ItemSlots[1].Name)
	s.Nil(sheet.Sheet.ItemSlots[2])
}

func (s *SheetControllerTestSuite) TestSetSkillReusesEmbeddedCopy() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	_, err := s.svc.SetSkill(s.ctx, &actor.SetSkillInput{ActorID: a.ID, ItemID: "vantage", Slot: 2})
	s.Require().NoError(err)
	out, err := s.svc.SetSkill(s.ctx, &actor.SetSkillInput{ActorID: a.ID, ItemID: "vantage", Slot: 5})
	s.Require().NoError(err)

	s.Len(out.Actor.Items, 1)
	s.Equal("emb_1", out.Actor.Skills[2])
	s.Equal("emb_1", out.Actor.Skills[5])

	sheet, err := s.svc.PrepareSheet(s.ctx, &actor.PrepareSheetInput{ActorID: a.ID})
	s.Require().NoError(err)
	s.Nil(sheet.Sheet.SkillSlots[0])
	s.Equal("Vantage", sheet.Sheet.SkillSlots[5].Name)
}

func (s *SheetControllerTestSuite) TestSetSkillSlotBounds() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	for _, slot := range []int{-1, hol.SkillSlotCount} {
		_, err := s.svc.SetSkill(s.ctx, &actor.SetSkillInput{ActorID: a.ID, ItemID: "vantage", Slot: slot})
		s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	}
}

func (s *SheetControllerTestSuite) TestAddSupport() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))
	s.createActor(testutils.CreateTestUnit("u1", "Kent"))
	s.createActor(&hol.Actor{ID: "c2", Name: "Hector", Type: hol.ActorTypeCharacter})

	out, err := s.svc.AddSupport(s.ctx, &actor.AddSupportInput{ActorID: a.ID, SupportActorID: "u1"})
	s.Require().NoError(err)
	s.Equal(map[string]string{"u1": hol.SupportRankC}, out.Actor.Supports)

	_, err = s.svc.AddSupport(s.ctx, &actor.AddSupportInput{ActorID: a.ID, SupportActorID: "c2"})
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = s.svc.AddSupport(s.ctx, &actor.AddSupportInput{ActorID: a.ID, SupportActorID: a.ID})
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *SheetControllerTestSuite) TestAddSupportKeepsRank() {
	s.createActor(&hol.Actor{
		ID:       "a1",
		Name:     "Lyn",
		Type:     hol.ActorTypeCharacter,
		Supports: map[string]string{"u1": "A"},
	})
	s.createActor(testutils.CreateTestUnit("u1", "Kent"))

	out, err := s.svc.AddSupport(s.ctx, &actor.AddSupportInput{ActorID: "a1", SupportActorID: "u1"})
	s.Require().NoError(err)
	s.Equal("A", out.Actor.Supports["u1"])
}

func (s *SheetControllerTestSuite) TestEquipWeaponRequiresCarriedWeapon() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))
	item, err := s.svc.AddItem(s.ctx, &actor.AddItemInput{ActorID: a.ID, ItemID: "vulnerary"})
	s.Require().NoError(err)

	_, err = s.svc.EquipWeapon(s.ctx, &actor.EquipWeaponInput{ActorID: a.ID, WeaponID: item.Item.ID})
	s.Equal(errors.CodeNotFound, errors.GetCode(err))

	_, err = s.svc.EquipWeapon(s.ctx, &actor.EquipWeaponInput{ActorID: a.ID, WeaponID: "sword"})
	s.Equal(errors.CodeNotFound, errors.GetCode(err))
}

func (s *SheetControllerTestSuite) TestRemoveItemClearsReferences() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	sword, err := s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "sword"})
	s.Require().NoError(err)
	_, err = s.svc.AddWeapon(s.ctx, &actor.AddWeaponInput{ActorID: a.ID, ItemID: "bow"})
	s.Require().NoError(err)
	_, err = s.svc.EquipWeapon(s.ctx, &actor.EquipWeaponInput{ActorID: a.ID, WeaponID: sword.Item.ID})
	s.Require().NoError(err)

	out, err := s.svc.RemoveItem(s.ctx, &actor.RemoveItemInput{ActorID: a.ID, ItemID: sword.Item.ID})
	s.Require().NoError(err)

	s.Equal([]string{"emb_2"}, out.Actor.Inventory.Weapons)
	s.Empty(out.Actor.Inventory.Equipped)
	s.Nil(out.Actor.EmbeddedItem(sword.Item.ID))
	s.Len(out.Actor.Items, 1)

	_, err = s.svc.RemoveItem(s.ctx, &actor.RemoveItemInput{ActorID: a.ID, ItemID: sword.Item.ID})
	s.Equal(errors.CodeNotFound, errors.GetCode(err))
}

func (s *SheetControllerTestSuite) TestAdjustChargeNeverNegative() {
	a := s.createActor(testutils.CreateTestCharacter("a1"))

	testCases := []struct {
		name     string
		delta    int
		expected int
	}{
		{name: "increment", delta: 1, expected: 1},
		{name: "increment again", delta: 1, expected: 2},
		{name: "decrement", delta: -1, expected: 1},
		{name: "floor at zero", delta: -5, expected: 0},
		{name: "decrement at zero", delta: -1, expected: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.AdjustCharge(s.ctx, &actor.AdjustChargeInput{ActorID: a.ID, Delta: tc.delta})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Actor.Charge)
		})
	}
}

func (s *SheetControllerTestSuite) TestAdjustChargeSaveFailure() {
	ctrl := gomock.NewController(s.T())
	actorRepo := actorsmock.NewMockRepository(ctrl)
	svc, err := actor.NewOrchestrator(&actor.Config{
		ActorRepo:   actorRepo,
		ItemRepo:    s.itemRepo,
		IDGenerator: idgen.NewSequential("emb"),
	})
	s.Require().NoError(err)

	actorRepo.EXPECT().Get(gomock.Any(), actors.GetInput{ID: "a1"}).
		Return(&actors.GetOutput{Actor: testutils.CreateTestCharacter("a1")}, nil)
	actorRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("store offline"))

	_, err = svc.AdjustCharge(s.ctx, &actor.AdjustChargeInput{ActorID: "a1", Delta: 1})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}
