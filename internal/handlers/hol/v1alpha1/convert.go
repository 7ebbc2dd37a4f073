package v1alpha1

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/seed"
)

// Metadata keys carrying the caller identity
const (
	UserMetadataKey = "x-hol-user"
	RoleMetadataKey = "x-hol-role"
	GMRole          = "gm"
)

func principalFromContext(ctx context.Context) hol.Principal {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return hol.Principal{}
	}

	var p hol.Principal
	if users := md.Get(UserMetadataKey); len(users) > 0 {
		p.UserID = users[0]
	}
	for _, role := range md.Get(RoleMetadataKey) {
		if strings.EqualFold(role, GMRole) {
			p.IsGM = true
		}
	}
	return p
}

func stringField(req *structpb.Struct, key string) string {
	return strings.TrimSpace(req.GetFields()[key].GetStringValue())
}

func boolField(req *structpb.Struct, key string) bool {
	return req.GetFields()[key].GetBoolValue()
}

// intField reads a whole number. ok is false when the field is absent.
func intField(req *structpb.Struct, key string) (int, bool, error) {
	v, present := req.GetFields()[key]
	if !present {
		return 0, false, nil
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, true, errors.InvalidArgumentf("%s must be a whole number", key)
	}
	return int(n.NumberValue), true, nil
}

func requiredString(req *structpb.Struct, key string) (string, error) {
	v := stringField(req, key)
	if v == "" {
		return "", errors.InvalidArgumentf("%s is required", key)
	}
	return v, nil
}

func requiredInt(req *structpb.Struct, key string) (int, error) {
	v, ok, err := intField(req, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", key)
	}
	return v, nil
}

// fromStruct decodes a struct field into a JSON-tagged Go value
func fromStruct(s *structpb.Struct, v any) error {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// toStruct encodes a JSON-tagged Go value as a response message
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Internalf("response is not representable as a struct: %v", err)
	}
	return out, nil
}

type reportView struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	PackID  string `json:"packId"`
	Cleared int    `json:"cleared"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
}

func toReportView(r *seed.Report) *reportView {
	if r == nil {
		return nil
	}
	return &reportView{
		Key:     r.Entry.Key,
		Label:   r.Entry.Label,
		PackID:  r.PackID,
		Cleared: r.Cleared,
		Created: r.Created,
		Updated: r.Updated,
		Skipped: r.Skipped,
	}
}

type entryResultView struct {
	Key    string      `json:"key"`
	Report *reportView `json:"report,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type summaryView struct {
	Results []entryResultView `json:"results"`
	Created int               `json:"created"`
	Updated int               `json:"updated"`
	Skipped int               `json:"skipped"`
	Failed  int               `json:"failed"`
}

func toSummaryView(s *seed.Summary) *summaryView {
	view := &summaryView{
		Results: make([]entryResultView, 0, len(s.Results)),
		Created: s.Created,
		Updated: s.Updated,
		Skipped: s.Skipped,
		Failed:  s.Failed,
	}
	for _, r := range s.Results {
		result := entryResultView{Key: r.Entry.Key, Report: toReportView(r.Report)}
		if r.Err != nil {
			result.Error = r.Err.Error()
		}
		view.Results = append(view.Results, result)
	}
	return view
}

type weaponSlotView struct {
	Item     *hol.Item `json:"item"`
	Equipped bool      `json:"equipped"`
}

type sheetView struct {
	Actor             *hol.Actor        `json:"actor"`
	CurrentHP         int               `json:"currentHp"`
	CombatTotals      hol.CombatStats   `json:"combatTotals"`
	UnallocatedPoints int               `json:"unallocatedPoints"`
	WeaponSlots       []weaponSlotView  `json:"weaponSlots"`
	ItemSlots         []*hol.Item       `json:"itemSlots"`
	SkillSlots        []*hol.Item       `json:"skillSlots"`
	Supports          map[string]string `json:"supports"`
}

func toSheetView(s *actor.Sheet) *sheetView {
	view := &sheetView{
		Actor:             s.Actor,
		CurrentHP:         s.CurrentHP,
		CombatTotals:      s.CombatTotals,
		UnallocatedPoints: s.UnallocatedPoints,
		WeaponSlots:       make([]weaponSlotView, 0, len(s.WeaponSlots)),
		ItemSlots:         s.ItemSlots,
		SkillSlots:        s.SkillSlots,
		Supports:          s.Supports,
	}
	for _, slot := range s.WeaponSlots {
		view.WeaponSlots = append(view.WeaponSlots, weaponSlotView{Item: slot.Item, Equipped: slot.Equipped})
	}
	return view
}
