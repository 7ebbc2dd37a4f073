package testutils

import (
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// Principals shared by tests
var (
	TestGM     = hol.Principal{UserID: "gm-1", IsGM: true}
	TestPlayer = hol.Principal{UserID: "player-1"}
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Roy"

// CreateTestCharacter creates a character with an empty sheet
func CreateTestCharacter(id string) *hol.Actor {
	return &hol.Actor{
		ID:             id,
		Name:           TestCharacterName,
		Type:           hol.ActorTypeCharacter,
		Img:            hol.DefaultActorImage,
		NonCombatStats: map[string]int{},
	}
}

// CreateTestUnit creates a unit actor that can be bonded as a support partner
func CreateTestUnit(id, name string) *hol.Actor {
	return &hol.Actor{
		ID:   id,
		Name: name,
		Type: hol.ActorTypeUnit,
		Img:  hol.DefaultActorImage,
	}
}
