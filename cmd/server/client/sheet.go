package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	holv1alpha1 "github.com/KirkDiggler/hol-api/api/hol/v1alpha1"
)

var actorType string

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Work with character sheets",
}

var createActorCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a character or unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.CreateActor }, map[string]any{
			"name": args[0],
			"type": actorType,
		})
	},
}

var getSheetCmd = &cobra.Command{
	Use:   "get [actor-id]",
	Short: "Show an actor's sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.GetActorSheet }, map[string]any{
			"actor_id": args[0],
		})
	},
}

var chargeCmd = &cobra.Command{
	Use:   "charge [actor-id] [delta]",
	Short: "Raise or lower an actor's charge",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be a number: %w", err)
		}
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.AdjustCharge }, map[string]any{
			"actor_id": args[0],
			"delta":    delta,
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip [actor-id] [weapon-id]",
	Short: "Equip a carried weapon",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.EquipWeapon }, map[string]any{
			"actor_id":  args[0],
			"weapon_id": args[1],
		})
	},
}

var addWeaponCmd = &cobra.Command{
	Use:   "add-weapon [actor-id] [item-id]",
	Short: "Copy a weapon into an actor's inventory",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.AddWeapon }, map[string]any{
			"actor_id": args[0],
			"item_id":  args[1],
		})
	},
}

var addItemCmd = &cobra.Command{
	Use:   "add-item [actor-id] [item-id]",
	Short: "Copy a consumable or key item into an actor's inventory",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.AddItem }, map[string]any{
			"actor_id": args[0],
			"item_id":  args[1],
		})
	},
}

var setSkillCmd = &cobra.Command{
	Use:   "set-skill [actor-id] [slot] [item-id]",
	Short: "Place a skill in slot 0-7",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("slot must be a number: %w", err)
		}
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.SetSkill }, map[string]any{
			"actor_id": args[0],
			"slot":     slot,
			"item_id":  args[2],
		})
	},
}

var addSupportCmd = &cobra.Command{
	Use:   "add-support [actor-id] [unit-id]",
	Short: "Bond a unit to an actor",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.AddSupport }, map[string]any{
			"actor_id":         args[0],
			"support_actor_id": args[1],
		})
	},
}

var removeItemCmd = &cobra.Command{
	Use:   "remove [actor-id] [item-id]",
	Short: "Remove an embedded item from an actor",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.RemoveItem }, map[string]any{
			"actor_id": args[0],
			"item_id":  args[1],
		})
	},
}

func init() {
	createActorCmd.Flags().StringVar(&actorType, "type", "character", "character or unit")

	sheetCmd.AddCommand(createActorCmd)
	sheetCmd.AddCommand(getSheetCmd)
	sheetCmd.AddCommand(chargeCmd)
	sheetCmd.AddCommand(equipCmd)
	sheetCmd.AddCommand(addWeaponCmd)
	sheetCmd.AddCommand(addItemCmd)
	sheetCmd.AddCommand(setSkillCmd)
	sheetCmd.AddCommand(addSupportCmd)
	sheetCmd.AddCommand(removeItemCmd)
}
