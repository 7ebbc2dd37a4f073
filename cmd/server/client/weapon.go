package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	holv1alpha1 "github.com/KirkDiggler/hol-api/api/hol/v1alpha1"
)

var actorID string

var weaponCmd = &cobra.Command{
	Use:   "weapon",
	Short: "Inspect and refine weapons",
}

var getWeaponCmd = &cobra.Command{
	Use:   "get [weapon-id]",
	Short: "Show a weapon and its refine slots",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.GetWeapon }, map[string]any{
			"actor_id":  actorID,
			"weapon_id": args[0],
		})
	},
}

var attachRefineCmd = &cobra.Command{
	Use:   "attach [weapon-id] [slot] [refine-id]",
	Short: "Attach a refine to a weapon slot",
	Long: `Attach a refine to slot 0 or 1. The refine may be named by document id
or by seed id. Examples:

  weapon attach wpn123 0 ref-steel
  weapon attach emb_1 1 ref-silver --actor a1`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("slot must be a number: %w", err)
		}
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.AttachRefine }, map[string]any{
			"actor_id":  actorID,
			"weapon_id": args[0],
			"slot":      slot,
			"refine_id": args[2],
		})
	},
}

var detachRefineCmd = &cobra.Command{
	Use:   "detach [weapon-id] [slot]",
	Short: "Clear a weapon refine slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("slot must be a number: %w", err)
		}
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.DetachRefine }, map[string]any{
			"actor_id":  actorID,
			"weapon_id": args[0],
			"slot":      slot,
		})
	},
}

func init() {
	weaponCmd.PersistentFlags().StringVar(&actorID, "actor", "", "actor that carries the weapon")

	weaponCmd.AddCommand(getWeaponCmd)
	weaponCmd.AddCommand(attachRefineCmd)
	weaponCmd.AddCommand(detachRefineCmd)
}
