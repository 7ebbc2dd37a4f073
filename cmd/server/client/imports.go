package client

import (
	"github.com/spf13/cobra"

	holv1alpha1 "github.com/KirkDiggler/hol-api/api/hol/v1alpha1"
)

var importClear bool

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "List and run seed imports",
}

var listImportsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured seed categories",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.ListImports }, map[string]any{})
	},
}

var runImportCmd = &cobra.Command{
	Use:   "run [key]",
	Short: "Import one category, or every category when no key is given",
	Long: `Import seed data on the server. Requires --gm. Examples:

  imports run --gm
  imports run weapons --gm --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.ImportAll }, map[string]any{
				"clear": importClear,
			})
		}
		return call(func(c holv1alpha1.HolServiceClient) callFunc { return c.ImportEntry }, map[string]any{
			"key":   args[0],
			"clear": importClear,
		})
	},
}

func init() {
	runImportCmd.Flags().BoolVar(&importClear, "clear", false, "delete existing pack documents first")

	importsCmd.AddCommand(listImportsCmd)
	importsCmd.AddCommand(runImportCmd)
}
