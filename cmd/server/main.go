// Package main is the entry point for the hol-api server and operator tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hol-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "hol-api",
	Short: "Heroes of Lite content service",
	Long:  `hol-api serves weapon refines, seed imports and character sheets for the Heroes of Lite system over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(buildPacksCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
