// Package main is the entry point for the character form server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "mapfantasai",
	Short: "MapFantasai character form",
	Long: `MapFantasai collects a game character through a form: identity, six ability
scores, inventory, personality traits and quirks. Run the gRPC server, fill the
form in the terminal, or drive a remote server with the client commands.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
