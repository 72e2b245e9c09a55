package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var listOptionsCmd = &cobra.Command{
	Use:   "options <field>",
	Short: "List suggestions for race or class",
	Args:  cobra.ExactArgs(1),
	RunE:  runListOptions,
}

func runListOptions(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.FormServiceClient) error {
		resp, err := client.ListOptions(ctx, &v1alpha1.ListOptionsRequest{Field: args[0]})
		if err != nil {
			return describe(err)
		}
		if len(resp.Options) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No suggestions for %s\n", args[0])
			return nil
		}
		for _, o := range resp.Options {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", o.Key, o.Name)
		}
		return nil
	})
}
