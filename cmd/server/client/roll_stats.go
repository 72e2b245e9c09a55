package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var rollStatsCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll all six abilities with 4d6 drop lowest",
	Args:  cobra.NoArgs,
	RunE:  runRollStats,
}

func runRollStats(cmd *cobra.Command, _ []string) error {
	return withDraft(func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error {
		resp, err := client.RollStats(ctx, &v1alpha1.RollStatsRequest{Draft: d})
		if err != nil {
			return describe(err)
		}
		for _, r := range resp.Rolls {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v drop %d = %d\n", r.Ability, r.Dice, r.Dropped, r.Total)
		}
		return saveAndPrint(cmd, resp.Preview)
	})
}
