package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var updateStatCmd = &cobra.Command{
	Use:   "stat <ability> <value>",
	Short: "Set an ability score from text",
	Long: `Send the raw text for one ability. The server keeps the leading integer,
so negative values and text such as "12.9" are accepted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUpdateStat,
}

func init() {
	// Values such as -3 are positional, not shorthand flags
	updateStatCmd.Flags().SetInterspersed(false)
}

func runUpdateStat(cmd *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 2 {
		raw = args[1]
	}
	return withDraft(func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error {
		resp, err := client.UpdateStat(ctx, &v1alpha1.UpdateStatRequest{Draft: d, Ability: args[0], Raw: raw})
		if err != nil {
			return describe(err)
		}
		return saveAndPrint(cmd, resp.Preview)
	})
}
