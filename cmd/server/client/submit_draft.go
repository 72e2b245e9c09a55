package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var submitDraftCmd = &cobra.Command{
	Use:   "submit",
	Short: "Finalize the draft",
	Long:  `Submit the draft. The server rejects it while any identity field is blank.`,
	Args:  cobra.NoArgs,
	RunE:  runSubmitDraft,
}

func runSubmitDraft(cmd *cobra.Command, _ []string) error {
	return withDraft(func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error {
		resp, err := client.Submit(ctx, &v1alpha1.SubmitRequest{Draft: d})
		if err != nil {
			return describe(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s the %s %s\n",
			resp.Character.Name, resp.Character.Race, resp.Character.Class)
		return nil
	})
}
