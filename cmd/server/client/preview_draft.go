package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var previewDraftCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the draft as the server renders it",
	Args:  cobra.NoArgs,
	RunE:  runPreviewDraft,
}

func runPreviewDraft(cmd *cobra.Command, _ []string) error {
	return withDraft(func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error {
		resp, err := client.Preview(ctx, &v1alpha1.PreviewRequest{Draft: d})
		if err != nil {
			return describe(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.Preview)
		return nil
	})
}
