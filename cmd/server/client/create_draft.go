package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var createDraftCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new draft file",
	Long:  `Ask the server for an empty draft and write it to the draft file, replacing any previous one.`,
	Args:  cobra.NoArgs,
	RunE:  runCreateDraft,
}

func runCreateDraft(cmd *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.FormServiceClient) error {
		resp, err := client.NewDraft(ctx, &v1alpha1.NewDraftRequest{})
		if err != nil {
			return describe(err)
		}
		return saveAndPrint(cmd, resp.Preview)
	})
}
