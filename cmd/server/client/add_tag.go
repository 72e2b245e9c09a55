package client

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var addTagCmd = &cobra.Command{
	Use:   "add <list> <value>",
	Short: "Add to inventory, traits or quirks",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAddTag,
}

func runAddTag(cmd *cobra.Command, args []string) error {
	return withDraft(func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error {
		resp, err := client.AddTag(ctx, &v1alpha1.AddTagRequest{
			Draft: d,
			List:  args[0],
			Raw:   strings.Join(args[1:], " "),
		})
		if err != nil {
			return describe(err)
		}
		return saveAndPrint(cmd, resp.Preview)
	})
}
