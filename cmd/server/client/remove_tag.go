package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var removeTagCmd = &cobra.Command{
	Use:     "rm <list> <index>",
	Aliases: []string{"remove"},
	Short:   "Remove a tag by its 0 based index",
	Args:    cobra.ExactArgs(2),
	RunE:    runRemoveTag,
}

func runRemoveTag(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("index %q is not a number", args[1])
	}
	return withDraft(func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error {
		resp, err := client.RemoveTag(ctx, &v1alpha1.RemoveTagRequest{Draft: d, List: args[0], Index: index})
		if err != nil {
			return describe(err)
		}
		return saveAndPrint(cmd, resp.Preview)
	})
}
