package client

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var setFieldCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set name, gender, race, class or background",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSetField,
}

func runSetField(cmd *cobra.Command, args []string) error {
	return withDraft(func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error {
		resp, err := client.SetField(ctx, &v1alpha1.SetFieldRequest{
			Draft: d,
			Field: args[0],
			Value: strings.Join(args[1:], " "),
		})
		if err != nil {
			return describe(err)
		}
		return saveAndPrint(cmd, resp.Preview)
	})
}
