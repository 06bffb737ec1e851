package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/k8sobjects/pkg/client"
)

// newDeleteCmd creates the Cobra command for deleting a resource.
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <name>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, err := client.KindFor(args[0])
			if err != nil {
				return err
			}

			cfg, tr, cleanup, err := opts.newSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			oc, err := client.NewObjectClient(cfg, tr, kind, args[1])
			if err != nil {
				return err
			}
			if err := oc.Delete(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %q deleted\n", kind.Name, args[1])
			return nil
		},
	}
}
