package cmd

import (
	"github.com/spf13/cobra"

	"github.com/giantswarm/k8sobjects/pkg/client"
)

// newUpdateCmd creates the Cobra command for updating a resource from a
// manifest file.
func newUpdateCmd() *cobra.Command {
	var file string
	var output string

	cmd := &cobra.Command{
		Use:   "update -f FILE",
		Short: "Update a resource from a manifest file",
		Long: `Update replaces the resource described by a YAML or JSON manifest on the
API server. The resource kind and name are taken from the manifest.
On success the updated resource is fetched back and printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, obj, err := loadManifest(file)
			if err != nil {
				return err
			}

			cfg, tr, cleanup, err := opts.newSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			oc, err := client.NewObjectClient(cfg, tr, kind, obj.GetMetadata().Name)
			if err != nil {
				return err
			}
			if err := oc.SetModel(obj); err != nil {
				return err
			}
			if err := oc.Update(ctx); err != nil {
				return err
			}
			if err := oc.Get(ctx); err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), oc.Model(), output)
		},
	}

	cmd.Flags().StringVarP(&file, "filename", "f", "", "manifest file to update from")
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("filename")
	return cmd
}
