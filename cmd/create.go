package cmd

import (
	"github.com/spf13/cobra"

	"github.com/giantswarm/k8sobjects/pkg/client"
)

// newCreateCmd creates the Cobra command for creating a resource from a
// manifest file.
func newCreateCmd() *cobra.Command {
	var file string
	var output string

	cmd := &cobra.Command{
		Use:   "create -f FILE",
		Short: "Create a resource from a manifest file",
		Long: `Create submits the resource described by a YAML or JSON manifest to the
API server. The resource kind is taken from the manifest's kind field.
On success the created resource is fetched back and printed.`,
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
			if err := oc.Create(ctx); err != nil {
				return err
			}
			if err := oc.Get(ctx); err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), oc.Model(), output)
		},
	}

	cmd.Flags().StringVarP(&file, "filename", "f", "", "manifest file to create from")
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("filename")
	return cmd
}
