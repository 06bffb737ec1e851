package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/giantswarm/k8sobjects/pkg/client"
)

// newGetCmd creates the Cobra command for fetching and listing resources.
func newGetCmd() *cobra.Command {
	var filter string
	var output string

	cmd := &cobra.Command{
		Use:   "get <kind> [name]",
		Short: "Get one resource or list resources of a kind",
		Long: `Get fetches a single resource by name, or lists all resources of a kind
in the configured namespace. Use "get all" to list every supported kind.

The --filter flag narrows lists to resources whose name contains the
given substring.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if args[0] == "all" {
				if len(args) > 1 {
					return fmt.Errorf("cannot combine \"all\" with a resource name")
				}
				return getAll(ctx, cmd, filter, output)
			}

			cfg, tr, cleanup, err := opts.newSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			kind, err := client.KindFor(args[0])
			if err != nil {
				return err
			}

			if len(args) == 2 {
				oc, err := client.NewObjectClient(cfg, tr, kind, args[1])
				if err != nil {
					return err
				}
				doc, err := oc.GetDocument(ctx)
				if err != nil {
					return err
				}
				return printDocument(cmd.OutOrStdout(), doc, output)
			}

			oc, err := client.NewObjectClient(cfg, tr, kind, "")
			if err != nil {
				return err
			}
			items, err := oc.List(ctx, filter)
			if err != nil {
				return err
			}
			return printItems(cmd.OutOrStdout(), items, output)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only list resources whose name contains this substring")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	return cmd
}

// getAll lists every registered kind concurrently and prints one section
// per kind in registry order.
func getAll(ctx context.Context, cmd *cobra.Command, filter, output string) error {
	cfg, tr, cleanup, err := opts.newSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	kinds := client.Kinds()
	results := make([][]json.RawMessage, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			oc, err := client.NewObjectClient(cfg, tr, kind, "")
			if err != nil {
				return err
			}
			items, err := oc.List(gctx, filter)
			if err != nil {
				return fmt.Errorf("listing %s: %w", kind.Path, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	title := cases.Title(language.English)
	w := cmd.OutOrStdout()
	for i, kind := range kinds {
		if len(results[i]) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", title.String(kind.Path))
		if err := printItems(w, results[i], output); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
