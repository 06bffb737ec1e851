package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	autoscalingv1 "k8s.io/api/autoscaling/v1"

	"github.com/giantswarm/k8sobjects/pkg/client"
)

// newAutoscaleCmd creates the Cobra command for managing horizontal pod
// autoscalers.
func newAutoscaleCmd() *cobra.Command {
	var target string
	var minReplicas int32
	var maxReplicas int32
	var cpuPercent int32

	cmd := &cobra.Command{
		Use:   "autoscale <name>",
		Short: "Create or update a horizontal pod autoscaler",
		Long: `Autoscale creates a horizontal pod autoscaler targeting a deployment, or
updates the replica bounds and CPU target of an existing one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, tr, cleanup, err := opts.newSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			hpa, err := client.NewHorizontalPodAutoscaler(cfg, tr, args[0])
			if err != nil {
				return err
			}

			err = hpa.Get(ctx)
			switch {
			case errors.Is(err, client.ErrNotFound):
				if target == "" {
					return fmt.Errorf("--target is required when creating an autoscaler")
				}
				hpa.SetScaleTargetRef(autoscalingv1.CrossVersionObjectReference{
					Kind:       "Deployment",
					Name:       target,
					APIVersion: "apps/v1",
				})
				hpa.SetMinReplicas(minReplicas)
				hpa.SetMaxReplicas(maxReplicas)
				hpa.SetTargetCPUUtilization(cpuPercent)
				if err := hpa.Create(ctx); err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				hpa.SetMinReplicas(minReplicas)
				hpa.SetMaxReplicas(maxReplicas)
				hpa.SetTargetCPUUtilization(cpuPercent)
				if err := hpa.Update(ctx); err != nil {
					return err
				}
			}

			doc := hpa.Document()
			min := int32(1)
			if m := hpa.MinReplicas(); m != nil {
				min = *m
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: replicas %d-%d, current %d\n",
				doc.Metadata.Name, min, hpa.MaxReplicas(), hpa.CurrentReplicas())
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "name of the deployment to scale")
	cmd.Flags().Int32Var(&minReplicas, "min", 1, "lower replica bound")
	cmd.Flags().Int32Var(&maxReplicas, "max", 10, "upper replica bound")
	cmd.Flags().Int32Var(&cpuPercent, "cpu-percent", 80, "target average CPU utilization")
	return cmd
}
