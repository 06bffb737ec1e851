// Package cmd provides the command-line interface for k8sobjects.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - get: Fetches a resource by name or lists resources of a kind
//   - create: Creates a resource from a YAML or JSON manifest
//   - update: Replaces a resource from a YAML or JSON manifest
//   - delete: Deletes a resource by kind and name
//   - autoscale: Creates or updates a horizontal pod autoscaler
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// Command Structure:
//
//	k8sobjects get <kind> [name] [flags]   # Fetch or list resources
//	k8sobjects get all                     # List every supported kind
//	k8sobjects create -f manifest.yaml     # Create from a manifest
//	k8sobjects update -f manifest.yaml     # Update from a manifest
//	k8sobjects delete <kind> <name>        # Delete a resource
//	k8sobjects autoscale <name> [flags]    # Manage an autoscaler
//	k8sobjects version                     # Shows version information
//	k8sobjects self-update                 # Updates to latest release
//
// Connection settings are resolved from the persistent flags in this order:
// an explicit --host (with --token and the TLS flags), a kubeconfig file
// given by --kubeconfig or the KUBECONFIG environment variable, and finally
// the in-cluster service account when running inside a pod.
package cmd
