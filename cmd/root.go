package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/giantswarm/k8sobjects/internal/instrumentation"
	"github.com/giantswarm/k8sobjects/internal/logging"
	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	kubeconfig  string
	kubeContext string

	host      string
	namespace string
	token     string

	caCert     string
	clientCert string
	clientKey  string
	insecure   bool

	timeout   time.Duration
	logLevel  string
	telemetry bool
}

var opts = &globalOptions{}

// rootCmd represents the base command for the k8sobjects application.
var rootCmd = &cobra.Command{
	Use:   "k8sobjects",
	Short: "Manage Kubernetes API objects",
	Long: `k8sobjects is a command line client for Kubernetes API objects. It talks
to the API server directly over its REST interface and supports getting,
creating, updating and deleting resources, as well as managing horizontal
pod autoscalers.

Connection settings come from --host and the related flags, from a
kubeconfig file (--kubeconfig/--context), or from the in-cluster service
account when running inside a pod.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(opts.logLevel)
	},
}

// SetVersion sets the version for the root command.
// It is called from the main package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "k8sobjects version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.kubeconfig, "kubeconfig", "", "path to a kubeconfig file")
	pf.StringVar(&opts.kubeContext, "context", "", "kubeconfig context to use")
	pf.StringVar(&opts.host, "host", "", "API server URL, e.g. https://host:6443")
	pf.StringVarP(&opts.namespace, "namespace", "n", "", "namespace to operate in")
	pf.StringVar(&opts.token, "token", "", "bearer token for authentication")
	pf.StringVar(&opts.caCert, "ca-cert", "", "path to the CA certificate file")
	pf.StringVar(&opts.clientCert, "client-cert", "", "path to a client certificate file")
	pf.StringVar(&opts.clientKey, "client-key", "", "path to a client key file")
	pf.BoolVar(&opts.insecure, "insecure-skip-tls-verify", false, "skip server certificate verification")
	pf.DurationVar(&opts.timeout, "timeout", 0, "request timeout, e.g. 30s")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.BoolVar(&opts.telemetry, "telemetry", false, "enable OpenTelemetry metrics and tracing")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newAutoscaleCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// clientConfig resolves the client configuration for this invocation.
// Precedence: explicit --host flags, then kubeconfig, then in-cluster.
func (o *globalOptions) clientConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	switch {
	case o.host != "":
		cfg = config.DefaultConfig()
		cfg.Host = o.host
	case o.kubeconfig != "" || os.Getenv("KUBECONFIG") != "":
		path := o.kubeconfig
		if path == "" {
			path = os.Getenv("KUBECONFIG")
		}
		cfg, err = config.FromKubeconfig(path, o.kubeContext)
		if err != nil {
			return nil, err
		}
	default:
		cfg, err = config.InClusterConfig()
		if err != nil {
			return nil, err
		}
	}

	if o.namespace != "" {
		cfg.Namespace = o.namespace
	}
	if o.token != "" {
		cfg.BearerToken = o.token
	}
	if o.caCert != "" {
		cfg.CACertFile = o.caCert
	}
	if o.clientCert != "" {
		cfg.ClientCertFile = o.clientCert
	}
	if o.clientKey != "" {
		cfg.ClientKeyFile = o.clientKey
	}
	if o.insecure {
		cfg.InsecureSkipTLSVerify = true
	}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}
	return cfg, nil
}

// newSession builds the configuration and transport for one command run.
// The returned cleanup flushes telemetry and must always be called.
func (o *globalOptions) newSession(ctx context.Context) (*config.Config, transport.Interface, func(), error) {
	cfg, err := o.clientConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	tr, err := transport.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	icfg := instrumentation.DefaultConfig()
	icfg.Enabled = icfg.Enabled || o.telemetry
	icfg.ServiceVersion = rootCmd.Version

	provider, err := instrumentation.Setup(ctx, icfg)
	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}

	if provider.Enabled() {
		return cfg, instrumentation.NewMiddleware(tr, provider), cleanup, nil
	}
	return cfg, tr, cleanup, nil
}
