package config

import (
	"fmt"

	"k8s.io/client-go/tools/clientcmd"
)

// FromKubeconfig builds a Config from a kubeconfig file. An empty path uses
// the standard loading rules (KUBECONFIG, then ~/.kube/config); an empty
// context name uses the file's current context. Only connection and
// authentication material is extracted - this client keeps its own REST
// layer and does not construct a client-go client.
func FromKubeconfig(path, contextName string) (*Config, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path != "" {
		rules.ExplicitPath = path
	}

	overrides := &clientcmd.ConfigOverrides{}
	if contextName != "" {
		overrides.CurrentContext = contextName
	}

	loader := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides)

	restConfig, err := loader.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	namespace, _, err := loader.Namespace()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve kubeconfig namespace: %w", err)
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	cfg := DefaultConfig()
	cfg.Host = restConfig.Host
	cfg.Namespace = namespace
	cfg.BearerToken = restConfig.BearerToken
	cfg.Username = restConfig.Username
	cfg.Password = restConfig.Password
	cfg.CACertFile = restConfig.TLSClientConfig.CAFile
	cfg.CACertData = restConfig.TLSClientConfig.CAData
	cfg.ClientCertFile = restConfig.TLSClientConfig.CertFile
	cfg.ClientCertData = restConfig.TLSClientConfig.CertData
	cfg.ClientKeyFile = restConfig.TLSClientConfig.KeyFile
	cfg.ClientKeyData = restConfig.TLSClientConfig.KeyData
	cfg.InsecureSkipTLSVerify = restConfig.TLSClientConfig.Insecure

	if restConfig.Timeout > 0 {
		cfg.Timeout = restConfig.Timeout
	}

	return cfg, nil
}
