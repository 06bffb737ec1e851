// Package config holds the client session configuration: cluster endpoint,
// namespace, and authentication material. A Config is immutable once handed
// to a client and is shared by reference across all object clients of a
// session.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Default connection settings.
const (
	DefaultHost       = "https://localhost:6443"
	DefaultNamespace  = "default"
	DefaultAPIVersion = "v1"
	DefaultTimeout    = 30 * time.Second
)

// Service account paths - default Kubernetes in-cluster locations.
const (
	DefaultServiceAccountPath = "/var/run/secrets/kubernetes.io/serviceaccount"
	DefaultTokenPath          = DefaultServiceAccountPath + "/token"
	DefaultCACertPath         = DefaultServiceAccountPath + "/ca.crt"
	DefaultNamespacePath      = DefaultServiceAccountPath + "/namespace"
)

// Config describes how to reach and authenticate against the cluster
// control plane.
type Config struct {
	// Host is the base URL of the API server, including scheme and port.
	Host string

	// Namespace scopes every resource URL built from this config.
	Namespace string

	// APIVersion is the core-group API version used for URL construction.
	// Grouped resources carry their own group/version.
	APIVersion string

	// BearerToken is sent as the Authorization header when set.
	BearerToken string

	// TokenSource supplies short-lived tokens; it takes precedence over
	// BearerToken when both are set.
	TokenSource oauth2.TokenSource

	// Username and Password enable HTTP basic auth when no token is set.
	Username string
	Password string

	// CACertFile and CACertData configure the trust anchors for the API
	// server's certificate. CACertData wins when both are set.
	CACertFile string
	CACertData []byte

	// Client certificate material for mutual TLS.
	ClientCertFile string
	ClientKeyFile  string
	ClientCertData []byte
	ClientKeyData  []byte

	// InsecureSkipTLSVerify disables server certificate verification.
	InsecureSkipTLSVerify bool

	// Timeout bounds each HTTP call, including connection setup and body read.
	Timeout time.Duration
}

// DefaultConfig returns a Config pointing at a local API server with the
// default namespace.
func DefaultConfig() *Config {
	return &Config{
		Host:       DefaultHost,
		Namespace:  DefaultNamespace,
		APIVersion: DefaultAPIVersion,
		Timeout:    DefaultTimeout,
	}
}

// Validate checks the configuration for contradictions before a transport is
// built from it.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("host must not be empty")
	}
	u, err := url.Parse(c.Host)
	if err != nil {
		return fmt.Errorf("host %q is not a valid URL: %w", c.Host, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("host %q must use the http or https scheme", c.Host)
	}
	if c.Namespace == "" {
		return errors.New("namespace must not be empty")
	}
	certSet := c.ClientCertFile != "" || len(c.ClientCertData) > 0
	keySet := c.ClientKeyFile != "" || len(c.ClientKeyData) > 0
	if certSet != keySet {
		return errors.New("client certificate and key must be provided together")
	}
	return nil
}

// InClusterConfig builds a Config from the service account mounted into a pod,
// using the standard token, CA, and namespace paths.
func InClusterConfig() (*Config, error) {
	return inClusterConfig(DefaultServiceAccountPath, os.Getenv("KUBERNETES_SERVICE_HOST"), os.Getenv("KUBERNETES_SERVICE_PORT"))
}

func inClusterConfig(root, serviceHost, servicePort string) (*Config, error) {
	if serviceHost == "" || servicePort == "" {
		return nil, errors.New("not running in a cluster: KUBERNETES_SERVICE_HOST and KUBERNETES_SERVICE_PORT must be set")
	}

	token, err := os.ReadFile(filepath.Join(root, "token"))
	if err != nil {
		return nil, fmt.Errorf("failed to read service account token: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Host = "https://" + serviceHost + ":" + servicePort
	cfg.BearerToken = strings.TrimSpace(string(token))

	caPath := filepath.Join(root, "ca.crt")
	if _, err := os.Stat(caPath); err == nil {
		cfg.CACertFile = caPath
	}

	if ns, err := os.ReadFile(filepath.Join(root, "namespace")); err == nil {
		if trimmed := strings.TrimSpace(string(ns)); trimmed != "" {
			cfg.Namespace = trimmed
		}
	}

	return cfg, nil
}
