package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/giantswarm/k8sobjects/pkg/config"
)

// httpTransport is the production transport. It holds one http.Client per
// session, configured from the Config's TLS and timeout settings.
type httpTransport struct {
	base   *url.URL
	client *http.Client
	cfg    *config.Config
}

// New builds the HTTP transport for a client session.
func New(cfg *config.Config) (Interface, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	base, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to parse host %q: %w", cfg.Host, err)
	}

	tlsConfig, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &httpTransport{
		base: base,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
				Proxy:           http.ProxyFromEnvironment,
			},
		},
		cfg: cfg,
	}, nil
}

// buildTLSConfig assembles the TLS settings from the configured CA and client
// certificate material. Data fields win over file fields.
func buildTLSConfig(cfg *config.Config) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.InsecureSkipTLSVerify,
	}

	caData := cfg.CACertData
	if len(caData) == 0 && cfg.CACertFile != "" {
		data, err := os.ReadFile(cfg.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate %q: %w", cfg.CACertFile, err)
		}
		caData = data
	}
	if len(caData) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caData) {
			return nil, fmt.Errorf("no certificates found in CA bundle")
		}
		tlsConfig.RootCAs = pool
	}

	certData, keyData := cfg.ClientCertData, cfg.ClientKeyData
	if len(certData) == 0 && cfg.ClientCertFile != "" {
		data, err := os.ReadFile(cfg.ClientCertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read client certificate %q: %w", cfg.ClientCertFile, err)
		}
		certData = data
	}
	if len(keyData) == 0 && cfg.ClientKeyFile != "" {
		data, err := os.ReadFile(cfg.ClientKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read client key %q: %w", cfg.ClientKeyFile, err)
		}
		keyData = data
	}
	if len(certData) > 0 {
		cert, err := tls.X509KeyPair(certData, keyData)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate pair: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// Do implements Interface.
func (t *httpTransport) Do(ctx context.Context, req Request) (Response, error) {
	u := *t.base
	u.Path = strings.TrimSuffix(u.Path, "/") + req.Path
	if req.Query != nil {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to build %s request for %s: %w", req.Method, req.Path, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if err := t.setAuthHeader(httpReq); err != nil {
		return Response{}, err
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("request to %s failed: %w", req.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response body from %s: %w", req.Path, err)
	}

	return Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// setAuthHeader applies the session's authentication material. A TokenSource
// takes precedence over a static token, which takes precedence over basic auth.
func (t *httpTransport) setAuthHeader(req *http.Request) error {
	switch {
	case t.cfg.TokenSource != nil:
		token, err := t.cfg.TokenSource.Token()
		if err != nil {
			return fmt.Errorf("failed to obtain token: %w", err)
		}
		token.SetAuthHeader(req)
	case t.cfg.BearerToken != "":
		req.Header.Set("Authorization", "Bearer "+t.cfg.BearerToken)
	case t.cfg.Username != "":
		req.SetBasicAuth(t.cfg.Username, t.cfg.Password)
	}
	return nil
}
