package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// writeTestKubeconfig writes a kubeconfig with two contexts and returns its path.
func writeTestKubeconfig(t *testing.T) string {
	t.Helper()

	kc := api.NewConfig()
	kc.Clusters["test-cluster"] = &api.Cluster{
		Server:                   "https://test.example.com:6443",
		CertificateAuthorityData: []byte("ca-data"),
	}
	kc.AuthInfos["test-user"] = &api.AuthInfo{
		Token: "test-token",
	}
	kc.Contexts["test-context"] = &api.Context{
		Cluster:   "test-cluster",
		AuthInfo:  "test-user",
		Namespace: "test-namespace",
	}
	kc.Contexts["another-context"] = &api.Context{
		Cluster:  "test-cluster",
		AuthInfo: "test-user",
	}
	kc.CurrentContext = "test-context"

	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, clientcmd.WriteToFile(*kc, path))
	return path
}

func TestFromKubeconfig(t *testing.T) {
	path := writeTestKubeconfig(t)

	cfg, err := FromKubeconfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, "https://test.example.com:6443", cfg.Host)
	assert.Equal(t, "test-namespace", cfg.Namespace)
	assert.Equal(t, "test-token", cfg.BearerToken)
	assert.Equal(t, []byte("ca-data"), cfg.CACertData)
	assert.NoError(t, cfg.Validate())
}

func TestFromKubeconfigWithContextOverride(t *testing.T) {
	path := writeTestKubeconfig(t)

	cfg, err := FromKubeconfig(path, "another-context")
	require.NoError(t, err)

	// The second context declares no namespace; the default applies.
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
}

func TestFromKubeconfigUnknownContext(t *testing.T) {
	path := writeTestKubeconfig(t)

	_, err := FromKubeconfig(path, "no-such-context")
	require.Error(t, err)
}

func TestFromKubeconfigMissingFile(t *testing.T) {
	// Pin loading to an empty location so the developer's own kubeconfig
	// cannot leak into the test.
	t.Setenv("KUBECONFIG", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("HOME", t.TempDir())

	_, err := FromKubeconfig("", "")
	require.Error(t, err)
}
