package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHost(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{
			name:     "empty host",
			host:     "",
			expected: "<empty>",
		},
		{
			name:     "hostname without IP",
			host:     "https://api.cluster.example.com:6443",
			expected: "https://api.cluster.example.com:6443",
		},
		{
			name:     "IP address URL",
			host:     "https://192.168.1.100:6443",
			expected: "https://<redacted-ip>:6443",
		},
		{
			name:     "bare IP address",
			host:     "192.168.1.100",
			expected: "<redacted-ip>",
		},
		{
			name:     "IP with port no scheme",
			host:     "10.0.0.1:6443",
			expected: "<redacted-ip>:6443",
		},
		{
			name:     "IPv6 address URL with brackets",
			host:     "https://[2001:db8::1]:6443",
			expected: "https://<redacted-ip>:6443",
		},
		{
			name:     "bare IPv6 address",
			host:     "2001:db8::1",
			expected: "<redacted-ip>",
		},
		{
			name:     "full IPv6 address",
			host:     "2001:0db8:85a3:0000:0000:8a2e:0370:7334",
			expected: "<redacted-ip>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeHost(tt.host))
		})
	}
}

func TestSanitizeToken(t *testing.T) {
	assert.Equal(t, "<empty>", SanitizeToken(""))
	assert.Equal(t, "[token:10 chars]", SanitizeToken("abcdefghij"))
}

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{name: "operation", attr: Operation("create"), wantKey: KeyOperation, wantVal: "create"},
		{name: "namespace", attr: Namespace("default"), wantKey: KeyNamespace, wantVal: "default"},
		{name: "resource type", attr: ResourceType("StatefulSet"), wantKey: KeyResourceType, wantVal: "StatefulSet"},
		{name: "resource name", attr: ResourceName("web"), wantKey: KeyResourceName, wantVal: "web"},
		{name: "status", attr: Status(StatusSuccess), wantKey: KeyStatus, wantVal: "success"},
		{name: "nil error", attr: Err(nil), wantKey: KeyError, wantVal: ""},
		{name: "error", attr: Err(errors.New("boom")), wantKey: KeyError, wantVal: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKey, tt.attr.Key)
			assert.Equal(t, tt.wantVal, tt.attr.Value.String())
		})
	}
}

func TestSanitizedErr(t *testing.T) {
	attr := SanitizedErr(errors.New("dial tcp 192.168.1.100:6443: connection refused"))
	assert.Equal(t, KeyError, attr.Key)
	assert.NotContains(t, attr.Value.String(), "192.168.1.100")
	assert.Contains(t, attr.Value.String(), "<redacted-ip>")

	assert.Equal(t, "", SanitizedErr(nil).Value.String())
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithOperation(logger, "delete").Info("removed object")

	out := buf.String()
	assert.Contains(t, out, "operation=delete")
	assert.Contains(t, out, "removed object")
}
