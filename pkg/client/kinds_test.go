package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFor(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{alias: "hpa", want: "HorizontalPodAutoscaler"},
		{alias: "HorizontalPodAutoscaler", want: "HorizontalPodAutoscaler"},
		{alias: "sts", want: "StatefulSet"},
		{alias: "statefulsets", want: "StatefulSet"},
		{alias: "deploy", want: "Deployment"},
		{alias: "rc", want: "ReplicationController"},
		{alias: "svc", want: "Service"},
		{alias: "po", want: "Pod"},
		{alias: "secrets", want: "Secret"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			k, err := KindFor(tt.alias)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k.Name)
		})
	}
}

func TestKindForUnknown(t *testing.T) {
	_, err := KindFor("volumeclaim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource kind")
	assert.Contains(t, err.Error(), "StatefulSet")
}

func TestKindAPIVersion(t *testing.T) {
	assert.Equal(t, "autoscaling/v1", KindHorizontalPodAutoscaler.APIVersion())
	assert.Equal(t, "apps/v1", KindStatefulSet.APIVersion())
	assert.Equal(t, "v1", KindPod.APIVersion())
}

func TestKindsComplete(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 7)

	for _, k := range kinds {
		assert.NotEmpty(t, k.Path, k.Name)
		require.NotNil(t, k.New, k.Name)
		assert.Equal(t, k.Name, k.New().GetKind())
		assert.Equal(t, k.APIVersion(), k.New().GetAPIVersion())
	}
}
