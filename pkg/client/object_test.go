package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// fakeTransport records requests and serves canned responses in order.
type fakeTransport struct {
	requests  []transport.Request
	responses []transport.Response
	err       error
}

func (f *fakeTransport) Do(_ context.Context, req transport.Request) (transport.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return transport.Response{}, f.err
	}
	if len(f.responses) == 0 {
		return transport.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func respond(statusCode int, body string) transport.Response {
	return transport.Response{StatusCode: statusCode, Body: []byte(body)}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Host = "https://api.test.example.com:6443"
	return cfg
}

func newTestClient(t *testing.T, kind Kind, name string, ft *fakeTransport) *ObjectClient {
	t.Helper()
	oc, err := NewObjectClient(testConfig(), ft, kind, name)
	require.NoError(t, err)
	return oc
}

func TestNewObjectClient(t *testing.T) {
	ft := &fakeTransport{}

	oc := newTestClient(t, KindStatefulSet, "db", ft)
	assert.Equal(t, "db", oc.Name())
	assert.Equal(t, "default", oc.Namespace())
	assert.Equal(t, "/apis/apps/v1/namespaces/default/statefulsets", oc.BaseURL())

	// Core group kinds use the unversioned-group path form.
	oc = newTestClient(t, KindService, "web", ft)
	assert.Equal(t, "/api/v1/namespaces/default/services", oc.BaseURL())
}

func TestNewObjectClientRejectsBadKind(t *testing.T) {
	_, err := NewObjectClient(testConfig(), &fakeTransport{}, Kind{Name: "Bogus"}, "x")
	require.Error(t, err)

	_, err = NewObjectClient(testConfig(), nil, KindPod, "x")
	require.Error(t, err)
}

func TestOperationsRequireName(t *testing.T) {
	// Without a name, mutating operations fail before the transport is
	// reached.
	ops := map[string]func(*ObjectClient) error{
		"create": func(oc *ObjectClient) error { return oc.Create(context.Background()) },
		"get":    func(oc *ObjectClient) error { return oc.Get(context.Background()) },
		"update": func(oc *ObjectClient) error { return oc.Update(context.Background()) },
		"delete": func(oc *ObjectClient) error { return oc.Delete(context.Background()) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			ft := &fakeTransport{}
			oc := newTestClient(t, KindDeployment, "", ft)

			err := op(oc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNameRequired)
			assert.Empty(t, ft.requests, "transport must not be reached")
		})
	}
}

func TestCreateStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		sentinel   error
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, sentinel: ErrUnauthorized},
		{name: "already exists", statusCode: http.StatusConflict, sentinel: ErrAlreadyExists},
		{name: "unprocessable entity", statusCode: http.StatusUnprocessableEntity, sentinel: ErrUnprocessableEntity},
		{name: "generic bad request", statusCode: http.StatusInternalServerError, sentinel: ErrBadRequest},
		{name: "forbidden falls into bad request", statusCode: http.StatusForbidden, sentinel: ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTransport{responses: []transport.Response{
				respond(tt.statusCode, `{"kind":"Status","message":"server says no"}`),
			}}
			oc := newTestClient(t, KindPod, "web", ft)

			err := oc.Create(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, "server says no", apiErr.Reason)
		})
	}
}

func TestCreateStripsResourceVersion(t *testing.T) {
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusCreated, `{}`),
	}}
	oc := newTestClient(t, KindPod, "web", ft)
	oc.Model().GetMetadata().ResourceVersion = "42"

	require.NoError(t, oc.Create(context.Background()))

	require.Len(t, ft.requests, 1)
	assert.Equal(t, http.MethodPost, ft.requests[0].Method)
	assert.Equal(t, "/api/v1/namespaces/default/pods", ft.requests[0].Path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &sent))
	meta := sent["metadata"].(map[string]any)
	assert.NotContains(t, meta, "resourceVersion")
}

func TestUpdateStripsUID(t *testing.T) {
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusOK, `{}`),
	}}
	oc := newTestClient(t, KindPod, "web", ft)
	oc.Model().GetMetadata().UID = "abc-123"

	require.NoError(t, oc.Update(context.Background()))

	require.Len(t, ft.requests, 1)
	assert.Equal(t, http.MethodPut, ft.requests[0].Method)
	assert.Equal(t, "/api/v1/namespaces/default/pods/web", ft.requests[0].Path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &sent))
	meta := sent["metadata"].(map[string]any)
	assert.NotContains(t, meta, "uid")
}

func TestUpdateStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		sentinel   error
	}{
		{name: "not found", statusCode: http.StatusNotFound, sentinel: ErrNotFound},
		{name: "unprocessable entity", statusCode: http.StatusUnprocessableEntity, sentinel: ErrUnprocessableEntity},
		{name: "generic bad request", statusCode: http.StatusBadGateway, sentinel: ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTransport{responses: []transport.Response{
				respond(tt.statusCode, `{"kind":"Status","message":"nope"}`),
			}}
			oc := newTestClient(t, KindDeployment, "web", ft)

			err := oc.Update(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestDeleteSendsDeleteOptions(t *testing.T) {
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusOK, `{}`),
	}}
	oc := newTestClient(t, KindService, "web", ft)

	require.NoError(t, oc.Delete(context.Background()))

	require.Len(t, ft.requests, 1)
	assert.Equal(t, http.MethodDelete, ft.requests[0].Method)
	assert.Equal(t, "/api/v1/namespaces/default/services/web", ft.requests[0].Path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &sent))
	assert.Equal(t, "DeleteOptions", sent["kind"])
}

func TestDeleteStatusClassification(t *testing.T) {
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusNotFound, `{"kind":"Status","message":"gone"}`),
	}}
	oc := newTestClient(t, KindService, "web", ft)

	err := oc.Delete(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	ft = &fakeTransport{responses: []transport.Response{
		respond(http.StatusServiceUnavailable, `{}`),
	}}
	oc = newTestClient(t, KindService, "web", ft)

	err = oc.Delete(context.Background())
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestGetReplacesModel(t *testing.T) {
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusOK, `{"kind":"Pod","apiVersion":"v1","metadata":{"name":"web","uid":"u-1","resourceVersion":"7"}}`),
	}}
	oc := newTestClient(t, KindPod, "web", ft)

	require.NoError(t, oc.Get(context.Background()))
	assert.Equal(t, "u-1", string(oc.Model().GetMetadata().UID))
	assert.Equal(t, "7", oc.Model().GetMetadata().ResourceVersion)
}

func TestGetNotFoundLeavesModelUnchanged(t *testing.T) {
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusNotFound, `{"kind":"Status","message":"pods \"web\" not found"}`),
	}}
	oc := newTestClient(t, KindPod, "web", ft)
	oc.Model().GetMetadata().Labels = map[string]string{"app": "web"}

	err := oc.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// The held model stays exactly as it was.
	assert.Equal(t, map[string]string{"app": "web"}, oc.Model().GetMetadata().Labels)
	assert.Equal(t, "web", oc.Name())
}

func TestGetRejectsForeignKind(t *testing.T) {
	// A document of the wrong kind must not replace the held model.
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusOK, `{"kind":"Service","apiVersion":"v1","metadata":{"name":"web"}}`),
	}}
	oc := newTestClient(t, KindPod, "web", ft)

	err := oc.Get(context.Background())
	require.Error(t, err)
}

func TestListReturnsServerOrder(t *testing.T) {
	body := `{"kind":"PodList","apiVersion":"v1","items":[
		{"metadata":{"name":"zeta"}},
		{"metadata":{"name":"alpha"}},
		{"metadata":{"name":"zeta-2"}}
	]}`
	ft := &fakeTransport{responses: []transport.Response{respond(http.StatusOK, body)}}
	oc := newTestClient(t, KindPod, "", ft)

	items, err := oc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	// No client-side sort: the server's ordering survives.
	names := make([]string, 0, len(items))
	for _, item := range items {
		var probe struct {
			Metadata struct {
				Name string `json:"name"`
			} `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal(item, &probe))
		names = append(names, probe.Metadata.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "zeta-2"}, names)
}

func TestListSubstringFilter(t *testing.T) {
	body := `{"kind":"PodList","apiVersion":"v1","items":[
		{"metadata":{"name":"web-1"}},
		{"metadata":{"name":"db-1"}},
		{"metadata":{"name":"web-2"}}
	]}`
	ft := &fakeTransport{responses: []transport.Response{respond(http.StatusOK, body)}}
	oc := newTestClient(t, KindPod, "", ft)

	items, err := oc.List(context.Background(), "web")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Contains(t, string(items[0]), "web-1")
	assert.Contains(t, string(items[1]), "web-2")
}

func TestListStatusClassification(t *testing.T) {
	ft := &fakeTransport{responses: []transport.Response{
		respond(http.StatusUnauthorized, `{"kind":"Status","message":"credentials rejected"}`),
	}}
	oc := newTestClient(t, KindPod, "", ft)

	_, err := oc.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransportFailureClassifiesAsBadRequest(t *testing.T) {
	ft := &fakeTransport{err: errors.New("dial tcp: connection refused")}
	oc := newTestClient(t, KindPod, "web", ft)

	err := oc.Create(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.StatusCode)
	assert.Contains(t, apiErr.Reason, "connection refused")
}

func TestEqual(t *testing.T) {
	ft := &fakeTransport{}

	cfgA := testConfig()
	cfgB := testConfig()
	cfgB.Namespace = "other"

	a1, err := NewObjectClient(cfgA, ft, KindPod, "web")
	require.NoError(t, err)
	a2, err := NewObjectClient(cfgA, ft, KindPod, "web")
	require.NoError(t, err)
	a3, err := NewObjectClient(cfgA, ft, KindPod, "db")
	require.NoError(t, err)
	b1, err := NewObjectClient(cfgB, ft, KindPod, "web")
	require.NoError(t, err)

	// Same namespace and name: equal, regardless of document content.
	a2.Model().GetMetadata().Labels = map[string]string{"app": "web"}
	assert.True(t, a1.Equal(a2))

	assert.False(t, a1.Equal(a3), "different name")
	assert.False(t, a1.Equal(b1), "different namespace")
	assert.False(t, a1.Equal(nil))
}

func TestSetModelEnforcesKind(t *testing.T) {
	oc := newTestClient(t, KindPod, "web", &fakeTransport{})

	err := oc.SetModel(KindService.New())
	require.Error(t, err)

	require.NoError(t, oc.SetModel(KindPod.New()))
	assert.Error(t, oc.SetModel(nil))
}
