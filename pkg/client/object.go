package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/giantswarm/k8sobjects/internal/logging"
	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// Lifecycle operation names, used in errors, logs, and span attributes.
const (
	OpCreate = "create"
	OpGet    = "get"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
)

// ObjectClient encapsulates the CRUD protocol shared by every resource kind.
// It owns the collection URL for its kind within the session's namespace and
// holds the in-memory document model, which is replaced wholesale on each
// successful Get.
//
// Operations are synchronous, blocking, and single-shot: no retry, no
// backoff, no idempotency key. The resourceVersion and uid coordination
// fields are stripped before create and update respectively, so concurrent
// writers of the same remote resource resolve last-writer-wins.
type ObjectClient struct {
	config    *config.Config
	transport transport.Interface
	kind      Kind
	baseURL   string
	model     model.Object
}

// NewObjectClient builds a client for one resource kind. The name may be
// empty; it must be set before create, get, update, or delete are invoked.
func NewObjectClient(cfg *config.Config, tr transport.Interface, kind Kind, name string) (*ObjectClient, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if tr == nil {
		return nil, fmt.Errorf("transport must not be nil")
	}
	if kind.Path == "" || kind.New == nil {
		return nil, fmt.Errorf("kind %q is not addressable: missing path or model constructor", kind.Name)
	}

	m := kind.New()
	m.GetMetadata().Name = name
	m.GetMetadata().Namespace = cfg.Namespace

	return &ObjectClient{
		config:    cfg,
		transport: tr,
		kind:      kind,
		baseURL:   collectionURL(cfg, kind),
		model:     m,
	}, nil
}

// collectionURL derives the collection-level REST path for a kind within the
// session's namespace: /api/{v}/namespaces/{ns}/{path} for the core group,
// /apis/{group}/{v}/namespaces/{ns}/{path} for everything else.
func collectionURL(cfg *config.Config, kind Kind) string {
	if kind.Group == "" {
		version := kind.Version
		if version == "" {
			version = cfg.APIVersion
		}
		return fmt.Sprintf("/api/%s/namespaces/%s/%s", version, cfg.Namespace, kind.Path)
	}
	return fmt.Sprintf("/apis/%s/%s/namespaces/%s/%s", kind.Group, kind.Version, cfg.Namespace, kind.Path)
}

// Config returns the session configuration shared by this client.
func (c *ObjectClient) Config() *config.Config { return c.config }

// Transport returns the transport this client issues requests through.
func (c *ObjectClient) Transport() transport.Interface { return c.transport }

// ObjectKind returns the kind descriptor this client addresses.
func (c *ObjectClient) ObjectKind() Kind { return c.kind }

// BaseURL returns the collection-level REST path for this client.
func (c *ObjectClient) BaseURL() string { return c.baseURL }

// Name returns the resource name, read from the model metadata.
func (c *ObjectClient) Name() string { return c.model.GetMetadata().Name }

// SetName sets the resource name on the model metadata.
func (c *ObjectClient) SetName(name string) { c.model.GetMetadata().Name = name }

// Namespace returns the namespace this client is scoped to.
func (c *ObjectClient) Namespace() string { return c.config.Namespace }

// Model returns the held document model.
func (c *ObjectClient) Model() model.Object { return c.model }

// SetModel replaces the held document model. The document's kind must match
// this client's kind; anything else fails with a kind-mismatch error.
func (c *ObjectClient) SetModel(m model.Object) error {
	if m == nil {
		return fmt.Errorf("model must not be nil")
	}
	if m.GetKind() != c.kind.Name {
		return &model.KindMismatchError{Expected: c.kind.Name, Got: m.GetKind()}
	}
	c.model = m
	return nil
}

// Equal reports whether two object clients address the same remote resource:
// same namespace and same name. Document content is not compared, matching
// the control plane's identity rules.
func (c *ObjectClient) Equal(other *ObjectClient) bool {
	if other == nil {
		return false
	}
	return c.Namespace() == other.Namespace() && c.Name() == other.Name()
}

// String returns the serialized document, for debugging.
func (c *ObjectClient) String() string {
	data, err := model.Marshal(c.model)
	if err != nil {
		return fmt.Sprintf("%s/%s", c.kind.Name, c.Name())
	}
	return string(data)
}

// objectURL is the single-resource path for the current name.
func (c *ObjectClient) objectURL() string {
	return c.baseURL + "/" + c.Name()
}

// requireName guards operations that address a single resource.
func (c *ObjectClient) requireName(op string) error {
	if c.Name() == "" {
		return fmt.Errorf("%s %s: %w", op, c.kind.Name, ErrNameRequired)
	}
	return nil
}

// Create sends the serialized document to the collection URL. The
// resourceVersion is cleared first: it is server-assigned and must be absent
// on creation. On success the remote object may carry server-assigned fields
// the local model does not; callers wanting those should Get afterwards, as
// the typed wrappers do.
func (c *ObjectClient) Create(ctx context.Context) error {
	if err := c.requireName(OpCreate); err != nil {
		return err
	}

	c.model.GetMetadata().ResourceVersion = ""

	body, err := model.Marshal(c.model)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.kind.Name, err)
	}

	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   c.baseURL,
		Body:   body,
	})
	if err != nil {
		return newTransportError(OpCreate, c.kind.Name, err)
	}
	if !resp.Success() {
		return newAPIError(OpCreate, c.kind.Name, resp.StatusCode, resp.Body, writeSentinel(resp.StatusCode))
	}

	slog.Debug("created resource",
		logging.Operation(OpCreate),
		logging.ResourceType(c.kind.Name),
		logging.ResourceName(c.Name()),
		logging.Namespace(c.Namespace()))
	return nil
}

// GetDocument fetches the raw wire document for the named resource. Any
// non-success response classifies as not-found.
func (c *ObjectClient) GetDocument(ctx context.Context) ([]byte, error) {
	if err := c.requireName(OpGet); err != nil {
		return nil, err
	}

	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   c.objectURL(),
	})
	if err != nil {
		return nil, newTransportError(OpGet, c.kind.Name, err)
	}
	if !resp.Success() {
		return nil, newAPIError(OpGet, c.kind.Name, resp.StatusCode, resp.Body, ErrNotFound)
	}

	return resp.Body, nil
}

// Get fetches the resource and replaces the held model with a freshly
// decoded one. On failure the previously held model is left unchanged.
func (c *ObjectClient) Get(ctx context.Context) error {
	doc, err := c.GetDocument(ctx)
	if err != nil {
		return err
	}

	fresh := c.kind.New()
	if err := model.Decode(doc, fresh); err != nil {
		return fmt.Errorf("get %s %q: %w", c.kind.Name, c.Name(), err)
	}
	c.model = fresh

	slog.Debug("fetched resource",
		logging.Operation(OpGet),
		logging.ResourceType(c.kind.Name),
		logging.ResourceName(c.Name()),
		logging.Namespace(c.Namespace()))
	return nil
}

// Update replaces the remote document with the held model via PUT. The uid
// is cleared first: the control plane rejects updates carrying one under
// precondition checks.
func (c *ObjectClient) Update(ctx context.Context) error {
	if err := c.requireName(OpUpdate); err != nil {
		return err
	}

	c.model.GetMetadata().UID = ""

	body, err := model.Marshal(c.model)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.kind.Name, err)
	}

	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   c.objectURL(),
		Body:   body,
	})
	if err != nil {
		return newTransportError(OpUpdate, c.kind.Name, err)
	}
	if !resp.Success() {
		return newAPIError(OpUpdate, c.kind.Name, resp.StatusCode, resp.Body, updateSentinel(resp.StatusCode))
	}

	slog.Debug("updated resource",
		logging.Operation(OpUpdate),
		logging.ResourceType(c.kind.Name),
		logging.ResourceName(c.Name()),
		logging.Namespace(c.Namespace()))
	return nil
}

// Delete removes the remote resource, sending the standard delete-options
// payload.
func (c *ObjectClient) Delete(ctx context.Context) error {
	if err := c.requireName(OpDelete); err != nil {
		return err
	}

	body, err := model.MarshalDeleteOptions(model.NewDeleteOptions())
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.kind.Name, err)
	}

	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   c.objectURL(),
		Body:   body,
	})
	if err != nil {
		return newTransportError(OpDelete, c.kind.Name, err)
	}
	if !resp.Success() {
		return newAPIError(OpDelete, c.kind.Name, resp.StatusCode, resp.Body, deleteSentinel(resp.StatusCode))
	}

	slog.Debug("deleted resource",
		logging.Operation(OpDelete),
		logging.ResourceType(c.kind.Name),
		logging.ResourceName(c.Name()),
		logging.Namespace(c.Namespace()))
	return nil
}

// List fetches the collection and returns the raw items in server order.
// When pattern is non-empty, only items whose metadata.name contains it are
// returned; the server's ordering is preserved.
func (c *ObjectClient) List(ctx context.Context, pattern string) ([]json.RawMessage, error) {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   c.baseURL,
	})
	if err != nil {
		return nil, newTransportError(OpList, c.kind.Name, err)
	}
	if !resp.Success() {
		return nil, newAPIError(OpList, c.kind.Name, resp.StatusCode, resp.Body, writeSentinel(resp.StatusCode))
	}

	list, err := model.ParseList(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind.Name, err)
	}

	items := list.Items
	if pattern != "" {
		filtered := make([]json.RawMessage, 0, len(items))
		for _, item := range items {
			if strings.Contains(model.ItemName(item), pattern) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	slog.Debug("listed resources",
		logging.Operation(OpList),
		logging.ResourceType(c.kind.Name),
		logging.Namespace(c.Namespace()),
		slog.Int("count", len(items)))
	return items, nil
}
