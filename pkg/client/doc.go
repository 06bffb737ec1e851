// Package client implements the client-side object model for the cluster
// control plane: one generic lifecycle client (create, get, update, delete,
// list over HTTP with uniform status classification) parameterized by a Kind
// descriptor, plus thin typed wrappers per resource kind.
//
// The wrappers add no protocol of their own. Each fixes the Kind, re-fetches
// after create and update so the in-memory document reflects server-assigned
// fields, and projects named spec/status fields through typed accessors.
//
// This layer performs no retries, no caching, and no coordination between
// clients addressing the same remote resource; the control plane's own
// optimistic-concurrency fields are deliberately stripped before writes.
package client
