// Package api defines the JSON-RPC surface of the treed tree daemon.
package api

import "github.com/treewire/go-treewire/desc"

const (
	MethodTreeCreate      = "tree/create"
	MethodTreeDescribe    = "tree/describe"
	MethodTreeReconcile   = "tree/reconcile"
	MethodTreeRender      = "tree/render"
	MethodTreeFingerprint = "tree/fingerprint"
	MethodTreeDelete      = "tree/delete"
	MethodTreeList        = "tree/list"
)

type CreateParams struct {
	Name        string     `json:"name"`
	Description *desc.Node `json:"description"`
}

type CreateResult struct {
	// Fingerprint is the hex form of the created tree's structural hash.
	Fingerprint string `json:"fingerprint"`
}

type DescribeParams struct {
	Name string `json:"name"`
}

type DescribeResult struct {
	Description *desc.Node `json:"description"`
}

type ReconcileParams struct {
	Name        string     `json:"name"`
	Description *desc.Node `json:"description"`
}

type ReconcileResult struct {
	// Outcome is patched-in-place or replaced.
	Outcome     string `json:"outcome"`
	Fingerprint string `json:"fingerprint"`
}

type RenderParams struct {
	Name string `json:"name"`
}

type RenderResult struct {
	Markup string `json:"markup"`
}

type FingerprintParams struct {
	Name string `json:"name"`
}

type FingerprintResult struct {
	Fingerprint string `json:"fingerprint"`
}

type DeleteParams struct {
	Name string `json:"name"`
}

type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

type ListResult struct {
	Names []string `json:"names"`
}
