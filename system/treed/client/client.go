// Package client is a thin typed client for the treed daemon.
package client

import (
	"context"
	"net"

	"go.lsp.dev/jsonrpc2"

	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/system/treed/api"
)

type Client struct {
	conn jsonrpc2.Conn
}

// Dial connects to a treed daemon over TCP.
func Dial(ctx context.Context, addr string) (*Client, error) {
	netConn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	conn := jsonrpc2.NewConn(jsonrpc2.NewRawStream(netConn))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Create(ctx context.Context, name string, d *desc.Node) (*api.CreateResult, error) {
	res := &api.CreateResult{}
	_, err := c.conn.Call(ctx, api.MethodTreeCreate, &api.CreateParams{Name: name, Description: d}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Describe(ctx context.Context, name string) (*desc.Node, error) {
	res := &api.DescribeResult{}
	_, err := c.conn.Call(ctx, api.MethodTreeDescribe, &api.DescribeParams{Name: name}, res)
	if err != nil {
		return nil, err
	}
	return res.Description, nil
}

func (c *Client) Reconcile(ctx context.Context, name string, d *desc.Node) (*api.ReconcileResult, error) {
	res := &api.ReconcileResult{}
	_, err := c.conn.Call(ctx, api.MethodTreeReconcile, &api.ReconcileParams{Name: name, Description: d}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Render(ctx context.Context, name string) (string, error) {
	res := &api.RenderResult{}
	_, err := c.conn.Call(ctx, api.MethodTreeRender, &api.RenderParams{Name: name}, res)
	if err != nil {
		return "", err
	}
	return res.Markup, nil
}

func (c *Client) Fingerprint(ctx context.Context, name string) (string, error) {
	res := &api.FingerprintResult{}
	_, err := c.conn.Call(ctx, api.MethodTreeFingerprint, &api.FingerprintParams{Name: name}, res)
	if err != nil {
		return "", err
	}
	return res.Fingerprint, nil
}

func (c *Client) Delete(ctx context.Context, name string) (bool, error) {
	res := &api.DeleteResult{}
	_, err := c.conn.Call(ctx, api.MethodTreeDelete, &api.DeleteParams{Name: name}, res)
	if err != nil {
		return false, err
	}
	return res.Deleted, nil
}

func (c *Client) List(ctx context.Context) ([]string, error) {
	res := &api.ListResult{}
	_, err := c.conn.Call(ctx, api.MethodTreeList, struct{}{}, res)
	if err != nil {
		return nil, err
	}
	return res.Names, nil
}
