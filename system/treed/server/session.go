package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"go.lsp.dev/jsonrpc2"

	treewire "github.com/treewire/go-treewire"
	"github.com/treewire/go-treewire/debug"
	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/shorthand"
	"github.com/treewire/go-treewire/system/treed/api"
)

// Session serves one client connection's JSON-RPC traffic against the
// shared store.
type Session struct {
	ID    string
	store *Store
	log   *slog.Logger

	conn      jsonrpc2.Conn
	closeOnce sync.Once
}

func NewSession(id string, conn net.Conn, store *Store, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		ID:    id,
		store: store,
		log:   log.With("session", id),
		conn:  jsonrpc2.NewConn(jsonrpc2.NewRawStream(conn)),
	}
}

// Run processes requests until the connection closes.
func (s *Session) Run(ctx context.Context) error {
	s.conn.Go(ctx, s.handle)
	<-s.conn.Done()
	return s.conn.Err()
}

func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
	return nil
}

func (s *Session) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("rpc %s %s\n", s.ID, req.Method())
	}
	s.log.Debug("request", "method", req.Method())
	switch req.Method() {
	case api.MethodTreeCreate:
		params := &api.CreateParams{}
		if err := unmarshalParams(req, params); err != nil {
			return reply(ctx, nil, err)
		}
		n, err := s.store.Create(params.Name, params.Description)
		if err != nil {
			return reply(ctx, nil, err)
		}
		// fingerprint the stored tree, not the input: materialization
		// normalizes shapes (an element always has an attribute collection)
		return reply(ctx, &api.CreateResult{
			Fingerprint: fingerprint(treewire.Describe(n)),
		}, nil)

	case api.MethodTreeDescribe:
		params := &api.DescribeParams{}
		if err := unmarshalParams(req, params); err != nil {
			return reply(ctx, nil, err)
		}
		d, err := s.store.Describe(params.Name)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, &api.DescribeResult{Description: d}, nil)

	case api.MethodTreeReconcile:
		params := &api.ReconcileParams{}
		if err := unmarshalParams(req, params); err != nil {
			return reply(ctx, nil, err)
		}
		outcome, after, err := s.store.Reconcile(params.Name, params.Description)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, &api.ReconcileResult{
			Outcome:     outcome.String(),
			Fingerprint: fingerprint(after),
		}, nil)

	case api.MethodTreeRender:
		params := &api.RenderParams{}
		if err := unmarshalParams(req, params); err != nil {
			return reply(ctx, nil, err)
		}
		d, err := s.store.Describe(params.Name)
		if err != nil {
			return reply(ctx, nil, err)
		}
		sh, ok := shorthand.FromDescription(d)
		if !ok {
			return reply(ctx, nil, fmt.Errorf("tree %q has no shorthand form", params.Name))
		}
		return reply(ctx, &api.RenderResult{Markup: shorthand.Render(sh)}, nil)

	case api.MethodTreeFingerprint:
		params := &api.FingerprintParams{}
		if err := unmarshalParams(req, params); err != nil {
			return reply(ctx, nil, err)
		}
		d, err := s.store.Describe(params.Name)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, &api.FingerprintResult{Fingerprint: fingerprint(d)}, nil)

	case api.MethodTreeDelete:
		params := &api.DeleteParams{}
		if err := unmarshalParams(req, params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, &api.DeleteResult{Deleted: s.store.Delete(params.Name)}, nil)

	case api.MethodTreeList:
		return reply(ctx, &api.ListResult{Names: s.store.Names()}, nil)
	}
	return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
}

func unmarshalParams(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	return nil
}

func fingerprint(d *desc.Node) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%016x", d.Hash())
}
