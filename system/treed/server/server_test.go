package server

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/system/treed/client"
)

func startServer(t *testing.T) (*Server, *client.Client) {
	t.Helper()
	srv := New(&Spec{
		Addr: "127.0.0.1:0",
		Log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err := srv.StartTCP(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { srv.StopTCP() })

	// the dial context stays live for the whole session; it drives the
	// client's read loop, not just connection setup
	c, err := client.Dial(context.Background(), srv.TCPAddr())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return srv, c
}

func TestDaemonRoundTrip(t *testing.T) {
	_, c := startServer(t)
	ctx := context.Background()

	d := desc.Element("p", desc.AttrsFrom("class", "x"), desc.Text("hi"))
	created, err := c.Create(ctx, "page", d)
	if err != nil {
		t.Fatal(err)
	}
	if created.Fingerprint == "" {
		t.Error("empty fingerprint")
	}

	back, err := c.Describe(ctx, "page")
	if err != nil {
		t.Fatal(err)
	}
	if back.Name != "p" || len(back.Children) != 1 {
		t.Errorf("described %+v", back)
	}

	markup, err := c.Render(ctx, "page")
	if err != nil {
		t.Fatal(err)
	}
	if markup != `<p class="x">hi</p>` {
		t.Errorf("markup = %q", markup)
	}

	res, err := c.Reconcile(ctx, "page",
		desc.Element("p", desc.AttrsFrom("class", "y"), desc.Text("ho")))
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != "patched-in-place" {
		t.Errorf("outcome = %q", res.Outcome)
	}
	if res.Fingerprint == created.Fingerprint {
		t.Error("fingerprint unchanged after reconcile")
	}

	fp, err := c.Fingerprint(ctx, "page")
	if err != nil {
		t.Fatal(err)
	}
	if fp != res.Fingerprint {
		t.Errorf("fingerprint %q != reconcile fingerprint %q", fp, res.Fingerprint)
	}

	names, err := c.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "page" {
		t.Errorf("names = %v", names)
	}

	deleted, err := c.Delete(ctx, "page")
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Error("delete reported false")
	}
	if _, err := c.Describe(ctx, "page"); err == nil {
		t.Error("described a deleted tree")
	}
}

func TestCreateFingerprintMatchesStoredTree(t *testing.T) {
	_, c := startServer(t)
	ctx := context.Background()

	// nil attributes on the input: the materialized element normalizes to
	// an empty attribute collection, and the fingerprint must reflect the
	// stored tree, not the raw input
	created, err := c.Create(ctx, "plain", desc.Element("p", nil, desc.Text("hi")))
	if err != nil {
		t.Fatal(err)
	}
	fp, err := c.Fingerprint(ctx, "plain")
	if err != nil {
		t.Fatal(err)
	}
	if fp != created.Fingerprint {
		t.Errorf("create fingerprint %q != fingerprint of untouched tree %q",
			created.Fingerprint, fp)
	}
}

func TestDaemonErrors(t *testing.T) {
	_, c := startServer(t)
	ctx := context.Background()

	if _, err := c.Describe(ctx, "nope"); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("err = %v", err)
	}
	if _, err := c.Create(ctx, "bad", &desc.Node{Kind: desc.ElementKind}); err == nil {
		t.Error("unmaterializable description created")
	}
}
