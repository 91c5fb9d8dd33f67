package server

import (
	"testing"

	treewire "github.com/treewire/go-treewire"
	"github.com/treewire/go-treewire/desc"
)

func TestStoreCreateDescribe(t *testing.T) {
	s := NewStore()
	d := desc.Element("p", desc.AttrsFrom("class", "x"), desc.Text("hi"))
	if _, err := s.Create("a", d); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("a", d); err == nil {
		t.Error("duplicate name accepted")
	}
	back, err := s.Describe("a")
	if err != nil {
		t.Fatal(err)
	}
	if back.Name != "p" || len(back.Children) != 1 {
		t.Errorf("described %+v", back)
	}
	if _, err := s.Describe("missing"); err == nil {
		t.Error("missing tree described")
	}
}

func TestStoreCreateRejectsBadDescription(t *testing.T) {
	s := NewStore()
	if _, err := s.Create("a", &desc.Node{Kind: desc.ElementKind}); err == nil {
		t.Error("unnamed element created")
	}
}

func TestStoreReconcileInPlace(t *testing.T) {
	s := NewStore()
	if _, err := s.Create("a", desc.Element("p", nil, desc.Text("old"))); err != nil {
		t.Fatal(err)
	}
	outcome, after, err := s.Reconcile("a",
		desc.Element("p", desc.NewAttrs(), desc.Text("new")))
	if err != nil {
		t.Fatal(err)
	}
	if outcome != treewire.PatchedInPlace {
		t.Errorf("outcome = %s", outcome)
	}
	if *after.Children[0].Value != "new" {
		t.Errorf("after = %+v", after)
	}
}

func TestStoreReconcileReplacesRoot(t *testing.T) {
	s := NewStore()
	if _, err := s.Create("a", desc.Element("p", nil)); err != nil {
		t.Fatal(err)
	}
	outcome, after, err := s.Reconcile("a", desc.Element("div", nil))
	if err != nil {
		t.Fatal(err)
	}
	if outcome != treewire.Replaced {
		t.Errorf("outcome = %s", outcome)
	}
	if after.Name != "div" {
		t.Errorf("after = %+v", after)
	}
	// the stored root is the replacement now
	back, _ := s.Describe("a")
	if back.Name != "div" {
		t.Errorf("stored root = %q", back.Name)
	}
}

func TestStoreReconcileDropped(t *testing.T) {
	s := NewStore()
	if _, err := s.Create("a", desc.Element("p", nil)); err != nil {
		t.Fatal(err)
	}
	outcome, _, err := s.Reconcile("a", &desc.Node{Kind: desc.ElementKind})
	if err == nil {
		t.Error("unmaterializable description accepted")
	}
	if outcome != treewire.Dropped {
		t.Errorf("outcome = %s", outcome)
	}
	// the original survives a dropped reconcile
	back, _ := s.Describe("a")
	if back.Name != "p" {
		t.Errorf("stored root = %q", back.Name)
	}
}

func TestStoreDeleteAndNames(t *testing.T) {
	s := NewStore()
	s.Create("b", desc.Element("p", nil))
	s.Create("a", desc.Element("p", nil))
	names := s.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if !s.Delete("a") {
		t.Error("delete a failed")
	}
	if s.Delete("a") {
		t.Error("second delete succeeded")
	}
	if names := s.Names(); len(names) != 1 || names[0] != "b" {
		t.Errorf("names = %v", names)
	}
}
