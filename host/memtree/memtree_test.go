package memtree

import (
	"testing"

	"github.com/treewire/go-treewire/desc"
)

func TestElementBasics(t *testing.T) {
	f := NewFactory()
	el := f.CreateElement("p")
	if el.Kind() != desc.ElementKind || el.Name() != "p" {
		t.Fatalf("kind %s name %q", el.Kind(), el.Name())
	}
	if _, ok := el.Value(); ok {
		t.Error("element reports a value")
	}
	attrs, ok := el.Attributes()
	if !ok {
		t.Fatal("element has no attribute collection")
	}
	attrs.Set("class", "x")
	attrs.Set("id", "y")
	attrs.Set("class", "z")
	if attrs.Len() != 2 {
		t.Errorf("len = %d, want 2", attrs.Len())
	}
	if v, _ := attrs.Get("class"); v != "z" {
		t.Errorf("class = %q", v)
	}
	names := attrs.Names()
	if names[0] != "class" || names[1] != "id" {
		t.Errorf("names = %v", names)
	}
}

func TestLeafRejectsChildren(t *testing.T) {
	f := NewFactory()
	text := f.CreateText("hi")
	text.Children().Append(f.CreateText("nested"))
	if text.Children().Len() != 0 {
		t.Error("text accepted a child")
	}
	if _, ok := text.Attributes(); ok {
		t.Error("text has an attribute collection")
	}
}

func TestSetValueOnlyWhereMeaningful(t *testing.T) {
	f := NewFactory()
	el := f.CreateElement("p")
	el.SetValue("ignored")
	if _, ok := el.Value(); ok {
		t.Error("element grew a value")
	}
	text := f.CreateText("a")
	text.SetValue("b")
	if v, _ := text.Value(); v != "b" {
		t.Errorf("value = %q", v)
	}
}

func TestChildListOps(t *testing.T) {
	f := NewFactory()
	ul := f.CreateElement("ul")
	kids := ul.Children()
	kids.Append(f.CreateElement("li"))
	kids.Append(f.CreateElement("li"))
	kids.Append(nil) // ignored
	if kids.Len() != 2 {
		t.Fatalf("len = %d", kids.Len())
	}
	if kids.Item(5) != nil || kids.Item(-1) != nil {
		t.Error("out-of-range Item not nil")
	}
	repl := f.CreateElement("p")
	kids.Replace(1, repl)
	if kids.Item(1) != repl {
		t.Error("replace failed")
	}
	kids.Replace(9, f.CreateElement("x")) // ignored
	kids.RemoveLast()
	if kids.Len() != 1 {
		t.Errorf("len after RemoveLast = %d", kids.Len())
	}
	kids.RemoveLast()
	kids.RemoveLast() // empty, no-op
	if kids.Len() != 0 {
		t.Errorf("len = %d", kids.Len())
	}
}

func TestProcessingInstruction(t *testing.T) {
	f := NewFactory()
	pi := f.CreateProcessingInstruction("xml-stylesheet", `href="s.css"`)
	if pi.Kind() != desc.ProcessingInstructionKind {
		t.Errorf("kind = %s", pi.Kind())
	}
	if pi.Name() != "xml-stylesheet" {
		t.Errorf("name = %q", pi.Name())
	}
	if v, ok := pi.Value(); !ok || v != `href="s.css"` {
		t.Errorf("value = %q, %v", v, ok)
	}
}

func TestDocumentHoldsChildren(t *testing.T) {
	f := NewFactory()
	doc := f.CreateDocument()
	doc.Children().Append(f.CreateElement("html"))
	if doc.Children().Len() != 1 {
		t.Errorf("len = %d", doc.Children().Len())
	}
	if doc.Name() != desc.DocumentName {
		t.Errorf("name = %q", doc.Name())
	}
}
