package server

import (
	"fmt"
	"slices"
	"sync"

	treewire "github.com/treewire/go-treewire"
	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/host"
	"github.com/treewire/go-treewire/host/memtree"
)

// Store holds the daemon's named live trees. All trees are memtree backed;
// access is serialized per store, satisfying the exclusive-access
// requirement of reconciliation.
type Store struct {
	mu      sync.Mutex
	factory memtree.Factory
	docs    map[string]host.Node
}

func NewStore() *Store {
	return &Store{
		factory: memtree.NewFactory(),
		docs:    map[string]host.Node{},
	}
}

func (s *Store) Create(name string, d *desc.Node) (host.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[name]; ok {
		return nil, fmt.Errorf("tree %q already exists", name)
	}
	n, ok := treewire.Materialize(s.factory, d)
	if !ok {
		return nil, fmt.Errorf("description for %q cannot materialize", name)
	}
	s.docs[name] = n
	return n, nil
}

func (s *Store) Describe(name string) (*desc.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("no tree %q", name)
	}
	return treewire.Describe(n), nil
}

// Reconcile patches the named tree toward the description. A name mismatch
// at the root replaces the stored root wholesale.
func (s *Store) Reconcile(name string, d *desc.Node) (treewire.Outcome, *desc.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.docs[name]
	if !ok {
		return 0, nil, fmt.Errorf("no tree %q", name)
	}
	res := treewire.ReconcileNode(s.factory, n, d)
	switch res.Outcome {
	case treewire.Replaced:
		s.docs[name] = res.Node
	case treewire.Dropped:
		return res.Outcome, nil, fmt.Errorf("description for %q cannot materialize", name)
	}
	return res.Outcome, treewire.Describe(s.docs[name]), nil
}

func (s *Store) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[name]
	delete(s.docs, name)
	return ok
}

func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
