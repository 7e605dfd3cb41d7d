package index

import (
	"sort"
	"sync"
	"time"

	"github.com/gerunddev/vimwiki/elements"
)

// Document is a parsed page held by the store. Pages are always owned so
// no document keeps its file contents alive
type Document struct {
	Path     string
	ID       string
	Page     elements.Located[elements.Page]
	Size     int64
	Hash     uint64
	ParsedAt time.Time
}

// Blocks returns the number of top level elements of the page
func (d *Document) Blocks() int {
	return len(d.Page.Element.Elements())
}

// Store holds the most recent successful parse of every page
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Put stores doc, converting its page to the owned form first
func (s *Store) Put(doc *Document) {
	doc.Page = doc.Page.IntoOwned()
	doc.Hash = doc.Page.Hash()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Path] = doc
}

// Get returns the document stored for path
func (s *Store) Get(path string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[path]
	return doc, ok
}

// Delete forgets the document stored for path
func (s *Store) Delete(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, path)
}

// Paths returns the stored paths in sorted order
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.docs))
	for path := range s.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of stored documents
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
