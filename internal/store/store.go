package store // import "github.com/Xunop/e-livraria/internal/store"

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store is the read-only book catalog. It is loaded once and shared by
// every session, nothing mutates it after Load.
type Store struct {
	source string
	once   sync.Once

	books     []model.Book
	bookCache map[string]*model.Book // map[id]*Book
	genres    []string
	authors   []string
}

func NewStore(source string) *Store {
	return &Store{source: source}
}

// NewStoreFromBooks builds a store over an in-memory catalog.
func NewStoreFromBooks(books []model.Book) *Store {
	s := &Store{}
	s.once.Do(func() { s.index(books) })
	return s
}

// Load returns the catalog, reading the source on first use only.
// A missing or unreadable source yields an empty catalog. The slice is
// shared by every session and must not be modified, query copies before
// it sorts or slices.
func (s *Store) Load() []model.Book {
	s.once.Do(func() {
		books, err := s.read()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Warn("Catalog source not found, serving an empty catalog", zap.String("source", s.source))
			} else {
				log.Error("Error loading catalog, serving an empty catalog", zap.String("source", s.source), zap.Error(err))
			}
			books = nil
		}
		s.index(books)
		log.Info("Catalog loaded", zap.String("source", s.source), zap.Int("books", len(s.books)))
	})
	return s.books
}

// ByID looks a book up by id. The result is a copy, the catalog itself
// is never handed out for writing.
func (s *Store) ByID(id string) (*model.Book, bool) {
	s.Load()
	b, ok := s.bookCache[id]
	if !ok {
		return nil, false
	}
	book := *b
	return &book, true
}

// Genres returns the distinct genres of the catalog, sorted.
func (s *Store) Genres() []string {
	s.Load()
	return s.genres
}

// Authors returns the distinct authors of the catalog, sorted.
func (s *Store) Authors() []string {
	s.Load()
	return s.authors
}

func (s *Store) Len() int {
	return len(s.Load())
}

func (s *Store) read() ([]model.Book, error) {
	if s.source == "" {
		return nil, os.ErrNotExist
	}
	if _, err := os.Stat(s.source); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(s.source)) {
	case ".db", ".sqlite", ".sqlite3":
		return readSQLite(s.source)
	default:
		return readJSON(s.source)
	}
}

func (s *Store) index(books []model.Book) {
	s.books = make([]model.Book, 0, len(books))
	s.bookCache = make(map[string]*model.Book, len(books))

	for _, b := range books {
		b.Normalize()
		if b.ID == "" {
			log.Warn("Skipping catalog record without id", zap.String("title", b.Title))
			continue
		}
		if _, exists := s.bookCache[b.ID]; exists {
			log.Warn("Skipping duplicate catalog id", zap.String("id", b.ID), zap.String("title", b.Title))
			continue
		}
		s.books = append(s.books, b)
		s.bookCache[b.ID] = &s.books[len(s.books)-1]
	}

	s.genres = distinct(s.books, func(b *model.Book) string { return b.Genre })
	s.authors = distinct(s.books, func(b *model.Book) string { return b.Author })
}

func distinct(books []model.Book, field func(*model.Book) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for i := range books {
		v := field(&books[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
