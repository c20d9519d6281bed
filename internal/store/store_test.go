package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/Xunop/e-livraria/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
	{"id": "b1", "title": "O Cortiço", "author": "Aluísio Azevedo", "genre": "Romance", "price": 29.9, "rating": 4.1, "release_date": "01/01/1890", "stock": 2},
	{"id": "b2", "title": "A Firma", "author": "John Grisham", "genre": "Suspense", "price": 54.5, "rating": 4.4, "release_date": "01/03/1991", "stock": 0},
	{"id": "b1", "title": "Duplicado", "author": "Ninguém", "genre": "Drama", "price": 1},
	{"title": "Sem id", "genre": "Drama", "price": 1},
	{"id": "b3", "title": "O Tempo do Sol", "author": "John Grisham", "genre": "Drama", "price": 44}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSONCatalog(t *testing.T) {
	s := NewStore(writeFile(t, "books.json", testCatalog))

	books := s.Load()
	require.Len(t, books, 3)
	assert.Equal(t, []string{"b1", "b2", "b3"}, []string{books[0].ID, books[1].ID, books[2].ID})

	b, ok := s.ByID("b1")
	require.True(t, ok)
	assert.Equal(t, "O Cortiço", b.Title, "first record wins on duplicate ids")

	_, ok = s.ByID("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"Drama", "Romance", "Suspense"}, s.Genres())
	assert.Equal(t, []string{"Aluísio Azevedo", "John Grisham"}, s.Authors())
}

func TestLoadIsMemoized(t *testing.T) {
	path := writeFile(t, "books.json", testCatalog)
	s := NewStore(path)
	require.Equal(t, 3, s.Len())

	// Later changes to the source are not observed by a loaded store.
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))
	assert.Equal(t, 3, s.Len())
}

func TestLoadMissingSource(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, s.Load())
	assert.Empty(t, s.Genres())
	_, ok := s.ByID("b1")
	assert.False(t, ok)

	assert.Empty(t, NewStore("").Load())
}

func TestLoadMalformedSource(t *testing.T) {
	s := NewStore(writeFile(t, "books.json", `{"not": "a list"`))
	assert.Empty(t, s.Load())
}

func TestLoadSQLiteCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE books (
			id TEXT, title TEXT, author TEXT, genre TEXT, format TEXT, language TEXT,
			price, rating, release_date TEXT, stock, image TEXT
		);
		INSERT INTO books VALUES
			('s1', 'Vidas Secas', 'Graciliano Ramos', 'Romance', 'Ebook', 'PT', 35.5, 4.6, '01/01/1938', 5, 'img/vs.jpg'),
			('s2', 'Memórias', 'Machado de Assis', 'Romance', 'Capa dura', 'PT', '19.90', 'n/a', 'x', NULL, NULL),
			(3, 'Numérico', 'Anônimo', 'Drama', NULL, NULL, 10, 3, NULL, 1, NULL);`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s := NewStore(path)
	books := s.Load()
	require.Len(t, books, 3)

	assert.Equal(t, "s1", books[0].ID)
	assert.True(t, books[0].Price.Equal(decimal.RequireFromString("35.5")))
	assert.Equal(t, 5, books[0].Stock)
	assert.Equal(t, "Ebook", books[0].Format)

	assert.True(t, books[1].Price.Equal(decimal.RequireFromString("19.9")))
	assert.Equal(t, 0.0, books[1].Rating)
	assert.Equal(t, 0, books[1].Stock)

	b, ok := s.ByID("3")
	require.True(t, ok)
	assert.Equal(t, "Numérico", b.Title)
}

func TestNewStoreFromBooks(t *testing.T) {
	s := NewStoreFromBooks([]model.Book{{ID: "x", Genre: "Drama", Stock: -1}})
	b, ok := s.ByID("x")
	require.True(t, ok)
	assert.Equal(t, 0, b.Stock)
	assert.Equal(t, []string{"Drama"}, s.Genres())
}

func TestByIDReturnsCopy(t *testing.T) {
	s := NewStoreFromBooks([]model.Book{{ID: "b1", Title: "Dom Casmurro", Price: decimal.NewFromInt(30)}})

	b, ok := s.ByID("b1")
	require.True(t, ok)
	b.Title = "Alterado"
	b.Price = decimal.Zero

	again, ok := s.ByID("b1")
	require.True(t, ok)
	assert.Equal(t, "Dom Casmurro", again.Title)
	assert.True(t, decimal.NewFromInt(30).Equal(again.Price))
	assert.Equal(t, "Dom Casmurro", s.Load()[0].Title)

	_, ok = s.ByID("missing")
	assert.False(t, ok)
}
