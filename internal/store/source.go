package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func readJSON(path string) ([]model.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var books []model.Book
	if err := json.NewDecoder(f).Decode(&books); err != nil {
		return nil, errors.Wrapf(err, "unable to decode catalog %s", path)
	}
	return books, nil
}

const selectBooks = `
	SELECT id, title, author, genre, format, language, price, rating, release_date, stock, image
	FROM books
	ORDER BY rowid`

// readSQLite reads the books table of a SQLite catalog. The database is
// opened read-only, the catalog is never written.
func readSQLite(path string) ([]model.Book, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open catalog %s", path)
	}
	defer db.Close()

	log.Debug("Reading SQLite catalog", zap.String("path", path))

	rows, err := db.Query(selectBooks)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to query catalog %s", path)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		cols := make([]any, 11)
		ptrs := make([]any, len(cols))
		for i := range cols {
			ptrs[i] = &cols[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "unable to scan catalog row")
		}
		books = append(books, model.Book{
			ID:          toString(cols[0]),
			Title:       toString(cols[1]),
			Author:      toString(cols[2]),
			Genre:       toString(cols[3]),
			Format:      toString(cols[4]),
			Language:    toString(cols[5]),
			Price:       toDecimal(cols[6]),
			Rating:      toFloat(cols[7]),
			ReleaseDate: toString(cols[8]),
			Stock:       int(toFloat(cols[9])),
			Image:       toString(cols[10]),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to iterate catalog rows")
	}
	return books, nil
}

// SQLite columns are dynamically typed, every value is converted leniently.
func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case float64:
		return t
	default:
		f, err := strconv.ParseFloat(toString(v), 64)
		if err != nil {
			return 0
		}
		return f
	}
}

func toDecimal(v any) decimal.Decimal {
	switch t := v.(type) {
	case int64:
		return decimal.NewFromInt(t)
	case float64:
		return decimal.NewFromFloat(t)
	default:
		d, err := decimal.NewFromString(toString(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
}
