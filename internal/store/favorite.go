package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Favorite is a saved topic explanation, keyed by topic name.
type Favorite struct {
	ID          int
	Name        string
	Explanation string
	DateAdded   time.Time
}

// Sort selects the ordering of a favorites listing.
type Sort int

const (
	SortDateDesc Sort = iota // newest first; the default
	SortDateAsc
	SortNameAsc
	SortNameDesc
)

func (s Sort) String() string {
	switch s {
	case SortDateDesc:
		return "date-desc"
	case SortDateAsc:
		return "date-asc"
	case SortNameAsc:
		return "name-asc"
	case SortNameDesc:
		return "name-desc"
	default:
		return "unknown"
	}
}

// orderBy maps a Sort onto a SQL ORDER BY clause. Name ordering is
// case-insensitive.
func (s Sort) orderBy() string {
	switch s {
	case SortDateAsc:
		return "date_added ASC, id ASC"
	case SortNameAsc:
		return "name COLLATE NOCASE ASC"
	case SortNameDesc:
		return "name COLLATE NOCASE DESC"
	default:
		return "date_added DESC, id DESC"
	}
}

// ListOpts filters and orders a favorites listing. An empty Query
// matches everything; otherwise it is a case-insensitive substring
// match against the name or the explanation text.
type ListOpts struct {
	Query string
	Sort  Sort
}

// FavoriteRepo manages saved topic explanations.
type FavoriteRepo interface {
	// Insert stores a new favorite and fills in its ID. A zero
	// DateAdded is replaced with the current time. Inserting a name
	// that already exists fails.
	Insert(ctx context.Context, fav *Favorite) error

	// Delete removes a favorite by ID. Deleting a missing ID is not an
	// error.
	Delete(ctx context.Context, id int) error

	// GetByName returns the favorite with the given name, or nil if
	// none exists.
	GetByName(ctx context.Context, name string) (*Favorite, error)

	// List returns favorites matching opts.
	List(ctx context.Context, opts ListOpts) ([]Favorite, error)
}

type favoriteRepo struct {
	db *sql.DB
}

func (r *favoriteRepo) Insert(ctx context.Context, fav *Favorite) error {
	if fav.DateAdded.IsZero() {
		fav.DateAdded = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO favorite_topics (name, explanation, date_added) VALUES (?, ?, ?)",
		fav.Name, fav.Explanation, fav.DateAdded.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert favorite %q: %w", fav.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("favorite insert id: %w", err)
	}
	fav.ID = int(id)
	return nil
}

func (r *favoriteRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM favorite_topics WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete favorite %d: %w", id, err)
	}
	return nil
}

func (r *favoriteRepo) GetByName(ctx context.Context, name string) (*Favorite, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, explanation, date_added FROM favorite_topics WHERE name = ? LIMIT 1",
		name,
	)
	fav, err := scanFavorite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get favorite %q: %w", name, err)
	}
	return fav, nil
}

func (r *favoriteRepo) List(ctx context.Context, opts ListOpts) ([]Favorite, error) {
	query := "SELECT id, name, explanation, date_added FROM favorite_topics"
	var args []any

	if q := strings.TrimSpace(opts.Query); q != "" {
		query += " WHERE name LIKE ? COLLATE NOCASE OR explanation LIKE ? COLLATE NOCASE"
		pattern := "%" + q + "%"
		args = append(args, pattern, pattern)
	}
	query += " ORDER BY " + opts.Sort.orderBy()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, *fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return favorites, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFavorite(s scanner) (*Favorite, error) {
	var fav Favorite
	var millis int64
	if err := s.Scan(&fav.ID, &fav.Name, &fav.Explanation, &millis); err != nil {
		return nil, err
	}
	fav.DateAdded = time.UnixMilli(millis)
	return &fav, nil
}
