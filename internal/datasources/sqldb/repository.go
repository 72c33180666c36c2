package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

func NewMySQLRepository(db *sql.DB) *Repository {
	return &Repository{db: db, flavor: sqlbuilder.MySQL}
}

func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{db: db, flavor: sqlbuilder.SQLite}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// inTx runs f in a transaction, committing if it returns nil.
func (r *Repository) inTx(ctx context.Context, f func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := f(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

var catalogColumns = []string{
	"id", "title", "author_id", "author_name", "description", "genres", "rating", "views",
	"likes", "status", "language", "updated_at", "is_adult", "keywords", "thumbnail_url",
}

func (r *Repository) ListCatalogItems(
	ctx context.Context,
	filters domain.CatalogFilters,
) ([]domain.CatalogItem, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(catalogColumns...)
	sb.From("catalog_items")

	conds := buildCatalogConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("id")

	query, args := sb.Build()
	items, err := r.queryCatalogItems(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing catalog items: %w", err)
	}
	return items, nil
}

func buildCatalogConditions(sb *sqlbuilder.SelectBuilder, filters domain.CatalogFilters) []string {
	var conds []string

	if filters.Status != "" {
		conds = append(conds, sb.Equal("status", string(filters.Status)))
	}

	if len(filters.Languages) > 0 {
		conds = append(conds, sb.In("language", sqlbuilder.Flatten(filters.Languages)...))
	}

	if filters.MinRating > 0 {
		conds = append(conds, sb.GreaterEqualThan("rating", filters.MinRating))
	}

	if !filters.IncludeAdult {
		conds = append(conds, sb.Equal("is_adult", false))
	}

	return conds
}

func (r *Repository) FetchCatalogItemsByID(ctx context.Context, ids []string) ([]domain.CatalogItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select(catalogColumns...)
	sb.From("catalog_items")
	sb.Where(sb.In("id", sqlbuilder.Flatten(ids)...))

	query, args := sb.Build()
	found, err := r.queryCatalogItems(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog items by ID: %w", err)
	}

	items := make([]domain.CatalogItem, 0, len(found))
	for _, id := range ids {
		idx := slices.IndexFunc(found, func(item domain.CatalogItem) bool { return item.ID == id })
		if idx >= 0 {
			items = append(items, found[idx])
		}
	}
	return items, nil
}

// SeedCatalog inserts items if the catalog is empty. It reports whether anything was inserted.
func (r *Repository) SeedCatalog(ctx context.Context, items []domain.CatalogItem) (bool, error) {
	seeded := false
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		sb := r.flavor.NewSelectBuilder()
		sb.Select("COUNT(*)")
		sb.From("catalog_items")
		query, args := sb.Build()

		var count int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("counting catalog items: %w", err)
		}
		if count > 0 || len(items) == 0 {
			return nil
		}

		ib := r.flavor.NewInsertBuilder()
		ib.InsertInto("catalog_items")
		ib.Cols(catalogColumns...)
		for _, item := range items {
			genres, err := encodeList(item.Genres)
			if err != nil {
				return err
			}
			keywords, err := encodeList(item.Keywords)
			if err != nil {
				return err
			}
			ib.Values(
				item.ID, item.Title, item.AuthorID, item.AuthorName, item.Description,
				genres, item.Rating, item.Views, item.Likes, string(item.Status),
				item.Language, item.UpdatedAt.UnixMilli(), item.IsAdult, keywords,
				item.ThumbnailURL,
			)
		}
		query, args = ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting catalog items: %w", err)
		}
		seeded = true
		return nil
	})
	return seeded, err
}

func (r *Repository) queryCatalogItems(ctx context.Context, query string, args []any) ([]domain.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []domain.CatalogItem
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanCatalogItem(s scanner) (domain.CatalogItem, error) {
	var item domain.CatalogItem
	var genres, keywords, status string
	var updatedAt int64
	err := s.Scan(
		&item.ID, &item.Title, &item.AuthorID, &item.AuthorName, &item.Description, &genres,
		&item.Rating, &item.Views, &item.Likes, &status, &item.Language, &updatedAt,
		&item.IsAdult, &keywords, &item.ThumbnailURL,
	)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("scanning catalog item: %w", err)
	}
	if item.Genres, err = decodeList(genres); err != nil {
		return domain.CatalogItem{}, err
	}
	if item.Keywords, err = decodeList(keywords); err != nil {
		return domain.CatalogItem{}, err
	}
	item.Status = domain.CatalogStatus(status)
	item.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return item, nil
}

// encodeList stores a string list as a JSON array so values may contain any character.
func encodeList(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(b), nil
}

// decodeList returns nil for an empty list.
func decodeList(value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(value), &values); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}
