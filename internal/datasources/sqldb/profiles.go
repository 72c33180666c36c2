package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

type profileItemKind string

const (
	profileItemRead     profileItemKind = "read"
	profileItemFavorite profileItemKind = "favorite"
)

func (r *Repository) GetReadingProfile(
	ctx context.Context,
	userID string,
) (domain.UserPreferenceProfile, bool, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("favorite_genres")
	sb.From("reading_profiles")
	sb.Where(sb.Equal("user_id", userID))
	query, args := sb.Build()

	var genres string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&genres)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserPreferenceProfile{}, false, nil
	}
	if err != nil {
		return domain.UserPreferenceProfile{}, false, fmt.Errorf("getting reading profile: %w", err)
	}

	favoriteGenres, err := decodeList(genres)
	if err != nil {
		return domain.UserPreferenceProfile{}, false, fmt.Errorf("reading favorite genres: %w", err)
	}
	profile := domain.UserPreferenceProfile{
		UserID:         userID,
		FavoriteGenres: favoriteGenres,
	}

	sb = r.flavor.NewSelectBuilder()
	sb.Select("item_id", "kind")
	sb.From("reading_profile_items")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("seq")
	query, args = sb.Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.UserPreferenceProfile{}, false, fmt.Errorf("listing reading profile items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var itemID, kind string
		if err := rows.Scan(&itemID, &kind); err != nil {
			return domain.UserPreferenceProfile{}, false, fmt.Errorf("scanning reading profile item: %w", err)
		}
		switch profileItemKind(kind) {
		case profileItemRead:
			profile.ReadItemIDs = append(profile.ReadItemIDs, itemID)
		case profileItemFavorite:
			profile.FavoriteItemIDs = append(profile.FavoriteItemIDs, itemID)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.UserPreferenceProfile{}, false, fmt.Errorf("listing reading profile items: %w", err)
	}

	return profile, true, nil
}

func (r *Repository) SetItemRead(ctx context.Context, userID, itemID string, read bool) error {
	return r.setProfileItem(ctx, userID, itemID, profileItemRead, read)
}

func (r *Repository) SetItemFavorite(ctx context.Context, userID, itemID string, favorite bool) error {
	return r.setProfileItem(ctx, userID, itemID, profileItemFavorite, favorite)
}

func (r *Repository) setProfileItem(
	ctx context.Context,
	userID, itemID string,
	kind profileItemKind,
	present bool,
) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.ensureProfile(ctx, tx, userID); err != nil {
			return err
		}

		if !present {
			db := r.flavor.NewDeleteBuilder()
			db.DeleteFrom("reading_profile_items")
			db.Where(
				db.Equal("user_id", userID),
				db.Equal("item_id", itemID),
				db.Equal("kind", string(kind)),
			)
			query, args := db.Build()
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("removing %s item: %w", kind, err)
			}
			return nil
		}

		ib := r.flavor.NewInsertBuilder()
		ib.InsertIgnoreInto("reading_profile_items")
		ib.Cols("user_id", "item_id", "kind")
		ib.Values(userID, itemID, string(kind))
		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("adding %s item: %w", kind, err)
		}
		return nil
	})
}

func (r *Repository) SetFavoriteGenres(ctx context.Context, userID string, genres []string) error {
	var unique []string
	for _, g := range genres {
		if !slices.Contains(unique, g) {
			unique = append(unique, g)
		}
	}

	encoded, err := encodeList(unique)
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.ensureProfile(ctx, tx, userID); err != nil {
			return err
		}

		ub := r.flavor.NewUpdateBuilder()
		ub.Update("reading_profiles")
		ub.Set(ub.Assign("favorite_genres", encoded))
		ub.Where(ub.Equal("user_id", userID))
		query, args := ub.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("setting favorite genres: %w", err)
		}
		return nil
	})
}

func (r *Repository) ListProfiledUserIDs(ctx context.Context) ([]string, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("user_id")
	sb.From("reading_profiles")
	sb.OrderBy("user_id")
	query, args := sb.Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing profiled users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning profiled user: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ensureProfile creates an empty profile row unless one exists. A concurrent first write
// for the same user is absorbed by the primary key rather than failing.
func (r *Repository) ensureProfile(ctx context.Context, q querier, userID string) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("reading_profiles")
	ib.Cols("user_id", "favorite_genres")
	ib.Values(userID, "[]")
	query, args := ib.Build()
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating reading profile: %w", err)
	}
	return nil
}
