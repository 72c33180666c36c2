package memory

import (
	"context"
	"slices"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func (r *Repository) GetReadingProfile(
	_ context.Context,
	userID string,
) (domain.UserPreferenceProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return domain.UserPreferenceProfile{}, false, nil
	}
	return domain.UserPreferenceProfile{
		UserID:          p.UserID,
		FavoriteGenres:  slices.Clone(p.FavoriteGenres),
		FavoriteItemIDs: slices.Clone(p.FavoriteItemIDs),
		ReadItemIDs:     slices.Clone(p.ReadItemIDs),
	}, true, nil
}

func (r *Repository) SetItemRead(_ context.Context, userID, itemID string, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profileLocked(userID)
	p.ReadItemIDs = toggle(p.ReadItemIDs, itemID, read)
	return nil
}

func (r *Repository) SetItemFavorite(_ context.Context, userID, itemID string, favorite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profileLocked(userID)
	p.FavoriteItemIDs = toggle(p.FavoriteItemIDs, itemID, favorite)
	return nil
}

func (r *Repository) SetFavoriteGenres(_ context.Context, userID string, genres []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profileLocked(userID)
	p.FavoriteGenres = nil
	for _, g := range genres {
		p.FavoriteGenres = toggle(p.FavoriteGenres, g, true)
	}
	return nil
}

func (r *Repository) ListProfiledUserIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// profileLocked returns the stored profile, creating it if needed. r.mu must be held.
func (r *Repository) profileLocked(userID string) *domain.UserPreferenceProfile {
	p, ok := r.profiles[userID]
	if !ok {
		p = &domain.UserPreferenceProfile{UserID: userID}
		r.profiles[userID] = p
	}
	return p
}

// toggle adds or removes v, keeping insertion order and no duplicates.
func toggle(values []string, v string, present bool) []string {
	idx := slices.Index(values, v)
	switch {
	case present && idx < 0:
		return append(values, v)
	case !present && idx >= 0:
		return slices.Delete(values, idx, idx+1)
	default:
		return values
	}
}
