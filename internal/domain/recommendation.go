package domain

import (
	"cmp"
	"slices"
	"strings"
)

// UserPreferenceProfile is what a reader has told us about their taste, plus what they have
// already read.
type UserPreferenceProfile struct {
	UserID          string   `json:"user_id"`
	FavoriteGenres  []string `json:"favorite_genres"`
	FavoriteItemIDs []string `json:"favorite_item_ids"`
	ReadItemIDs     []string `json:"read_item_ids"`
}

// RecommendationGroupName identifies how a group of recommendations was produced.
type RecommendationGroupName string

const (
	RecommendationGroupGenre    RecommendationGroupName = "genre"
	RecommendationGroupSimilar  RecommendationGroupName = "similar"
	RecommendationGroupPopular  RecommendationGroupName = "popular"
	RecommendationGroupTopRated RecommendationGroupName = "top_rated"
)

// RecommendationGroup is a named list of items with the reason they were picked.
type RecommendationGroup struct {
	Name   RecommendationGroupName `json:"name"`
	Reason string                  `json:"reason"`
	Items  []CatalogItem           `json:"items"`
}

const (
	// RecommendationGroupSize caps the number of items in each group.
	RecommendationGroupSize = 5
	// TopRatedThreshold is the minimum rating for the top rated group.
	TopRatedThreshold = 4.7
)

// Recommend builds recommendation groups for a reader. A nil profile produces the
// anonymous top rated and popular groups, which never contain adult items. Groups are
// computed independently, so an item may appear in more than one of them. Empty groups are
// omitted.
func Recommend(profile *UserPreferenceProfile, items []CatalogItem) []RecommendationGroup {
	if profile == nil {
		general := slices.DeleteFunc(slices.Clone(items), func(item CatalogItem) bool {
			return item.IsAdult
		})
		return appendNonEmpty(nil,
			topRatedGroup(general),
			popularGroup(general, nil),
		)
	}

	var groups []RecommendationGroup
	groups = appendNonEmpty(groups, genreGroup(profile, items), similarGroup(profile, items))

	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	if total < RecommendationGroupSize {
		groups = appendNonEmpty(groups, popularGroup(items, profile.ReadItemIDs))
	}

	return groups
}

func genreGroup(profile *UserPreferenceProfile, items []CatalogItem) RecommendationGroup {
	group := RecommendationGroup{
		Name:   RecommendationGroupGenre,
		Reason: "Because you like " + strings.Join(profile.FavoriteGenres, ", "),
	}
	if len(profile.FavoriteGenres) == 0 {
		return group
	}

	group.Items = rankByGenreOverlap(items, profile.FavoriteGenres, func(item CatalogItem) bool {
		return slices.Contains(profile.ReadItemIDs, item.ID)
	})
	return group
}

func similarGroup(profile *UserPreferenceProfile, items []CatalogItem) RecommendationGroup {
	group := RecommendationGroup{Name: RecommendationGroupSimilar}
	if len(profile.FavoriteItemIDs) == 0 {
		return group
	}

	var genres []string
	var firstTitle string
	for _, id := range profile.FavoriteItemIDs {
		idx := slices.IndexFunc(items, func(item CatalogItem) bool { return item.ID == id })
		if idx < 0 {
			continue
		}
		if firstTitle == "" {
			firstTitle = items[idx].Title
		}
		for _, g := range items[idx].Genres {
			if !slices.Contains(genres, g) {
				genres = append(genres, g)
			}
		}
	}
	if len(genres) == 0 {
		return group
	}

	group.Reason = "Because you liked " + firstTitle
	group.Items = rankByGenreOverlap(items, genres, func(item CatalogItem) bool {
		return slices.Contains(profile.ReadItemIDs, item.ID) ||
			slices.Contains(profile.FavoriteItemIDs, item.ID)
	})
	return group
}

func popularGroup(items []CatalogItem, excludeIDs []string) RecommendationGroup {
	candidates := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if !slices.Contains(excludeIDs, item.ID) {
			candidates = append(candidates, item)
		}
	}

	slices.SortStableFunc(candidates, func(a, b CatalogItem) int {
		if c := cmp.Compare(b.Views, a.Views); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return RecommendationGroup{
		Name:   RecommendationGroupPopular,
		Reason: "Popular with readers right now",
		Items:  capItems(candidates),
	}
}

func topRatedGroup(items []CatalogItem) RecommendationGroup {
	var candidates []CatalogItem
	for _, item := range items {
		if item.Rating >= TopRatedThreshold {
			candidates = append(candidates, item)
		}
	}

	slices.SortStableFunc(candidates, func(a, b CatalogItem) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return RecommendationGroup{
		Name:   RecommendationGroupTopRated,
		Reason: "Top rated by readers",
		Items:  capItems(candidates),
	}
}

// rankByGenreOverlap keeps items sharing at least one of genres and orders them by the
// number of shared genres, then rating, then ID.
func rankByGenreOverlap(items []CatalogItem, genres []string, exclude func(CatalogItem) bool) []CatalogItem {
	type candidate struct {
		item    CatalogItem
		matches int
	}

	var candidates []candidate
	for _, item := range items {
		if exclude(item) {
			continue
		}
		matches := 0
		for _, g := range item.Genres {
			if slices.Contains(genres, g) {
				matches++
			}
		}
		if matches > 0 {
			candidates = append(candidates, candidate{item: item, matches: matches})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(b.matches, a.matches); c != 0 {
			return c
		}
		if c := cmp.Compare(b.item.Rating, a.item.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.item.ID, b.item.ID)
	})

	out := make([]CatalogItem, 0, min(len(candidates), RecommendationGroupSize))
	for _, c := range candidates {
		if len(out) == RecommendationGroupSize {
			break
		}
		out = append(out, c.item)
	}
	return out
}

func capItems(items []CatalogItem) []CatalogItem {
	if len(items) > RecommendationGroupSize {
		return items[:RecommendationGroupSize]
	}
	return items
}

func appendNonEmpty(groups []RecommendationGroup, candidates ...RecommendationGroup) []RecommendationGroup {
	for _, g := range candidates {
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
