package domain

import (
	"cmp"
	"slices"
	"strings"
)

// SearchScope selects which fields of an item a query is matched against.
type SearchScope string

const (
	SearchScopeAll         SearchScope = "all"
	SearchScopeTitle       SearchScope = "title"
	SearchScopeAuthor      SearchScope = "author"
	SearchScopeDescription SearchScope = "description"
)

// SearchSort is the ordering applied to search results.
type SearchSort string

const (
	SearchSortRelevance SearchSort = "relevance"
	SearchSortLatest    SearchSort = "latest"
	SearchSortPopular   SearchSort = "popular"
	SearchSortRating    SearchSort = "rating"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// SearchCriteria describes a catalog search request.
type SearchCriteria struct {
	Query        string      `json:"query"`
	Scope        SearchScope `json:"scope" validate:"omitempty,oneof=all title author description"`
	Genres       []string    `json:"genres"`
	Status       string      `json:"status" validate:"omitempty,oneof=all ongoing completed hiatus"`
	Languages    []string    `json:"languages"`
	MinRating    float64     `json:"min_rating" validate:"gte=0,lte=5"`
	Sort         SearchSort  `json:"sort" validate:"omitempty,oneof=relevance latest popular rating"`
	IncludeAdult bool        `json:"include_adult"`
}

// DefaultSearchCriteria returns the criteria used when a request omits fields.
func DefaultSearchCriteria() SearchCriteria {
	return SearchCriteria{
		Scope: SearchScopeAll,
		Sort:  SearchSortRelevance,
	}
}

// Filters returns the subset of the criteria a catalog lister can apply before ranking.
func (c SearchCriteria) Filters() CatalogFilters {
	filters := CatalogFilters{
		Languages:    c.Languages,
		MinRating:    c.MinRating,
		IncludeAdult: c.IncludeAdult,
	}
	if c.Status != "" && c.Status != StatusFilterAll {
		filters.Status = CatalogStatus(c.Status)
	}
	return filters
}

// Relevance weights.
const (
	scoreTitleExact      = 10
	scoreTitleContains   = 5
	scoreAuthorExact     = 8
	scoreAuthorContains  = 4
	scoreDescription     = 3
	scorePerKeywordMatch = 2
)

type rankedResult struct {
	item  CatalogItem
	score int
}

// SearchCatalog scores, filters and orders items against the criteria.
// With an empty query no scoring happens and nothing is excluded for relevance.
func SearchCatalog(items []CatalogItem, criteria SearchCriteria) []CatalogItem {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	scope := criteria.Scope
	if scope == "" {
		scope = SearchScopeAll
	}

	results := make([]rankedResult, 0, len(items))
	for _, item := range items {
		r := rankedResult{item: item}
		if query != "" {
			r.score = relevanceScore(item, query, scope)
			if r.score == 0 {
				continue
			}
		}
		results = append(results, r)
	}

	results = slices.DeleteFunc(results, func(r rankedResult) bool {
		return !matchesFilters(r.item, criteria)
	})

	sortRanked(results, criteria.Sort, query != "")

	out := make([]CatalogItem, len(results))
	for i, r := range results {
		out[i] = r.item
	}
	return out
}

func relevanceScore(item CatalogItem, query string, scope SearchScope) int {
	all := scope == SearchScopeAll
	score := 0

	if all || scope == SearchScopeTitle {
		score += fieldScore(item.Title, query, scoreTitleExact, scoreTitleContains)
	}
	if all || scope == SearchScopeAuthor {
		score += fieldScore(item.AuthorName, query, scoreAuthorExact, scoreAuthorContains)
	}
	if all || scope == SearchScopeDescription {
		if strings.Contains(strings.ToLower(item.Description), query) {
			score += scoreDescription
		}
	}
	if all {
		for _, keyword := range item.Keywords {
			k := strings.ToLower(keyword)
			if k == "" {
				continue
			}
			if strings.Contains(k, query) || strings.Contains(query, k) {
				score += scorePerKeywordMatch
			}
		}
	}

	return score
}

func fieldScore(field, query string, exact, contains int) int {
	f := strings.ToLower(field)
	switch {
	case f == query:
		return exact
	case strings.Contains(f, query):
		return contains
	default:
		return 0
	}
}

func matchesFilters(item CatalogItem, criteria SearchCriteria) bool {
	if len(criteria.Genres) > 0 && !sharesAny(item.Genres, criteria.Genres) {
		return false
	}
	if criteria.Status != "" && criteria.Status != StatusFilterAll && string(item.Status) != criteria.Status {
		return false
	}
	if len(criteria.Languages) > 0 && !slices.Contains(criteria.Languages, item.Language) {
		return false
	}
	if item.Rating < criteria.MinRating {
		return false
	}
	if item.IsAdult && !criteria.IncludeAdult {
		return false
	}
	return true
}

func sharesAny(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

// sortRanked orders results by the requested key. Equal keys fall back to ID ascending.
func sortRanked(results []rankedResult, sort SearchSort, hasQuery bool) {
	var primary func(a, b rankedResult) int
	switch sort {
	case SearchSortLatest:
		primary = func(a, b rankedResult) int { return b.item.UpdatedAt.Compare(a.item.UpdatedAt) }
	case SearchSortPopular:
		primary = func(a, b rankedResult) int { return cmp.Compare(b.item.Views, a.item.Views) }
	case SearchSortRating:
		primary = func(a, b rankedResult) int { return cmp.Compare(b.item.Rating, a.item.Rating) }
	default:
		if hasQuery {
			primary = func(a, b rankedResult) int { return cmp.Compare(b.score, a.score) }
		} else {
			primary = func(a, b rankedResult) int { return cmp.Compare(b.item.Views, a.item.Views) }
		}
	}

	slices.SortStableFunc(results, func(a, b rankedResult) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.item.ID, b.item.ID)
	})
}
