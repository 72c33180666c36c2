package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemIDs(items []CatalogItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestSearchCatalog_NoQueryNoFilters(t *testing.T) {
	cases := []struct {
		name string
		sort SearchSort
		want []string
	}{
		{
			name: "relevance_falls_back_to_views",
			sort: SearchSortRelevance,
			want: []string{"5", "3", "1", "2", "8", "7", "4", "6"},
		},
		{
			name: "popular",
			sort: SearchSortPopular,
			want: []string{"5", "3", "1", "2", "8", "7", "4", "6"},
		},
		{
			name: "latest",
			sort: SearchSortLatest,
			want: []string{"1", "2", "3", "5", "7", "8", "4", "6"},
		},
		{
			name: "rating_ties_broken_by_id",
			sort: SearchSortRating,
			want: []string{"5", "1", "2", "8", "3", "4", "6", "7"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := SampleCatalog()
			got := SearchCatalog(catalog, SearchCriteria{Sort: tc.sort, IncludeAdult: true})

			assert.Equal(t, tc.want, itemIDs(got))
			assert.ElementsMatch(t, itemIDs(catalog), itemIDs(got))
		})
	}
}

func TestSearchCatalog_QueryScoring(t *testing.T) {
	cases := []struct {
		name     string
		criteria SearchCriteria
		want     []string
	}{
		{
			name:     "keyword_space",
			criteria: SearchCriteria{Query: "space", Scope: SearchScopeAll},
			want:     []string{"1"},
		},
		{
			name:     "exact_title_beats_substring",
			criteria: SearchCriteria{Query: "shadow hunter"},
			want:     []string{"3"},
		},
		{
			name:     "title_scope_ignores_description",
			criteria: SearchCriteria{Query: "galaxy", Scope: SearchScopeTitle},
			want:     []string{},
		},
		{
			name:     "description_scope",
			criteria: SearchCriteria{Query: "galaxy", Scope: SearchScopeDescription},
			want:     []string{"1"},
		},
		{
			name:     "author_scope_substring",
			criteria: SearchCriteria{Query: "park", Scope: SearchScopeAuthor},
			want:     []string{"1", "8"},
		},
		{
			name:     "case_insensitive",
			criteria: SearchCriteria{Query: "DRAGON"},
			want:     []string{"5"},
		},
		{
			name:     "query_containing_keyword",
			criteria: SearchCriteria{Query: "magic academy"},
			want:     []string{"2", "5"},
		},
		{
			name:     "adult_hidden_by_default",
			criteria: SearchCriteria{Query: "vampire"},
			want:     []string{},
		},
		{
			name:     "adult_shown_when_enabled",
			criteria: SearchCriteria{Query: "vampire", IncludeAdult: true},
			want:     []string{"7"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SearchCatalog(SampleCatalog(), tc.criteria)
			assert.Equal(t, tc.want, itemIDs(got))
		})
	}
}

func TestSearchCatalog_SpaceRanksCosmicJourneyFirst(t *testing.T) {
	catalog := SampleCatalog()
	catalog = append(catalog, CatalogItem{
		ID:          "9",
		Title:       "Starlight Diner",
		AuthorName:  "Nobody",
		Description: "A late night menu for travellers.",
		Views:       9000000,
		Rating:      3,
	})

	got := SearchCatalog(catalog, SearchCriteria{Query: "space", Scope: SearchScopeAll})

	require.NotEmpty(t, got)
	assert.Equal(t, "The Cosmic Journey", got[0].Title)
	assert.NotContains(t, itemIDs(got), "9")
}

func TestSearchCatalog_ZeroScoreExcluded(t *testing.T) {
	catalog := SampleCatalog()
	for _, query := range []string{"space", "a", "romance", "zzz"} {
		got := SearchCatalog(catalog, SearchCriteria{Query: query, IncludeAdult: true})
		for _, item := range got {
			assert.Positive(t, relevanceScore(item, query, SearchScopeAll), "query %q item %s", query, item.ID)
		}
	}
}

func TestSearchCatalog_Filters(t *testing.T) {
	cases := []struct {
		name     string
		criteria SearchCriteria
		want     []string
	}{
		{
			name:     "genre_intersection",
			criteria: SearchCriteria{Genres: []string{"Sci-Fi", "Comedy"}, Sort: SearchSortRating},
			want:     []string{"1", "4", "6"},
		},
		{
			name:     "status",
			criteria: SearchCriteria{Status: "completed", Sort: SearchSortRating},
			want:     []string{"8", "4"},
		},
		{
			name:     "status_all",
			criteria: SearchCriteria{Status: StatusFilterAll, Genres: []string{"Thriller"}, Sort: SearchSortRating},
			want:     []string{"3", "6"},
		},
		{
			name:     "language",
			criteria: SearchCriteria{Languages: []string{"ko"}, Sort: SearchSortRating},
			want:     []string{"8", "3"},
		},
		{
			name:     "min_rating",
			criteria: SearchCriteria{MinRating: 4.7, Sort: SearchSortRating},
			want:     []string{"5", "1", "2", "8"},
		},
		{
			name:     "combined_with_query",
			criteria: SearchCriteria{Query: "dark", Languages: []string{"en"}},
			want:     []string{"5"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SearchCatalog(SampleCatalog(), tc.criteria)
			assert.Equal(t, tc.want, itemIDs(got))
		})
	}
}

func TestSearchCatalog_DoesNotReorderInput(t *testing.T) {
	catalog := SampleCatalog()
	before := itemIDs(catalog)

	_ = SearchCatalog(catalog, SearchCriteria{Sort: SearchSortPopular, IncludeAdult: true})

	assert.True(t, slices.Equal(before, itemIDs(catalog)))
}

func TestSearchCriteria_Filters(t *testing.T) {
	c := SearchCriteria{Status: "all", Languages: []string{"en"}, MinRating: 4, IncludeAdult: true}
	assert.Equal(t, CatalogFilters{Languages: []string{"en"}, MinRating: 4, IncludeAdult: true}, c.Filters())

	c.Status = "hiatus"
	assert.Equal(t, CatalogStatusHiatus, c.Filters().Status)
}
