package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func TestParseSearchCriteria(t *testing.T) {
	cases := []struct {
		name      string
		args      map[string]any
		want      domain.SearchCriteria
		wantLimit int
	}{
		{
			name:      "defaults",
			args:      map[string]any{},
			want:      domain.DefaultSearchCriteria(),
			wantLimit: defaultSearchLimit,
		},
		{
			name: "all_fields",
			args: map[string]any{
				"query":         "dragon",
				"scope":         "title",
				"genres":        "Fantasy, Action",
				"status":        "ongoing",
				"languages":     "en,ko",
				"min_rating":    4.5,
				"sort":          "rating",
				"include_adult": true,
				"limit":         float64(500),
			},
			want: domain.SearchCriteria{
				Query:        "dragon",
				Scope:        domain.SearchScopeTitle,
				Genres:       []string{"Fantasy", "Action"},
				Status:       "ongoing",
				Languages:    []string{"en", "ko"},
				MinRating:    4.5,
				Sort:         domain.SearchSortRating,
				IncludeAdult: true,
			},
			wantLimit: maxSearchLimit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, limit := parseSearchCriteria(tc.args)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}
