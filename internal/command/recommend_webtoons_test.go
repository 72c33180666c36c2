package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/webtoon-feed/internal/datasources/mocks"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

func groupIDs(groups []domain.RecommendationGroup) map[domain.RecommendationGroupName][]string {
	out := make(map[domain.RecommendationGroupName][]string, len(groups))
	for _, g := range groups {
		out[g.Name] = itemIDs(g.Items)
	}
	return out
}

func sampleCatalogWithoutAdult() []domain.CatalogItem {
	var items []domain.CatalogItem
	for _, item := range domain.SampleCatalog() {
		if !item.IsAdult {
			items = append(items, item)
		}
	}
	return items
}

func TestRecommendWebtoons_Execute_Anonymous(t *testing.T) {
	lister := mocks.NewMockCatalogLister(t)
	profiles := mocks.NewMockReadingProfileGetter(t)
	cache := mocks.NewMockRecommendationCache(t)

	lister.EXPECT().
		ListCatalogItems(mock.Anything, domain.CatalogFilters{}).
		Return(sampleCatalogWithoutAdult(), nil)

	cmd := NewRecommendWebtoons(lister, profiles, cache)
	groups, err := cmd.Execute(testContext(), RecommendWebtoonsRequest{})
	require.NoError(t, err)

	assert.Equal(t, map[domain.RecommendationGroupName][]string{
		domain.RecommendationGroupTopRated: {"5", "1", "2", "8"},
		domain.RecommendationGroupPopular:  {"5", "3", "1", "2", "8"},
	}, groupIDs(groups))
}

func TestRecommendWebtoons_Execute_CacheHit(t *testing.T) {
	lister := mocks.NewMockCatalogLister(t)
	profiles := mocks.NewMockReadingProfileGetter(t)
	cache := mocks.NewMockRecommendationCache(t)

	cached := []domain.RecommendationGroup{{Name: domain.RecommendationGroupGenre, Reason: "cached"}}
	cache.EXPECT().GetRecommendations(mock.Anything, "user1").Return(cached, true, nil)

	cmd := NewRecommendWebtoons(lister, profiles, cache)
	groups, err := cmd.Execute(testContext(), RecommendWebtoonsRequest{UserID: "user1"})
	require.NoError(t, err)
	assert.Equal(t, cached, groups)
}

func TestRecommendWebtoons_Execute_CacheMiss(t *testing.T) {
	cases := []struct {
		name           string
		cacheGetErr    error
		cacheSetErr    error
		profile        domain.UserPreferenceProfile
		profileFound   bool
		expectedGroups map[domain.RecommendationGroupName][]string
	}{
		{
			name: "profile_drives_genre_group",
			profile: domain.UserPreferenceProfile{
				UserID:         "user1",
				FavoriteGenres: []string{"Sci-Fi", "Fantasy", "Adventure"},
				ReadItemIDs:    []string{"1", "2", "5"},
			},
			profileFound: true,
			expectedGroups: map[domain.RecommendationGroupName][]string{
				domain.RecommendationGroupGenre:   {"8", "6"},
				domain.RecommendationGroupPopular: {"3", "8", "4", "6"},
			},
		},
		{
			name:         "no_profile_gets_anonymous_groups",
			profileFound: false,
			expectedGroups: map[domain.RecommendationGroupName][]string{
				domain.RecommendationGroupTopRated: {"5", "1", "2", "8"},
				domain.RecommendationGroupPopular:  {"5", "3", "1", "2", "8"},
			},
		},
		{
			name:         "cache_errors_are_ignored",
			cacheGetErr:  errors.New("redis down"),
			cacheSetErr:  errors.New("redis down"),
			profileFound: false,
			expectedGroups: map[domain.RecommendationGroupName][]string{
				domain.RecommendationGroupTopRated: {"5", "1", "2", "8"},
				domain.RecommendationGroupPopular:  {"5", "3", "1", "2", "8"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockCatalogLister(t)
			profiles := mocks.NewMockReadingProfileGetter(t)
			cache := mocks.NewMockRecommendationCache(t)

			cache.EXPECT().GetRecommendations(mock.Anything, "user1").Return(nil, false, tc.cacheGetErr)
			profiles.EXPECT().GetReadingProfile(mock.Anything, "user1").Return(tc.profile, tc.profileFound, nil)
			lister.EXPECT().
				ListCatalogItems(mock.Anything, domain.CatalogFilters{}).
				Return(sampleCatalogWithoutAdult(), nil)
			cache.EXPECT().SetRecommendations(mock.Anything, "user1", mock.Anything).Return(tc.cacheSetErr)

			cmd := NewRecommendWebtoons(lister, profiles, cache)
			groups, err := cmd.Execute(testContext(), RecommendWebtoonsRequest{UserID: "user1"})
			require.NoError(t, err)
			assert.Equal(t, tc.expectedGroups, groupIDs(groups))
		})
	}
}

func TestRecommendWebtoons_Execute_ProfileError(t *testing.T) {
	lister := mocks.NewMockCatalogLister(t)
	profiles := mocks.NewMockReadingProfileGetter(t)
	cache := mocks.NewMockRecommendationCache(t)

	cache.EXPECT().GetRecommendations(mock.Anything, "user1").Return(nil, false, nil)
	profiles.EXPECT().
		GetReadingProfile(mock.Anything, "user1").
		Return(domain.UserPreferenceProfile{}, false, errors.New("db error"))

	cmd := NewRecommendWebtoons(lister, profiles, cache)
	_, err := cmd.Execute(testContext(), RecommendWebtoonsRequest{UserID: "user1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting reading profile")
}
