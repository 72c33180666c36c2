package domain

import "time"

// SampleCatalog returns the seed catalog used by the in-memory store and by tests.
// Each call returns a fresh copy.
func SampleCatalog() []CatalogItem {
	return []CatalogItem{
		{
			ID:          "1",
			Title:       "The Cosmic Journey",
			AuthorID:    "author-1",
			AuthorName:  "Luna Park",
			Description: "An astronaut's voyage across the galaxy to find a new home for humanity.",
			Genres:      []string{"Sci-Fi", "Adventure"},
			Rating:      4.8,
			Views:       1250000,
			Likes:       89000,
			Status:      CatalogStatusOngoing,
			Language:    "en",
			UpdatedAt:   time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
			Keywords:    []string{"space", "galaxy", "astronaut", "aliens"},
		},
		{
			ID:          "2",
			Title:       "Moonlight Academy",
			AuthorID:    "author-2",
			AuthorName:  "Hana Lee",
			Description: "A young witch enrolls in a school where magic only works under the moon.",
			Genres:      []string{"Fantasy", "Romance", "School"},
			Rating:      4.7,
			Views:       980000,
			Likes:       72000,
			Status:      CatalogStatusOngoing,
			Language:    "en",
			UpdatedAt:   time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
			Keywords:    []string{"magic", "witch", "school", "academy"},
		},
		{
			ID:          "3",
			Title:       "Shadow Hunter",
			AuthorID:    "author-3",
			AuthorName:  "Min-jun Kim",
			Description: "A lone hunter tracks demons through the darkest alleys of Seoul.",
			Genres:      []string{"Action", "Thriller", "Supernatural"},
			Rating:      4.6,
			Views:       1500000,
			Likes:       110000,
			Status:      CatalogStatusOngoing,
			Language:    "ko",
			UpdatedAt:   time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
			Keywords:    []string{"demons", "hunter", "dark"},
		},
		{
			ID:          "4",
			Title:       "Café Diaries",
			AuthorID:    "author-4",
			AuthorName:  "Sora Tanaka",
			Description: "Everyday stories from a cozy corner café and the regulars who love it.",
			Genres:      []string{"Slice of Life", "Romance", "Comedy"},
			Rating:      4.5,
			Views:       650000,
			Likes:       45000,
			Status:      CatalogStatusCompleted,
			Language:    "en",
			UpdatedAt:   time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC),
			Keywords:    []string{"cafe", "coffee", "friendship"},
		},
		{
			ID:          "5",
			Title:       "Dragon's Legacy",
			AuthorID:    "author-5",
			AuthorName:  "Marcus Stone",
			Description: "The last dragon rider must unite the kingdoms before darkness falls.",
			Genres:      []string{"Fantasy", "Action", "Adventure"},
			Rating:      4.9,
			Views:       2100000,
			Likes:       156000,
			Status:      CatalogStatusOngoing,
			Language:    "en",
			UpdatedAt:   time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
			Keywords:    []string{"dragons", "kingdom", "war", "magic"},
		},
		{
			ID:          "6",
			Title:       "Neon Streets",
			AuthorID:    "author-6",
			AuthorName:  "Alex Rivera",
			Description: "A hacker uncovers a conspiracy buried in the code of a cyberpunk megacity.",
			Genres:      []string{"Sci-Fi", "Thriller", "Mystery"},
			Rating:      4.4,
			Views:       540000,
			Likes:       38000,
			Status:      CatalogStatusHiatus,
			Language:    "en",
			UpdatedAt:   time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
			Keywords:    []string{"cyberpunk", "hacker", "future"},
		},
		{
			ID:          "7",
			Title:       "Midnight Desires",
			AuthorID:    "author-7",
			AuthorName:  "Ella Moreau",
			Description: "A forbidden romance between a vampire heir and a human journalist.",
			Genres:      []string{"Romance", "Drama", "Supernatural"},
			Rating:      4.3,
			Views:       820000,
			Likes:       67000,
			Status:      CatalogStatusOngoing,
			Language:    "en",
			UpdatedAt:   time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
			IsAdult:     true,
			Keywords:    []string{"vampire", "romance"},
		},
		{
			ID:          "8",
			Title:       "Spirit Walker",
			AuthorID:    "author-8",
			AuthorName:  "Jin Park",
			Description: "A shaman who walks between worlds guides lost spirits back home.",
			Genres:      []string{"Fantasy", "Adventure", "Supernatural"},
			Rating:      4.7,
			Views:       890000,
			Likes:       64000,
			Status:      CatalogStatusCompleted,
			Language:    "ko",
			UpdatedAt:   time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC),
			Keywords:    []string{"spirits", "shaman", "afterlife"},
		},
	}
}
