package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisanhub/pkg/models"
)

func testStore() *Store {
	categories := []models.Category{
		{ID: "plumbing", Name: "Plumbers", Count: 2},
		{ID: "electrical", Name: "Electricians", Count: 1},
		{ID: "carpentry", Name: "Carpenters", Count: 1},
	}
	artisans := []models.Artisan{
		{
			ID: "a1", Name: "John Nkosi", CategoryID: "plumbing", Rating: 4.9,
			Skills: []string{"Leak repairs", "Geyser installations"}, Location: "Cape Town",
			Distance: "3.2 km", ResponseTime: "10 min", Verified: true, Featured: true,
			YearsExperience: 12,
		},
		{
			ID: "a2", Name: "Thandi Mbeki", CategoryID: "electrical", Rating: 4.8,
			Skills: []string{"Wiring", "Lighting"}, Location: "Johannesburg",
			Distance: "5.1 km", ResponseTime: "2 hrs", Verified: true, Featured: true,
			YearsExperience: 8,
		},
		{
			ID: "a3", Name: "David Naidoo", CategoryID: "carpentry", Rating: 4.7,
			Skills: []string{"Cabinetry", "Custom furniture"}, Location: "Durban",
			Distance: "bad-data", ResponseTime: "45 min", Verified: false, Featured: false,
			YearsExperience: 15,
		},
		{
			ID: "a4", Name: "Amara Plumbworth", CategoryID: "plumbing", Rating: 4.5,
			Skills: []string{"Pipe installations"}, Location: "Cape Town",
			Distance: "2.8 km", ResponseTime: "1 hr", Verified: true, Featured: false,
			YearsExperience: 3,
		},
	}
	return NewStore(categories, artisans)
}

func ids(list []models.Artisan) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestByCategory(t *testing.T) {
	s := testStore()

	t.Run("matches in catalog order", func(t *testing.T) {
		got := s.ByCategory("plumbing")
		assert.Equal(t, []string{"a1", "a4"}, ids(got))
	})

	t.Run("unknown category yields empty, not error", func(t *testing.T) {
		got := s.ByCategory("nonexistent")
		assert.Empty(t, got)
	})

	t.Run("empty id yields featured artisans only", func(t *testing.T) {
		got := s.ByCategory("")
		assert.Equal(t, []string{"a1", "a2"}, ids(got))
	})

	t.Run("every artisan appears under its own category", func(t *testing.T) {
		for _, a := range s.Artisans() {
			assert.Contains(t, ids(s.ByCategory(a.CategoryID)), a.ID)
		}
	})
}

func TestSearch(t *testing.T) {
	s := testStore()

	t.Run("blank terms yield empty results", func(t *testing.T) {
		assert.Empty(t, s.Search(""))
		assert.Empty(t, s.Search("   "))
	})

	t.Run("term is trimmed before matching", func(t *testing.T) {
		assert.Equal(t, ids(s.Search("plumb")), ids(s.Search("  plumb  ")))
	})

	t.Run("case insensitive", func(t *testing.T) {
		upper := s.Search("PLUMB")
		lower := s.Search("plumb")
		require.Equal(t, ids(upper), ids(lower))
		assert.Equal(t, []string{"a4"}, ids(lower)) // matches name "Plumbworth"
	})

	t.Run("matches name, skills and location", func(t *testing.T) {
		assert.Equal(t, []string{"a2"}, ids(s.Search("thandi")))    // name
		assert.Equal(t, []string{"a3"}, ids(s.Search("cabinetry"))) // skill
		assert.Equal(t, []string{"a1", "a4"}, ids(s.Search("cape town")))
	})

	t.Run("no matches is empty, preserves order otherwise", func(t *testing.T) {
		assert.Empty(t, s.Search("zzz-no-such-term"))
	})
}

func TestSortRatingStable(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1", Rating: 4.5},
		{ID: "x2", Rating: 4.9},
		{ID: "x3", Rating: 4.5},
	}
	got := Sort(list, SortRating)
	assert.Equal(t, []string{"x2", "x1", "x3"}, ids(got))
}

func TestSortName(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1", Name: "Thandi Mbeki"},
		{ID: "x2", Name: "Amara Plumbworth"},
		{ID: "x3", Name: "David Naidoo"},
	}
	got := Sort(list, SortName)
	assert.Equal(t, []string{"x2", "x3", "x1"}, ids(got))
}

func TestSortExperience(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1", YearsExperience: 8},
		{ID: "x2"}, // no experience recorded, defaults to 0
		{ID: "x3", YearsExperience: 15},
	}
	got := Sort(list, SortExperience)
	assert.Equal(t, []string{"x3", "x1", "x2"}, ids(got))
}

func TestSortNearest(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1", Distance: "5.1 km"},
		{ID: "x2", Distance: "bad-data"},
		{ID: "x3", Distance: "2.8 km"},
	}
	got := Sort(list, SortNearest)
	assert.Equal(t, []string{"x3", "x1", "x2"}, ids(got))
}

func TestSortNearestMissingSortsLast(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1"},
		{ID: "x2", Distance: "4 km"},
	}
	got := Sort(list, SortNearest)
	assert.Equal(t, []string{"x2", "x1"}, ids(got))
}

func TestSortResponse(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1", ResponseTime: "2 hrs"},
		{ID: "x2", ResponseTime: "45 min"},
		{ID: "x3", ResponseTime: "1 hr"},
	}
	got := Sort(list, SortResponse)
	assert.Equal(t, []string{"x2", "x3", "x1"}, ids(got))
}

func TestSortResponseUnparseableSortsLast(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1", ResponseTime: "soon"},
		{ID: "x2", ResponseTime: "30"}, // number without a unit is unparseable
		{ID: "x3", ResponseTime: "15 min"},
	}
	got := Sort(list, SortResponse)
	assert.Equal(t, "x3", got[0].ID)
	// both unparseable records keep their relative order at the tail
	assert.Equal(t, []string{"x1", "x2"}, ids(got[1:]))
}

func TestSortVerifiedFilters(t *testing.T) {
	s := testStore()
	got := Sort(s.Artisans(), SortVerified)
	assert.Equal(t, []string{"a1", "a2", "a4"}, ids(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	list := []models.Artisan{
		{ID: "x1", Rating: 1},
		{ID: "x2", Rating: 5},
	}
	_ = Sort(list, SortRating)
	assert.Equal(t, []string{"x1", "x2"}, ids(list))
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  SortKey
		ok    bool
	}{
		{"rating", SortRating, true},
		{" Name ", SortName, true},
		{"EXPERIENCE", SortExperience, true},
		{"nearest", SortNearest, true},
		{"verified", SortVerified, true},
		{"response", SortResponse, true},
		{"", "", false},
		{"relevance", "", false},
	}

	for _, tt := range tests {
		key, ok := ParseSortKey(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, key, "input %q", tt.input)
	}
}

func TestRatingScenario(t *testing.T) {
	s := testStore()

	a1, ok := s.GetArtisanByID("a1")
	require.True(t, ok)
	a2, ok := s.GetArtisanByID("a2")
	require.True(t, ok)

	assert.Equal(t, []string{"a1", "a4"}, ids(s.ByCategory("plumbing")))

	got := Sort([]models.Artisan{*a2, *a1}, SortRating)
	assert.Equal(t, []string{"a1", "a2"}, ids(got))
}
