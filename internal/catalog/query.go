package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"artisanhub/pkg/models"
)

// SortKey selects one of the list orderings exposed by the browse pages.
type SortKey string

const (
	SortRating     SortKey = "rating"     // descending by rating
	SortName       SortKey = "name"       // ascending, locale-aware
	SortExperience SortKey = "experience" // descending by years of experience
	SortNearest    SortKey = "nearest"    // ascending by parsed distance
	SortVerified   SortKey = "verified"   // filter: verified artisans only
	SortResponse   SortKey = "response"   // ascending by response time in minutes
)

func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortRating:
		return SortRating, true
	case SortName:
		return SortName, true
	case SortExperience:
		return SortExperience, true
	case SortNearest:
		return SortNearest, true
	case SortVerified:
		return SortVerified, true
	case SortResponse:
		return SortResponse, true
	default:
		return "", false
	}
}

// ByCategory returns artisans belonging to the given category in catalog
// order. An empty category id returns the featured artisans only; an
// unknown id returns an empty slice.
func (s *Store) ByCategory(categoryID string) []models.Artisan {
	out := make([]models.Artisan, 0, len(s.artisans))
	if categoryID == "" {
		for _, a := range s.artisans {
			if a.Featured {
				out = append(out, a)
			}
		}
		return out
	}
	for _, a := range s.artisans {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out
}

// Search matches the term case-insensitively as a substring of the artisan
// name, any skill, or the location. The term is trimmed before matching,
// so " cape" and "cape" find the same records even mid-word; only the
// blank-term check strictly requires the trim. A blank term returns an
// empty slice; distinguishing "nothing searched yet" from "no matches" is
// up to the caller. Results keep catalog order; there is no relevance
// ranking.
func (s *Store) Search(term string) []models.Artisan {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Artisan, 0)
	if term == "" {
		return out
	}
	for _, a := range s.artisans {
		if matchesTerm(a, term) {
			out = append(out, a)
		}
	}
	return out
}

func matchesTerm(a models.Artisan, term string) bool {
	if strings.Contains(strings.ToLower(a.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Location), term) {
		return true
	}
	for _, skill := range a.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

// Sort returns a reordered (or, for SortVerified, filtered) copy of list.
// All orderings are stable: equal keys keep their relative input order.
// Records with malformed distance or response-time strings sort last.
func Sort(list []models.Artisan, key SortKey) []models.Artisan {
	if key == SortVerified {
		out := make([]models.Artisan, 0, len(list))
		for _, a := range list {
			if a.Verified {
				out = append(out, a)
			}
		}
		return out
	}

	out := append([]models.Artisan(nil), list...)
	switch key {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortName:
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortExperience:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].YearsExperience > out[j].YearsExperience
		})
	case SortNearest:
		sort.SliceStable(out, func(i, j int) bool {
			return distanceValue(out[i].Distance) < distanceValue(out[j].Distance)
		})
	case SortResponse:
		sort.SliceStable(out, func(i, j int) bool {
			return responseMinutes(out[i].ResponseTime) < responseMinutes(out[j].ResponseTime)
		})
	}
	return out
}

// distanceValue parses the leading numeric portion of a distance string
// such as "3.2 km". Absent or malformed values map to +Inf so those
// records sort last.
func distanceValue(s string) float64 {
	n, ok := leadingNumber(s)
	if !ok {
		return math.Inf(1)
	}
	return n
}

// responseMinutes converts a free-text response time to minutes: "2 hrs"
// becomes 120, "45 min" stays 45. Anything without a recognized unit maps
// to +Inf.
func responseMinutes(s string) float64 {
	n, ok := leadingNumber(s)
	if !ok {
		return math.Inf(1)
	}
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "hr"):
		return n * 60
	case strings.Contains(lower, "min"):
		return n
	default:
		return math.Inf(1)
	}
}

func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
