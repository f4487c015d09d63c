package catalog

import (
	"artisanhub/pkg/models"
)

// The seed fixture carries the legacy record shapes: years of experience
// under two different names, pricing as either a min/max range or a flat
// hourly rate, review counts that may be missing, and skills stored under
// "services" on older records. rawArtisan accepts all of them; normalize
// maps each record into the canonical model exactly once at load time so
// the query layer never deals with fallback chains.
type rawCatalog struct {
	Categories []models.Category `json:"categories"`
	Artisans   []rawArtisan      `json:"artisans"`
}

type rawArtisan struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	ProfileImage      string              `json:"profileImage"`
	CategoryID        string              `json:"categoryId"`
	Rating            float64             `json:"rating"`
	ReviewCount       *int                `json:"reviewCount"`
	Location          string              `json:"location"`
	Distance          string              `json:"distance"`
	ResponseTime      string              `json:"responseTime"`
	Verified          bool                `json:"verified"`
	Featured          bool                `json:"featured"`
	CompletionRate    int                 `json:"completionRate"`
	YearsExperience   int                 `json:"yearsExperience"`
	YearsOfExperience int                 `json:"yearsOfExperience"`
	About             string              `json:"about"`
	Portfolio         []string            `json:"portfolio"`
	Services          []string            `json:"services"`
	Skills            []string            `json:"skills"`
	Pricing           *rawPricing         `json:"pricing"`
	HourlyRate        float64             `json:"hourlyRate"`
	Currency          string              `json:"currency"`
	Reviews           []models.SeedReview `json:"reviews"`
}

type rawPricing struct {
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

func normalizeArtisan(r rawArtisan) models.Artisan {
	a := models.Artisan{
		ID:             r.ID,
		Name:           r.Name,
		ProfileImage:   r.ProfileImage,
		CategoryID:     r.CategoryID,
		Location:       r.Location,
		Distance:       r.Distance,
		ResponseTime:   r.ResponseTime,
		Rating:         clampRating(r.Rating),
		Verified:       r.Verified,
		Featured:       r.Featured,
		CompletionRate: r.CompletionRate,
		About:          r.About,
		Portfolio:      r.Portfolio,
		Reviews:        r.Reviews,
	}

	a.YearsExperience = r.YearsExperience
	if a.YearsExperience == 0 {
		a.YearsExperience = r.YearsOfExperience
	}

	a.Skills = r.Services
	if len(a.Skills) == 0 {
		a.Skills = r.Skills
	}

	if r.ReviewCount != nil && *r.ReviewCount >= 0 {
		a.ReviewCount = *r.ReviewCount
	} else {
		a.ReviewCount = len(r.Reviews)
	}

	a.Pricing = normalizePricing(r)

	return a
}

func normalizePricing(r rawArtisan) *models.PriceRange {
	if r.Pricing != nil {
		return &models.PriceRange{
			Currency: r.Pricing.Currency,
			Min:      r.Pricing.Min,
			Max:      r.Pricing.Max,
		}
	}
	if r.HourlyRate > 0 {
		currency := r.Currency
		if currency == "" {
			currency = "R"
		}
		return &models.PriceRange{
			Currency: currency,
			Min:      r.HourlyRate,
			Max:      r.HourlyRate,
		}
	}
	return nil
}

func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
