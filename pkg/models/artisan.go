package models

// Artisan is the canonical, normalized form of a catalog listing.
//
// The seed fixture still uses the legacy field shapes (two names for
// years of experience, pricing as either a range or a flat hourly rate).
// Everything is mapped into this structure once at load time; query code
// only ever sees this representation.
type Artisan struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	ProfileImage    string       `json:"profile_image,omitempty"`
	CategoryID      string       `json:"category_id"`
	Skills          []string     `json:"skills"`
	Location        string       `json:"location"`
	Rating          float64      `json:"rating"`       // 0..5
	ReviewCount     int          `json:"review_count"` // falls back to len(reviews) at load
	Verified        bool         `json:"verified"`
	Featured        bool         `json:"featured"`
	CompletionRate  int          `json:"completion_rate,omitempty"` // percentage
	YearsExperience int          `json:"years_experience,omitempty"`
	Pricing         *PriceRange  `json:"pricing,omitempty"`
	ResponseTime    string       `json:"response_time,omitempty"` // free text, e.g. "10 min"
	Distance        string       `json:"distance,omitempty"`      // free text, e.g. "3.2 km"
	About           string       `json:"about,omitempty"`
	Portfolio       []string     `json:"portfolio,omitempty"`
	Reviews         []SeedReview `json:"reviews,omitempty"`
}

// PriceRange covers both legacy pricing shapes: a flat hourly rate is
// normalized into Min == Max.
type PriceRange struct {
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// SeedReview is a review shipped with the catalog fixture, as opposed to a
// user-submitted Review stored in the database.
type SeedReview struct {
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment,omitempty"`
}
