package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"artisanhub/pkg/models"
)

//go:embed seed.json
var seedJSON []byte

// Store holds the immutable catalog: the fixed category and artisan
// collections, loaded once at startup and never mutated afterwards.
type Store struct {
	categories []models.Category
	artisans   []models.Artisan

	categoryIdx map[string]int
	artisanIdx  map[string]int
}

func NewStore(categories []models.Category, artisans []models.Artisan) *Store {
	s := &Store{
		categories:  categories,
		artisans:    artisans,
		categoryIdx: make(map[string]int, len(categories)),
		artisanIdx:  make(map[string]int, len(artisans)),
	}
	for i, c := range categories {
		s.categoryIdx[c.ID] = i
	}
	for i, a := range artisans {
		s.artisanIdx[a.ID] = i
	}
	return s
}

// Load parses the embedded seed fixture, normalizes every artisan record
// and returns the catalog store.
func Load() (*Store, error) {
	var raw rawCatalog
	if err := json.Unmarshal(seedJSON, &raw); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	artisans := make([]models.Artisan, 0, len(raw.Artisans))
	for _, r := range raw.Artisans {
		artisans = append(artisans, normalizeArtisan(r))
	}

	return NewStore(raw.Categories, artisans), nil
}

func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	return s
}

// GetCategoryByID returns the category with the given id. An empty or
// unknown id yields (nil, false), never an error.
func (s *Store) GetCategoryByID(id string) (*models.Category, bool) {
	i, ok := s.categoryIdx[id]
	if id == "" || !ok {
		return nil, false
	}
	c := s.categories[i]
	return &c, true
}

// GetArtisanByID returns the artisan with the given id. An empty or
// unknown id yields (nil, false), never an error.
func (s *Store) GetArtisanByID(id string) (*models.Artisan, bool) {
	i, ok := s.artisanIdx[id]
	if id == "" || !ok {
		return nil, false
	}
	a := s.artisans[i]
	return &a, true
}

// Categories returns the categories in catalog order.
func (s *Store) Categories() []models.Category {
	return append([]models.Category(nil), s.categories...)
}

// Artisans returns all artisans in catalog insertion order.
func (s *Store) Artisans() []models.Artisan {
	return append([]models.Artisan(nil), s.artisans...)
}
