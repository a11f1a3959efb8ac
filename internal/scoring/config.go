package scoring

import (
	"fmt"
	"os"
	"strconv"
)

// Weights assigns the relative importance of each similarity factor.
// Values are percentage points and must sum to 100.
type Weights struct {
	Category    int `toml:"category"`
	Location    int `toml:"location"`
	Date        int `toml:"date"`
	Title       int `toml:"title"`
	Description int `toml:"description"`
	Identifier  int `toml:"identifier"`
}

// WeightsEnv maps weight fields to environment variable names for override injection.
type WeightsEnv struct {
	Category    string
	Location    string
	Date        string
	Title       string
	Description string
	Identifier  string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (w *Weights) Finalize(env *WeightsEnv) error {
	w.loadDefaults()
	if env != nil {
		w.loadEnv(env)
	}
	return w.validate()
}

// Merge overwrites non-zero fields from overlay.
func (w *Weights) Merge(overlay *Weights) {
	if overlay.Category != 0 {
		w.Category = overlay.Category
	}
	if overlay.Location != 0 {
		w.Location = overlay.Location
	}
	if overlay.Date != 0 {
		w.Date = overlay.Date
	}
	if overlay.Title != 0 {
		w.Title = overlay.Title
	}
	if overlay.Description != 0 {
		w.Description = overlay.Description
	}
	if overlay.Identifier != 0 {
		w.Identifier = overlay.Identifier
	}
}

// Total returns the sum of all weights.
func (w *Weights) Total() int {
	return w.Category + w.Location + w.Date + w.Title + w.Description + w.Identifier
}

func (w *Weights) loadDefaults() {
	if w.Total() == 0 {
		w.Category = 35
		w.Location = 20
		w.Date = 15
		w.Title = 15
		w.Description = 10
		w.Identifier = 5
	}
}

func (w *Weights) loadEnv(env *WeightsEnv) {
	override := func(envVar string, field *int) {
		if envVar == "" {
			return
		}
		if v := os.Getenv(envVar); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*field = n
			}
		}
	}

	override(env.Category, &w.Category)
	override(env.Location, &w.Location)
	override(env.Date, &w.Date)
	override(env.Title, &w.Title)
	override(env.Description, &w.Description)
	override(env.Identifier, &w.Identifier)
}

func (w *Weights) validate() error {
	for name, v := range map[string]int{
		"category":    w.Category,
		"location":    w.Location,
		"date":        w.Date,
		"title":       w.Title,
		"description": w.Description,
		"identifier":  w.Identifier,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s cannot be negative", name)
		}
	}

	if total := w.Total(); total != 100 {
		return fmt.Errorf("weights must sum to 100, got %d", total)
	}

	return nil
}
