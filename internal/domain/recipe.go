// Package domain defines the core types and interfaces for the bartender.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a named drink. Ingredient order matters: it is the order in
// which pumps are shut off during a pour.
type Recipe struct {
	Name        string
	ImageURL    string // carried from the catalog, never fetched here
	Ingredients []Ingredient
}

// Ingredient is one liquid poured by one pump.
type Ingredient struct {
	Name     string
	Actuator int     // index into the actuator bank
	VolumeML float64 // always > 0 once the catalog is validated
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	Name        string
	Ingredients int
	TotalML     float64
}

// Summary returns the listing view of r.
func (r *Recipe) Summary() RecipeSummary {
	total := 0.0
	for _, ing := range r.Ingredients {
		total += ing.VolumeML
	}
	return RecipeSummary{
		Name:        r.Name,
		Ingredients: len(r.Ingredients),
		TotalML:     total,
	}
}
