// Package recipe provides the drink catalog: the built-in recipes and
// catalogs loaded from a JSON or YAML file.
package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory. It is filled once and only read
// afterwards. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	folded  map[string]string // lower-cased name -> name
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src, err := NewCatalog(log, Builtin())
	if err != nil {
		// Built-ins are covered by tests; reaching this is a programming error.
		panic(fmt.Sprintf("built-in recipes are invalid: %v", err))
	}
	return src
}

// NewCatalog validates recipes and builds a source from them. Duplicate
// names are rejected, including names that differ only in case.
func NewCatalog(log *logger.Logger, recipes []*domain.Recipe) (*MemorySource, error) {
	src := &MemorySource{
		recipes: make(map[string]*domain.Recipe, len(recipes)),
		folded:  make(map[string]string, len(recipes)),
		log:     log.Named("catalog"),
	}
	for _, r := range recipes {
		if err := Validate(r); err != nil {
			return nil, err
		}
		if _, dup := src.recipes[r.Name]; dup {
			return nil, fmt.Errorf("recipe %q defined twice: %w", r.Name, domain.ErrInvalidCatalog)
		}
		key := strings.ToLower(r.Name)
		if other, clash := src.folded[key]; clash {
			return nil, fmt.Errorf("recipes %q and %q differ only in case: %w", other, r.Name, domain.ErrInvalidCatalog)
		}
		src.recipes[r.Name] = r
		src.folded[key] = r.Name
	}
	src.log.Debug("loaded %d recipes", len(src.recipes))
	return src, nil
}

// List returns summaries of all available recipes, sorted by name.
func (s *MemorySource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns the recipe with exactly this name.
func (s *MemorySource) Get(ctx context.Context, name string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.recipes[name]; ok {
		return r, nil
	}
	s.log.Debug("recipe not found: %s", name)
	return nil, fmt.Errorf("%q: %w", name, domain.ErrRecipeNotFound)
}

// CanonicalName maps typed input to the catalog spelling of a recipe name,
// ignoring case. Names are unique under case folding, so the match is
// unambiguous. Unknown names are returned unchanged.
func (s *MemorySource) CanonicalName(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if canonical, ok := s.folded[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical
	}
	return name
}

// Search returns recipes whose name or ingredient names contain the query,
// sorted by name.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	s.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, r := range s.recipes {
		if matches(r, q) {
			out = append(out, r.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

// Validate checks the catalog-load invariants of a single recipe.
func Validate(r *domain.Recipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe with empty name: %w", domain.ErrInvalidCatalog)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %q has no ingredients: %w", r.Name, domain.ErrInvalidCatalog)
	}
	for i, ing := range r.Ingredients {
		if ing.VolumeML <= 0 {
			return fmt.Errorf("recipe %q ingredient %d (%s): volume %g: %w", r.Name, i, ing.Name, ing.VolumeML, domain.ErrInvalidVolume)
		}
		if ing.Actuator < 0 {
			return fmt.Errorf("recipe %q ingredient %d (%s): actuator %d: %w", r.Name, i, ing.Name, ing.Actuator, domain.ErrInvalidActuatorIndex)
		}
	}
	return nil
}

// CheckActuators reports every ingredient whose actuator index does not
// exist in a bank of the given size. Recipes are checked in name order.
func CheckActuators(ctx context.Context, src domain.RecipeSource, bankSize int) ([]error, error) {
	summaries, err := src.List(ctx)
	if err != nil {
		return nil, err
	}
	var problems []error
	for _, sum := range summaries {
		r, err := src.Get(ctx, sum.Name)
		if err != nil {
			return nil, err
		}
		for i, ing := range r.Ingredients {
			if ing.Actuator >= bankSize {
				problems = append(problems, fmt.Errorf("recipe %q ingredient %d (%s): actuator %d, bank has %d: %w",
					r.Name, i, ing.Name, ing.Actuator, bankSize, domain.ErrInvalidActuatorIndex))
			}
		}
	}
	return problems, nil
}
