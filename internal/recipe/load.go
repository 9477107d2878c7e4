package recipe

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

//go:embed catalog.schema.json
var catalogSchema string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("catalog.schema.json", catalogSchema)
	})
	return compiledSchema, schemaErr
}

// recipeDoc is the on-disk shape of one catalog entry:
//
//	"Cuba Libre": {"image_url": "...", "ingredients": [{"name": "cola", "quantity": 120, "motor": 9}]}
type recipeDoc struct {
	ImageURL    string          `json:"image_url"`
	Ingredients []ingredientDoc `json:"ingredients"`
}

type ingredientDoc struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Motor    int     `json:"motor"`
}

// LoadFile reads a JSON or YAML catalog and builds a validated source.
func LoadFile(path string, log *logger.Logger) (*MemorySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	recipes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src, err := NewCatalog(log, recipes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("loaded %d recipes from %s", len(recipes), path)
	return src, nil
}

// Parse decodes catalog bytes (JSON or YAML), checks them against the
// catalog schema and validates every recipe. Recipes are returned sorted
// by name; ingredient order is preserved.
func Parse(data []byte) ([]*domain.Recipe, error) {
	// YAML is a superset of JSON, so one decoder covers both formats. The
	// result is normalised through encoding/json so the schema sees plain
	// JSON values.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w: %w", domain.ErrInvalidCatalog, err)
	}
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing catalog: %w: %w", domain.ErrInvalidCatalog, err)
	}
	var doc any
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, fmt.Errorf("normalizing catalog: %w: %w", domain.ErrInvalidCatalog, err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compiling catalog schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	var docs map[string]recipeDoc
	if err := json.Unmarshal(normalized, &docs); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w: %w", domain.ErrInvalidCatalog, err)
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*domain.Recipe, 0, len(docs))
	for _, name := range names {
		d := docs[name]
		r := &domain.Recipe{Name: name, ImageURL: d.ImageURL}
		for _, ing := range d.Ingredients {
			r.Ingredients = append(r.Ingredients, domain.Ingredient{
				Name:     ing.Name,
				Actuator: ing.Motor,
				VolumeML: ing.Quantity,
			})
		}
		if err := Validate(r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
