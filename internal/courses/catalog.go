// Package courses maps skill gaps to curated external course links.
// The catalog is a build-time constant embedded as JSON; components receive
// a Catalog value rather than reaching into package state, so tests can
// substitute their own.
package courses

import (
	"encoding/json"
	"fmt"
	"sync"

	_ "embed"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog is an immutable mapping from lowercase skill name to a short
// curated list of course recommendations.
type Catalog map[string][]types.CourseRecommendation

var (
	defaultCatalog     Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the embedded course catalog. The catalog is parsed once
// and shared; callers must not mutate it.
func Default() Catalog {
	defaultCatalogOnce.Do(func() {
		catalog, err := Parse(catalogJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded course catalog is invalid: %v", err))
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// Parse decodes a catalog from JSON, normalizing every key.
func Parse(data []byte) (Catalog, error) {
	var raw map[string][]types.CourseRecommendation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse course catalog: %w", err)
	}

	catalog := make(Catalog, len(raw))
	for key, entries := range raw {
		catalog[matching.Normalize(key)] = entries
	}
	return catalog, nil
}
